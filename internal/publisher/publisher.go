package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Checker-Finance/octopus-adapter/internal/metrics"
	"github.com/Checker-Finance/octopus-adapter/pkg/logger"
	"github.com/Checker-Finance/octopus-adapter/pkg/model"
)

// MsgPublisher is the subset of *nats.Conn used by Publisher.
type MsgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// Publisher wraps a NATS connection and publishes canonical event envelopes.
type Publisher struct {
	nc      MsgPublisher
	subject string
	service string
	now     func() time.Time
}

// New creates a Publisher. subject is used when PublishEnvelope gets an empty one.
func New(nc MsgPublisher, subject, service string) *Publisher {
	if subject == "" {
		subject = model.SubjectProductSelected
	}
	return &Publisher{
		nc:      nc,
		subject: subject,
		service: service,
		now:     time.Now,
	}
}

// PublishEnvelope serializes and publishes an event envelope to NATS.
func (p *Publisher) PublishEnvelope(ctx context.Context, subject string, env *model.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(env)
	if err != nil {
		logger.S().Errorw("publisher.marshal_failed",
			"subject", subject,
			"event_type", env.EventType,
			"error", err,
		)
		return err
	}

	if subject == "" {
		subject = p.subject
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header: nats.Header{
			"event_type":     []string{env.EventType},
			"correlation_id": []string{env.CorrelationID.String()},
			"service":        []string{p.service},
			"content_type":   []string{"application/json"},
		},
	}

	start := time.Now()
	err = p.nc.PublishMsg(msg)
	metrics.ObserveDuration(metrics.NATSMessageLatency, start, subject)

	if err != nil {
		logger.S().Errorw("publisher.publish_failed",
			"subject", subject,
			"event_type", env.EventType,
			"error", err,
		)
		metrics.IncNATSMessage(subject, "error")
		return err
	}

	logger.S().Debugw("publisher.publish_success",
		"subject", subject,
		"event_type", env.EventType,
	)
	metrics.IncNATSMessage(subject, "ok")
	return nil
}

// PublishProductSelected emits a product.selected event for p.
func (p *Publisher) PublishProductSelected(ctx context.Context, product model.Product) error {
	now := p.now().UTC()
	payload, err := json.Marshal(model.ProductSelectedEvent{
		Product:    product,
		SelectedAt: now,
	})
	if err != nil {
		return err
	}

	env := &model.Envelope{
		ID:            uuid.New(),
		CorrelationID: uuid.New(),
		Topic:         p.subject,
		EventType:     model.EventProductSelected,
		Version:       model.EventVersion,
		Timestamp:     now,
		Payload:       payload,
	}
	return p.PublishEnvelope(ctx, p.subject, env)
}
