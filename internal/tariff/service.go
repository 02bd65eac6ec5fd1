package tariff

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Checker-Finance/octopus-adapter/internal/catalog"
	"github.com/Checker-Finance/octopus-adapter/internal/metrics"
	"github.com/Checker-Finance/octopus-adapter/internal/octopus"
	"github.com/Checker-Finance/octopus-adapter/pkg/model"
)

// Fetcher returns the raw product listing body.
type Fetcher interface {
	FetchProducts(ctx context.Context) (string, error)
}

// EventPublisher announces a selected product.
type EventPublisher interface {
	PublishProductSelected(ctx context.Context, p model.Product) error
}

// Service runs fetch -> decode -> select. It keeps no state between calls.
type Service struct {
	logger    *zap.Logger
	fetcher   Fetcher
	predicate catalog.Predicate
	publisher EventPublisher
}

// NewService wires a Service. publisher may be nil; predicate defaults to catalog.AgileOctopus.
func NewService(logger *zap.Logger, fetcher Fetcher, predicate catalog.Predicate, publisher EventPublisher) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if predicate == nil {
		predicate = catalog.AgileOctopus
	}
	return &Service{
		logger:    logger,
		fetcher:   fetcher,
		predicate: predicate,
		publisher: publisher,
	}
}

// SelectProduct fetches the catalog and returns the single product matching the
// service predicate. Fetch, decode and cardinality errors are returned unchanged.
func (s *Service) SelectProduct(ctx context.Context) (model.Product, error) {
	raw, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		metrics.IncSelection(Outcome(err))
		s.logger.Warn("tariff.fetch_failed", zap.Error(err))
		return model.Product{}, err
	}

	c, err := catalog.Decode(raw)
	if err != nil {
		metrics.IncSelection(Outcome(err))
		s.logger.Warn("tariff.decode_failed", zap.Error(err), zap.Int("bytes", len(raw)))
		return model.Product{}, err
	}
	metrics.CatalogSize.Set(float64(c.Len()))

	p, err := catalog.SelectFrom(c, s.predicate)
	if err != nil {
		metrics.IncSelection(Outcome(err))
		s.logger.Warn("tariff.select_failed",
			zap.Error(err),
			zap.Int("catalog_size", c.Len()))
		return model.Product{}, err
	}
	metrics.IncSelection(Outcome(nil))

	s.logger.Info("tariff.product_selected",
		zap.String("code", p.Code),
		zap.String("display_name", p.DisplayName),
		zap.String("brand", p.Brand))

	if s.publisher != nil {
		if perr := s.publisher.PublishProductSelected(ctx, p); perr != nil {
			s.logger.Warn("tariff.publish_failed",
				zap.String("code", p.Code),
				zap.Error(perr))
		}
	}

	return p, nil
}

// ListProducts fetches and decodes the full catalog without selecting.
func (s *Service) ListProducts(ctx context.Context) (model.Catalog, error) {
	raw, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		return model.Catalog{}, err
	}
	c, err := catalog.Decode(raw)
	if err != nil {
		return model.Catalog{}, err
	}
	metrics.CatalogSize.Set(float64(c.Len()))
	return c, nil
}

// Outcome classifies err into the result label used for metrics and API responses.
func Outcome(err error) string {
	var notOne *catalog.NotExactlyOneError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, octopus.ErrFetch):
		return "fetch_error"
	case errors.Is(err, catalog.ErrDecode):
		return "decode_error"
	case errors.As(err, &notOne):
		return "not_exactly_one"
	default:
		return "error"
	}
}
