package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventProductSelected   = "product.selected"
	EventVersion           = "1.0.0"
	SubjectProductSelected = "evt.tariff.product_selected.v1"
)

// Envelope wraps every event the adapter publishes.
type Envelope struct {
	ID            uuid.UUID       `json:"id"`
	CorrelationID uuid.UUID       `json:"correlation_id"`
	Topic         string          `json:"topic"`
	EventType     string          `json:"event_type"`
	Version       string          `json:"version"`
	Timestamp     time.Time       `json:"timestamp"`
	Payload       json.RawMessage `json:"payload"`
}

// ProductSelectedEvent is the payload of a product.selected envelope.
type ProductSelectedEvent struct {
	Product    Product   `json:"product"`
	SelectedAt time.Time `json:"selected_at"`
}
