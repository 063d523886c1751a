package event

import (
	"encoding/json"
	"fmt"
)

// Type tags an envelope so consumers can filter without decoding the payload.
type Type string

const (
	ProductCreated Type = "PRODUCT_CREATED"
	ProductUpdated Type = "PRODUCT_UPDATED"
	ProductDeleted Type = "PRODUCT_DELETED"

	OrderCreated Type = "ORDER_CREATED"
	OrderDeleted Type = "ORDER_DELETED"
)

// Envelope pairs an event-type tag with an opaque serialized payload.
// The consumer that understands the tag is responsible for decoding Data.
type Envelope struct {
	EventType Type   `json:"eventType"`
	Data      string `json:"data"`
}

// NewEnvelope serializes payload and wraps it under eventType.
func NewEnvelope(eventType Type, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Envelope{EventType: eventType, Data: string(data)}, nil
}

// Decode unmarshals the wrapped payload into out.
func (e Envelope) Decode(out any) error {
	if err := json.Unmarshal([]byte(e.Data), out); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.EventType, err)
	}
	return nil
}
