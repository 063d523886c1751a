package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	t.Run("wraps product event as serialized payload", func(t *testing.T) {
		productEvent := ProductEvent{
			Email:        "admin@example.com",
			EventType:    ProductCreated,
			ProductCode:  "PROD1",
			ProductID:    "p1",
			ProductPrice: 1500,
			RequestID:    "req-1",
		}

		envelope, err := NewEnvelope(ProductCreated, productEvent)

		require.NoError(t, err)
		assert.Equal(t, ProductCreated, envelope.EventType)
		assert.JSONEq(t, `{
			"email": "admin@example.com",
			"eventType": "PRODUCT_CREATED",
			"productCode": "PROD1",
			"productId": "p1",
			"productPrice": 1500,
			"requestId": "req-1"
		}`, envelope.Data)
	})

	t.Run("rejects unserializable payload", func(t *testing.T) {
		_, err := NewEnvelope(OrderCreated, func() {})
		assert.Error(t, err)
	})
}

func TestEnvelopeDecode(t *testing.T) {
	t.Run("round-trips order event", func(t *testing.T) {
		orderEvent := OrderEvent{
			Email:   "a@b.com",
			OrderID: "o1",
			Billing: OrderBilling{
				Payment:    "CASH",
				TotalPrice: 42.5,
			},
			Shipping: OrderShipping{
				Type:    "ECONOMIC",
				Carrier: "POST",
			},
			RequestID:    "req-2",
			ProductCodes: []string{"PROD1", "PROD2"},
		}

		envelope, err := NewEnvelope(OrderCreated, orderEvent)
		require.NoError(t, err)

		var decoded OrderEvent
		require.NoError(t, envelope.Decode(&decoded))
		assert.Equal(t, orderEvent, decoded)
	})

	t.Run("fails on malformed payload", func(t *testing.T) {
		envelope := Envelope{EventType: ProductCreated, Data: "{not json"}

		var decoded ProductEvent
		assert.Error(t, envelope.Decode(&decoded))
	})
}

func TestEnvelopeWireFormat(t *testing.T) {
	// The transport message is the envelope itself, so the outer json
	// field names are part of the contract.
	envelope := Envelope{EventType: ProductDeleted, Data: `{"productCode":"PROD1"}`}

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)
	assert.JSONEq(t, `{"eventType":"PRODUCT_DELETED","data":"{\"productCode\":\"PROD1\"}"}`, string(raw))
}
