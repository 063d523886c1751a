package audit

import (
	"context"
	"encoding/json"
	"time"
)

const (
	OrderSource     = "app.order"
	OrderDetailType = "order"

	ReasonProductNotFound = "PRODUCT_NOT_FOUND"
)

// Record is a structured diagnostic emitted when a mutation is rejected
// for a business-rule reason. The audit path is terminal: nothing in the
// system reads these back.
type Record struct {
	Source     string          `json:"source"`
	DetailType string          `json:"detailType"`
	Time       time.Time       `json:"time"`
	Detail     json.RawMessage `json:"detail"`
}

// Emitter sends one diagnostic record to the low-priority audit bus.
type Emitter interface {
	Emit(ctx context.Context, source string, detailType string, detail any) error
}
