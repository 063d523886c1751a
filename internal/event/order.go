package event

// OrderBilling and OrderShipping are snapshots carried on the event, kept
// independent of the order domain types so consumers only depend on this
// package.
type OrderBilling struct {
	Payment    string  `json:"payment"`
	TotalPrice float64 `json:"totalPrice"`
}

type OrderShipping struct {
	Type    string `json:"type"`
	Carrier string `json:"carrier"`
}

// OrderEvent describes one mutation of an order.
type OrderEvent struct {
	Email        string        `json:"email"`
	OrderID      string        `json:"orderId"`
	Billing      OrderBilling  `json:"billing"`
	Shipping     OrderShipping `json:"shipping"`
	RequestID    string        `json:"requestId"`
	ProductCodes []string      `json:"productCodes"`
}
