package event

// ProductEvent describes one mutation of a catalog product.
type ProductEvent struct {
	Email        string  `json:"email"`
	EventType    Type    `json:"eventType"`
	ProductCode  string  `json:"productCode"`
	ProductID    string  `json:"productId"`
	ProductPrice float64 `json:"productPrice"`
	RequestID    string  `json:"requestId"`
}
