package catalog

// Product is a catalog entry. ID is system-generated and immutable after
// creation; Code is the business-facing SKU used as the event-routing key.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Price float64 `json:"price" binding:"gte=0"`
	Model string  `json:"model"`
	URL   string  `json:"url"`
}
