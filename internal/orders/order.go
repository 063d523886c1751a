package orders

type PaymentType string

const (
	PaymentCash       PaymentType = "CASH"
	PaymentDebitCard  PaymentType = "DEBIT_CARD"
	PaymentCreditCard PaymentType = "CREDIT_CARD"
)

type ShippingType string

const (
	ShippingEconomic ShippingType = "ECONOMIC"
	ShippingUrgent   ShippingType = "URGENT"
)

type CarrierType string

const (
	CarrierPost  CarrierType = "POST"
	CarrierFedex CarrierType = "FEDEX"
)

type Billing struct {
	Payment    PaymentType `json:"payment"`
	TotalPrice float64     `json:"totalPrice"`
}

type Shipping struct {
	Type    ShippingType `json:"type"`
	Carrier CarrierType  `json:"carrier"`
}

// ProductSnapshot captures the code and price of an ordered product at
// order time. Later catalog changes never touch it.
type ProductSnapshot struct {
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}

// Order is keyed by (email, id). CreatedAt is epoch milliseconds.
type Order struct {
	Email     string            `json:"email"`
	ID        string            `json:"id"`
	CreatedAt int64             `json:"createdAt"`
	Billing   Billing           `json:"billing"`
	Shipping  Shipping          `json:"shipping"`
	Products  []ProductSnapshot `json:"products,omitempty"`
}

// OrderRequest is what the client submits. Products are referenced by
// catalog id; the snapshots are built server-side.
type OrderRequest struct {
	Email      string      `json:"email"`
	ProductIDs []string    `json:"productIds"`
	Payment    PaymentType `json:"payment"`
	Shipping   Shipping    `json:"shipping"`
}
