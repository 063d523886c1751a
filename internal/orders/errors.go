package orders

import "errors"

var (
	// ErrOrderNotFound is returned when a keyed lookup or delete targets
	// an order that does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrProductNotFound is returned when an order references at least
	// one product id that does not exist in the catalog.
	ErrProductNotFound = errors.New("some product was not found")
)
