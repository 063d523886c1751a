package catalog

import "errors"

// ErrProductNotFound is returned when a keyed lookup, conditional update
// or delete targets a product that does not exist.
var ErrProductNotFound = errors.New("product not found")
