package stock

import (
	"errors"
	"fmt"

	"aiddelivery/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is the sentinel error for all InsufficientStockError
// instances. It is never downgraded to a generic error: the shortfall it
// carries tells the caller exactly how much replenishment is missing.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError indicates that FEFO allocation could not satisfy
// the demanded quantity of a product from the available active lots.
// Nothing has been committed when this error is returned.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for a product
// where only available units could be found against a requested demand.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

// Shortfall returns how many units are missing.
func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s needs %d, only %d available (shortfall %d)",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available, e.Shortfall())
}

// Unwrap returns the sentinel so errors.Is matching works.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
