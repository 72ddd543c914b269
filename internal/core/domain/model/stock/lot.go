package stock

import (
	"errors"
	"fmt"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
)

// ErrProductLotIsNotConstructed is returned when a ProductLot instance was
// not created through NewProductLot or RestoreProductLot.
var ErrProductLotIsNotConstructed = errors.New("ProductLot must be created via NewProductLot or RestoreProductLot")

// ProductLot is a tracked batch of a product with its own quantity and
// optional expiry date. Lots are the unit of FEFO allocation: the allocator
// orders a product's lots by (expiry ascending, nulls last, entry date
// ascending) and consumes from the front.
//
// Invariants:
//   - quantity never goes below zero (Decrease fails instead)
//   - the lot's quantity always equals the sum of its recorded stock
//     movements; callers must pair every Decrease/Increase with the
//     matching movement inside one atomic unit
type ProductLot struct {
	id        kernel.UUID
	productID kernel.UUID
	lotCode   string
	quantity  kernel.Quantity
	expiresAt *time.Time
	enteredAt time.Time
	active    bool
	version   int

	isConstructed bool
}

// NewProductLot creates an active lot holding quantity units of a product.
//
// Parameters:
//   - id, productID: valid UUIDs
//   - lotCode: the supplier/batch identifier printed on the physical lot (required)
//   - quantity: initial stock on hand
//   - expiresAt: optional expiry date; nil means the product does not expire
//   - enteredAt: when the lot entered the warehouse (FEFO tiebreaker)
func NewProductLot(
	id kernel.UUID,
	productID kernel.UUID,
	lotCode string,
	quantity kernel.Quantity,
	expiresAt *time.Time,
	enteredAt time.Time,
) (*ProductLot, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if lotCode == "" {
		return nil, errs.NewValueIsRequiredError("lot code")
	}

	return &ProductLot{
		id:            id,
		productID:     productID,
		lotCode:       lotCode,
		quantity:      quantity,
		expiresAt:     expiresAt,
		enteredAt:     enteredAt,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreProductLot reconstructs a lot from persistence.
func RestoreProductLot(
	id kernel.UUID,
	productID kernel.UUID,
	lotCode string,
	quantity kernel.Quantity,
	expiresAt *time.Time,
	enteredAt time.Time,
	active bool,
	version int,
) (*ProductLot, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("productLot",
			fmt.Errorf("%d is negative", version))
	}

	return &ProductLot{
		id:            id,
		productID:     productID,
		lotCode:       lotCode,
		quantity:      quantity,
		expiresAt:     expiresAt,
		enteredAt:     enteredAt,
		active:        active,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the ProductLot instance was properly constructed.
func (l *ProductLot) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrProductLotIsNotConstructed
	}
	return nil
}

// ID returns the lot's unique identifier.
func (l *ProductLot) ID() kernel.UUID {
	return l.id
}

// ProductID returns the product this lot holds.
func (l *ProductLot) ProductID() kernel.UUID {
	return l.productID
}

// LotCode returns the supplier/batch identifier.
func (l *ProductLot) LotCode() string {
	return l.lotCode
}

// Quantity returns the units currently on hand in this lot.
func (l *ProductLot) Quantity() kernel.Quantity {
	return l.quantity
}

// ExpiresAt returns the expiry date, or nil for non-expiring products.
func (l *ProductLot) ExpiresAt() *time.Time {
	return l.expiresAt
}

// EnteredAt returns when the lot entered the warehouse.
func (l *ProductLot) EnteredAt() time.Time {
	return l.enteredAt
}

// IsActive reports whether the lot participates in allocation.
func (l *ProductLot) IsActive() bool {
	return l.active
}

// Version returns the optimistic-lock version read from persistence.
func (l *ProductLot) Version() int {
	return l.version
}

// Decrease removes quantity units from the lot. Fails with an
// InsufficientStockError when the lot holds fewer units than requested,
// leaving the quantity unchanged.
func (l *ProductLot) Decrease(quantity kernel.Quantity) error {
	if err := l.Validate(); err != nil {
		return err
	}

	remaining, err := l.quantity.Subtract(quantity)
	if err != nil {
		return NewInsufficientStockError(l.productID, quantity.Value(), l.quantity.Value())
	}

	l.quantity = remaining
	return nil
}

// Increase adds quantity units back to the lot, used by compensating
// returns on cancellation and by stock entries.
func (l *ProductLot) Increase(quantity kernel.Quantity) error {
	if err := l.Validate(); err != nil {
		return err
	}

	l.quantity = l.quantity.Add(quantity)
	return nil
}

// Deactivate removes the lot from allocation without deleting its movement
// history.
func (l *ProductLot) Deactivate() error {
	if err := l.Validate(); err != nil {
		return err
	}

	l.active = false
	return nil
}
