package kernel

import (
	"fmt"

	"aiddelivery/internal/pkg/errs"
)

// Quantity is a value object representing a non-negative count of discrete
// aid units (products inside a lot, kit components, delivery line items).
// The zero value is a valid quantity of zero; negative quantities cannot be
// constructed.
//
// Quantity is immutable: arithmetic methods return a new Quantity and never
// mutate the receiver. Subtraction below zero fails instead of producing a
// negative count, which keeps stock arithmetic safe by construction.
//
// Example usage:
//
//	available, _ := kernel.NewQuantity(10)
//	needed, _ := kernel.NewQuantity(4)
//
//	remaining, err := available.Subtract(needed)
//	if err != nil {
//	    // would have gone negative
//	}
//	fmt.Println(remaining.Value()) // 6
type Quantity struct {
	value int
}

// NewQuantity creates a Quantity from an integer count.
// Returns an error if the count is negative.
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", value))
	}
	return Quantity{value: value}, nil
}

// NewPositiveQuantity creates a Quantity that must be strictly greater than zero.
// Used for requested and allocated amounts, which are never empty.
func NewPositiveQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return Quantity{value: value}, nil
}

// Value returns the integer count.
func (q Quantity) Value() int {
	return q.value
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// LessThan reports whether q is strictly smaller than other.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value < other.value
}

// Add returns the sum of two quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// Subtract returns q minus other. Fails if the result would be negative,
// so callers can rely on quantities never going below zero.
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	if other.value > q.value {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("cannot subtract %d from %d", other.value, q.value))
	}
	return Quantity{value: q.value - other.value}, nil
}

// Min returns the smaller of the two quantities.
func (q Quantity) Min(other Quantity) Quantity {
	if other.value < q.value {
		return other
	}
	return q
}

// String returns the decimal representation of the count.
func (q Quantity) String() string {
	return fmt.Sprintf("%d", q.value)
}
