package stock

import (
	"errors"
	"fmt"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
)

// MovementType classifies a stock movement. The type fixes the sign of the
// movement quantity so the ledger stays arithmetically consistent.
type MovementType int

const (
	// UnknownMovement represents an invalid or undefined movement type.
	UnknownMovement MovementType = iota

	// Entry records stock arriving into a lot (positive quantity).
	Entry

	// Exit records stock leaving a lot, typically for a delivery
	// allocation (negative quantity).
	Exit

	// Adjustment records a manual correction after a physical count
	// (positive or negative, never zero).
	Adjustment

	// Return records stock restored to a lot by a compensating reversal,
	// typically a cancelled delivery (positive quantity).
	Return
)

// getMovementTypeStrings returns a map of MovementType values to their
// string representations.
func getMovementTypeStrings() map[MovementType]string {
	return map[MovementType]string{
		UnknownMovement: "Unknown",
		Entry:           "ENTRY",
		Exit:            "EXIT",
		Adjustment:      "ADJUSTMENT",
		Return:          "RETURN",
	}
}

// MovementTypeFromString parses the persisted representation.
func MovementTypeFromString(s string) (MovementType, error) {
	for t, str := range getMovementTypeStrings() {
		if t != UnknownMovement && str == s {
			return t, nil
		}
	}
	return UnknownMovement, errs.NewValueIsInvalidErrorWithCause("movement type",
		fmt.Errorf("%q is not a valid movement type", s))
}

// String returns the persisted representation of the movement type.
func (t MovementType) String() string {
	if str, ok := getMovementTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the MovementType is one of the defined kinds.
func (t MovementType) Validate() error {
	switch t {
	case Entry, Exit, Adjustment, Return:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("movement type",
		fmt.Errorf("%d is not a valid movement type", t))
}

// validateSign checks the quantity sign against the movement type.
func (t MovementType) validateSign(quantity int) error {
	switch {
	case quantity == 0:
		return errs.NewValueIsInvalidErrorWithCause("movement quantity",
			errors.New("quantity cannot be zero"))
	case t == Entry && quantity < 0,
		t == Return && quantity < 0:
		return errs.NewValueIsInvalidErrorWithCause("movement quantity",
			fmt.Errorf("%s movement must carry a positive quantity, got %d", t, quantity))
	case t == Exit && quantity > 0:
		return errs.NewValueIsInvalidErrorWithCause("movement quantity",
			fmt.Errorf("EXIT movement must carry a negative quantity, got %d", quantity))
	}
	return nil
}

// Movement is one immutable entry of the stock ledger: a signed quantity
// applied to a lot, with its reason, acting user, and optional reference to
// the business operation (for delivery allocations, the delivery id).
//
// The ledger is append-only and is the sole source of truth for lot
// quantities: for every lot at all times, the lot quantity equals the sum
// of its movements' signed quantities.
type Movement struct {
	id           kernel.UUID
	productID    kernel.UUID
	lotID        kernel.UUID
	movementType MovementType
	quantity     int
	reason       string
	reference    *kernel.UUID
	actor        kernel.UUID
	occurredAt   time.Time
}

// NewMovement creates a ledger entry. The quantity is signed and must match
// the movement type: positive for ENTRY and RETURN, negative for EXIT,
// non-zero for ADJUSTMENT. A reason is always required.
func NewMovement(
	id kernel.UUID,
	productID kernel.UUID,
	lotID kernel.UUID,
	movementType MovementType,
	quantity int,
	reason string,
	reference *kernel.UUID,
	actor kernel.UUID,
	occurredAt time.Time,
) (*Movement, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		lotID.Validate(),
		actor.Validate(),
		movementType.Validate(),
	); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("movement reason")
	}
	if err := movementType.validateSign(quantity); err != nil {
		return nil, err
	}
	if reference != nil {
		if err := reference.Validate(); err != nil {
			return nil, err
		}
	}

	return &Movement{
		id:           id,
		productID:    productID,
		lotID:        lotID,
		movementType: movementType,
		quantity:     quantity,
		reason:       reason,
		reference:    reference,
		actor:        actor,
		occurredAt:   occurredAt,
	}, nil
}

// ID returns the movement's unique identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// ProductID returns the product whose stock moved.
func (m *Movement) ProductID() kernel.UUID {
	return m.productID
}

// LotID returns the lot whose stock moved.
func (m *Movement) LotID() kernel.UUID {
	return m.lotID
}

// Type returns the movement classification.
func (m *Movement) Type() MovementType {
	return m.movementType
}

// Quantity returns the signed quantity applied to the lot.
func (m *Movement) Quantity() int {
	return m.quantity
}

// Reason returns why the stock moved.
func (m *Movement) Reason() string {
	return m.reason
}

// Reference returns the business operation that caused the movement,
// or nil for standalone movements such as manual adjustments.
func (m *Movement) Reference() *kernel.UUID {
	return m.reference
}

// Actor returns who caused the movement.
func (m *Movement) Actor() kernel.UUID {
	return m.actor
}

// OccurredAt returns when the stock moved.
func (m *Movement) OccurredAt() time.Time {
	return m.occurredAt
}
