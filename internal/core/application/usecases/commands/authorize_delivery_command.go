package commands

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var ErrAuthorizeDeliveryCommandIsNotConstructed = errors.New(
	"AuthorizeDeliveryCommand must be created via NewAuthorizeDeliveryCommand constructor",
)

// AuthorizeDeliveryCommand represents a request to approve a pending
// delivery, optionally reducing per-line quantities (partial authorization).
type AuthorizeDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID        kernel.UUID
	actorID           kernel.UUID
	notes             string
	partialQuantities map[kernel.UUID]kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAuthorizeDeliveryCommand creates a command to authorize a delivery.
// partialQuantities maps line references (product or kit id) to reduced
// quantities; pass nil to authorize in full. Every partial quantity must be
// positive.
func NewAuthorizeDeliveryCommand(
	deliveryID kernel.UUID,
	actorID kernel.UUID,
	notes string,
	partialQuantities map[kernel.UUID]int,
) (AuthorizeDeliveryCommand, error) {
	command := AuthorizeDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorID(actorID),
		command.setPartialQuantities(partialQuantities),
	); err != nil {
		return AuthorizeDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthorizeDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAuthorizeDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to authorize.
func (c AuthorizeDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the authorizing actor.
func (c AuthorizeDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the free-form authorization notes.
func (c AuthorizeDeliveryCommand) Notes() string {
	return c.notes
}

// PartialQuantities returns the per-line quantity overrides, or nil for a
// full authorization.
func (c AuthorizeDeliveryCommand) PartialQuantities() map[kernel.UUID]kernel.Quantity {
	return c.partialQuantities
}

func (c *AuthorizeDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AuthorizeDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AuthorizeDeliveryCommand) setPartialQuantities(quantities map[kernel.UUID]int) error {
	if len(quantities) == 0 {
		return nil
	}

	partial := make(map[kernel.UUID]kernel.Quantity, len(quantities))
	for ref, value := range quantities {
		if err := ref.Validate(); err != nil {
			return err
		}
		quantity, err := kernel.NewPositiveQuantity(value)
		if err != nil {
			return err
		}
		partial[ref] = quantity
	}

	c.partialQuantities = partial
	return nil
}
