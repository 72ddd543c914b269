package commands

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var ErrPrepareDeliveryCommandIsNotConstructed = errors.New(
	"PrepareDeliveryCommand must be created via NewPrepareDeliveryCommand constructor",
)

// PrepareDeliveryCommand represents the start of kit and product preparation
// for a delivery held in warehouse custody.
type PrepareDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewPrepareDeliveryCommand creates a command starting preparation.
func NewPrepareDeliveryCommand(deliveryID, actorID kernel.UUID, notes string) (PrepareDeliveryCommand, error) {
	command := PrepareDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorID(actorID),
	); err != nil {
		return PrepareDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PrepareDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPrepareDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being prepared.
func (c PrepareDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the preparing actor.
func (c PrepareDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the free-form preparation notes.
func (c PrepareDeliveryCommand) Notes() string {
	return c.notes
}

func (c *PrepareDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *PrepareDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
