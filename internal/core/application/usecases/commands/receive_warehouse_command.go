package commands

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var ErrReceiveWarehouseCommandIsNotConstructed = errors.New(
	"ReceiveWarehouseCommand must be created via NewReceiveWarehouseCommand constructor",
)

// ReceiveWarehouseCommand represents the warehouse taking custody of an
// authorized delivery.
type ReceiveWarehouseCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewReceiveWarehouseCommand creates a command recording warehouse custody.
func NewReceiveWarehouseCommand(deliveryID, actorID kernel.UUID, notes string) (ReceiveWarehouseCommand, error) {
	command := ReceiveWarehouseCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorID(actorID),
	); err != nil {
		return ReceiveWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReceiveWarehouseCommandIsNotConstructed)
}

// DeliveryID returns the delivery taken into custody.
func (c ReceiveWarehouseCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the warehouse actor.
func (c ReceiveWarehouseCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the free-form custody notes.
func (c ReceiveWarehouseCommand) Notes() string {
	return c.notes
}

func (c *ReceiveWarehouseCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *ReceiveWarehouseCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
