package commands

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents the allocation of stock to a delivery in
// preparation, moving it to Ready.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command allocating stock to a delivery.
func NewMarkReadyCommand(deliveryID, actorID kernel.UUID) (MarkReadyCommand, error) {
	command := MarkReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorID(actorID),
	); err != nil {
		return MarkReadyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// DeliveryID returns the delivery to allocate stock for.
func (c MarkReadyCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the allocating actor.
func (c MarkReadyCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *MarkReadyCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *MarkReadyCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
