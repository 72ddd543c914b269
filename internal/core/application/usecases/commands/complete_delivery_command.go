package commands

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the physical handoff of a ready
// delivery to the beneficiary, recording who received it.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID       kernel.UUID
	actorID          kernel.UUID
	receiverName     string
	receiverDocument string
	notes            string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command completing a delivery.
// The receiver's name and document are both required; they identify who
// physically accepted the goods.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID,
	actorID kernel.UUID,
	receiverName string,
	receiverDocument string,
	notes string,
) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		receiverName:     receiverName,
		receiverDocument: receiverDocument,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActorID(actorID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the delivering actor.
func (c CompleteDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ReceiverName returns the name of who accepted the goods.
func (c CompleteDeliveryCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverDocument returns the identity document of who accepted the goods.
func (c CompleteDeliveryCommand) ReceiverDocument() string {
	return c.receiverDocument
}

// Notes returns the free-form handoff notes.
func (c CompleteDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
