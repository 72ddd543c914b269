package commands

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrLinesAreRequired = errors.New("at least one line is required")
)

// LineInput is one requested product or kit quantity on a new delivery.
// Exactly one of ProductID or KitID must be set.
type LineInput struct {
	ProductID *kernel.UUID
	KitID     *kernel.UUID
	Quantity  int
}

// CreateDeliveryCommand represents a request to open a delivery against an
// approved aid request.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, requestID, actorID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	requestID  kernel.UUID
	actorID    kernel.UUID
	lines      []LineInput

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open a new delivery.
// Validates that all identifiers are valid, at least one line is present,
// and every line carries a positive quantity with exactly one reference.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	requestID kernel.UUID,
	actorID kernel.UUID,
	lines []LineInput,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setRequestID(requestID),
		command.setActorID(actorID),
		command.setLines(lines),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequestID returns the owning aid request.
func (c CreateDeliveryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the creating actor.
func (c CreateDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Lines returns the requested lines.
func (c CreateDeliveryCommand) Lines() []LineInput {
	return c.lines
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateDeliveryCommand) setLines(lines []LineInput) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	c.lines = lines
	return nil
}
