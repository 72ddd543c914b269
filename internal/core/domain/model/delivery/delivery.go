package delivery

import (
	"errors"
	"fmt"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery. This ensures all
	// deliveries are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrActorAlreadyRecorded is returned when a transition tries to set an
	// actor field that was already recorded. Actor fields are written at most
	// once over the life of a delivery.
	ErrActorAlreadyRecorded = errors.New("actor field is already recorded")
)

// Delivery is the aggregate root owning one delivery's lifecycle from
// creation through authorization, warehouse custody, preparation, stock
// allocation, and physical handoff.
//
// Delivery follows these invariants:
//   - Status advances monotonically along the central transition table;
//     the only exit edge is the explicit cancellation.
//   - Each actor field (createdBy, authorizedBy, warehouseReceivedBy,
//     preparedBy, deliveredBy) is set at most once and never overwritten.
//   - Every transition appends exactly one HistoryEntry; prior entries are
//     never mutated or removed.
//   - Segregation-of-duties rules are evaluated inside every sensitive
//     transition, with the full violation list surfaced on failure.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Delivery struct {
	id        kernel.UUID
	code      string
	requestID kernel.UUID
	status    Status
	lines     []*LineItem

	createdBy           kernel.UUID
	authorizedBy        *kernel.UUID
	warehouseReceivedBy *kernel.UUID
	preparedBy          *kernel.UUID
	deliveredBy         *kernel.UUID

	partialAuthorization bool
	receiver             *Receiver
	cancelReason         string

	createdAt time.Time
	version   int
	history   []HistoryEntry

	isConstructed bool
}

// NewDelivery creates a delivery in PendingAuthorization status and records
// the creation transition in its history.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - code: human-readable delivery code (required)
//   - requestID: the owning aid request (must be a valid UUID)
//   - createdBy: the actor creating the delivery
//   - lines: at least one line item, with no duplicate product/kit references
//   - now: creation timestamp
//
// Whether the owning request accepts a new delivery (status, remaining
// quantities, no other open delivery) is checked by the create command
// handler against the request aggregate; it needs state this aggregate does
// not own.
func NewDelivery(
	id kernel.UUID,
	code string,
	requestID kernel.UUID,
	createdBy kernel.UUID,
	lines []*LineItem,
	now time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		requestID.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[line.Ref()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("duplicate reference %s", line.Ref()))
		}
		seen[line.Ref()] = struct{}{}
	}

	entry, err := NewHistoryEntry(Unknown, PendingAuthorization, createdBy, "", now)
	if err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		code:          code,
		requestID:     requestID,
		status:        PendingAuthorization,
		lines:         lines,
		createdBy:     createdBy,
		createdAt:     now,
		history:       []HistoryEntry{entry},
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence without replaying
// its transitions. Status, actors, version, and history are restored as read.
func RestoreDelivery(
	id kernel.UUID,
	code string,
	requestID kernel.UUID,
	status Status,
	lines []*LineItem,
	createdBy kernel.UUID,
	authorizedBy, warehouseReceivedBy, preparedBy, deliveredBy *kernel.UUID,
	partialAuthorization bool,
	receiver *Receiver,
	cancelReason string,
	createdAt time.Time,
	version int,
	history []HistoryEntry,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		requestID.Validate(),
		createdBy.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("delivery",
			fmt.Errorf("%d is negative", version))
	}

	return &Delivery{
		id:                   id,
		code:                 code,
		requestID:            requestID,
		status:               status,
		lines:                lines,
		createdBy:            createdBy,
		authorizedBy:         authorizedBy,
		warehouseReceivedBy:  warehouseReceivedBy,
		preparedBy:           preparedBy,
		deliveredBy:          deliveredBy,
		partialAuthorization: partialAuthorization,
		receiver:             receiver,
		cancelReason:         cancelReason,
		createdAt:            createdAt,
		version:              version,
		history:              history,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Code returns the human-readable delivery code.
func (d *Delivery) Code() string {
	return d.code
}

// RequestID returns the owning aid request.
func (d *Delivery) RequestID() kernel.UUID {
	return d.requestID
}

// Status returns the current workflow status.
func (d *Delivery) Status() Status {
	return d.status
}

// Lines returns the delivery's line items in creation order.
func (d *Delivery) Lines() []*LineItem {
	return d.lines
}

// CreatedBy returns the creating actor.
func (d *Delivery) CreatedBy() kernel.UUID {
	return d.createdBy
}

// AuthorizedBy returns the authorizing actor, or nil before authorization.
func (d *Delivery) AuthorizedBy() *kernel.UUID {
	return d.authorizedBy
}

// WarehouseReceivedBy returns the warehouse actor, or nil before custody.
func (d *Delivery) WarehouseReceivedBy() *kernel.UUID {
	return d.warehouseReceivedBy
}

// PreparedBy returns the preparing actor, or nil before preparation.
func (d *Delivery) PreparedBy() *kernel.UUID {
	return d.preparedBy
}

// DeliveredBy returns the delivering actor, or nil before handoff.
func (d *Delivery) DeliveredBy() *kernel.UUID {
	return d.deliveredBy
}

// IsPartiallyAuthorized reports whether partial-authorization quantities
// were recorded during authorization.
func (d *Delivery) IsPartiallyAuthorized() bool {
	return d.partialAuthorization
}

// Receiver returns the recorded handoff receiver, or nil before delivery.
func (d *Delivery) Receiver() *Receiver {
	return d.receiver
}

// CancelReason returns the reason recorded at cancellation, or empty.
func (d *Delivery) CancelReason() string {
	return d.cancelReason
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Version returns the optimistic-lock version read from persistence.
func (d *Delivery) Version() int {
	return d.version
}

// History returns the append-only transition records in order.
func (d *Delivery) History() []HistoryEntry {
	return d.history
}

// Authorize approves a pending delivery.
//
// Preconditions enforced here:
//   - current status is PendingAuthorization (via the transition table)
//   - the actor is not the creator (segregation of duties)
//
// Optional partialQuantities record a reduced authorized quantity per line,
// keyed by the line's product/kit reference. Each value must be positive
// and must not exceed the line's requested quantity. Recorded overrides
// replace the line quantities for allocation and fulfillment.
func (d *Delivery) Authorize(
	actor kernel.UUID,
	notes string,
	partialQuantities map[kernel.UUID]kernel.Quantity,
	now time.Time,
) error {
	if err := d.prepareTransition(actor, StepAuthorize); err != nil {
		return err
	}
	if d.authorizedBy != nil {
		return ErrActorAlreadyRecorded
	}

	for ref, quantity := range partialQuantities {
		line := d.lineByRef(ref)
		if line == nil {
			return errs.NewObjectNotFoundError("line reference", ref.String())
		}
		if err := line.authorize(quantity); err != nil {
			return err
		}
	}

	if err := d.transition(Authorized, actor, notes, now); err != nil {
		return err
	}

	d.authorizedBy = &actor
	d.partialAuthorization = len(partialQuantities) > 0
	return nil
}

// ReceiveAtWarehouse records warehouse custody of an authorized delivery.
// The actor must not be the authorizer.
func (d *Delivery) ReceiveAtWarehouse(actor kernel.UUID, notes string, now time.Time) error {
	if err := d.prepareTransition(actor, StepReceiveWarehouse); err != nil {
		return err
	}
	if d.warehouseReceivedBy != nil {
		return ErrActorAlreadyRecorded
	}

	if err := d.transition(ReceivedWarehouse, actor, notes, now); err != nil {
		return err
	}

	d.warehouseReceivedBy = &actor
	return nil
}

// StartPreparation begins assembling the delivery's kits and products.
// The actor must not be the authorizer.
func (d *Delivery) StartPreparation(actor kernel.UUID, notes string, now time.Time) error {
	if err := d.prepareTransition(actor, StepPrepare); err != nil {
		return err
	}
	if d.preparedBy != nil {
		return ErrActorAlreadyRecorded
	}

	if err := d.transition(InPreparation, actor, notes, now); err != nil {
		return err
	}

	d.preparedBy = &actor
	return nil
}

// MarkReady records the stock allocation result and moves the delivery to
// Ready. drawsByLine is keyed by line reference; every line must have at
// least one draw. The caller is responsible for having decremented the lots
// and written the EXIT movements in the same atomic unit.
func (d *Delivery) MarkReady(actor kernel.UUID, drawsByLine map[kernel.UUID][]LotDraw, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	for _, line := range d.lines {
		draws, ok := drawsByLine[line.Ref()]
		if !ok || len(draws) == 0 {
			return errs.NewValueIsRequiredErrorWithCause("lot draws",
				fmt.Errorf("line %s has no allocation", line.Ref()))
		}
	}

	if err := d.transition(Ready, actor, "", now); err != nil {
		return err
	}

	for _, line := range d.lines {
		line.recordDraws(drawsByLine[line.Ref()])
	}
	return nil
}

// Deliver completes the physical handoff.
//
// Preconditions enforced here:
//   - current status is Ready (via the transition table)
//   - the actor is neither the authorizer nor the preparer
//   - the receiver identity is recorded
func (d *Delivery) Deliver(actor kernel.UUID, receiver Receiver, notes string, now time.Time) error {
	if err := d.prepareTransition(actor, StepDeliver); err != nil {
		return err
	}
	if d.deliveredBy != nil {
		return ErrActorAlreadyRecorded
	}

	if err := d.transition(Delivered, actor, notes, now); err != nil {
		return err
	}

	d.deliveredBy = &actor
	d.receiver = &receiver
	return nil
}

// Cancel terminates the delivery from any non-terminal state. A reason is
// required. Cancellation never deletes: the delivery stays on record with
// its full history. Reversing stock drawn at Ready is the caller's
// responsibility, in the same atomic unit as this transition.
func (d *Delivery) Cancel(actor kernel.UUID, reason string, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel reason")
	}

	if err := d.transition(Cancelled, actor, reason, now); err != nil {
		return err
	}

	d.cancelReason = reason
	return nil
}

// DeliveredQuantities returns the effective quantity per line reference,
// used to update the owning request's fulfillment on completion.
func (d *Delivery) DeliveredQuantities() map[kernel.UUID]kernel.Quantity {
	quantities := make(map[kernel.UUID]kernel.Quantity, len(d.lines))
	for _, line := range d.lines {
		quantities[line.Ref()] = line.EffectiveQuantity()
	}
	return quantities
}

// Draws returns every lot draw recorded across all lines. Empty before the
// delivery reached Ready.
func (d *Delivery) Draws() []LotDraw {
	var draws []LotDraw
	for _, line := range d.lines {
		draws = append(draws, line.draws...)
	}
	return draws
}

// prepareTransition runs the checks shared by all sensitive transitions:
// aggregate construction, actor validity, and segregation of duties.
func (d *Delivery) prepareTransition(actor kernel.UUID, step Step) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if violations := CheckSegregation(d, actor, step); len(violations) > 0 {
		return NewSegregationViolationError(violations)
	}
	return nil
}

// transition moves the status along the central table and appends the one
// history entry for this transition.
func (d *Delivery) transition(to Status, actor kernel.UUID, notes string, now time.Time) error {
	newStatus, err := d.status.TransitionTo(to)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(d.status, newStatus, actor, notes, now)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.history = append(d.history, entry)
	return nil
}

func (d *Delivery) lineByRef(ref kernel.UUID) *LineItem {
	for _, line := range d.lines {
		if line.Ref().IsEqual(ref) {
			return line
		}
	}
	return nil
}
