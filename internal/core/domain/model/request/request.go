package request

import (
	"errors"
	"fmt"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via RestoreRequest")

// Status represents the lifecycle state of an aid request. The request CRUD
// collaborator owns most transitions; this core only moves a request
// between Approved, PartiallyDelivered, and Delivered as deliveries
// complete.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Registered is a freshly submitted request.
	Registered

	// InReview is a request being evaluated.
	InReview

	// Approved is a request cleared for delivery creation.
	Approved

	// Rejected is a request denied during review.
	Rejected

	// Delivered is a request whose every line is fully delivered.
	Delivered

	// PartiallyDelivered is a request with some but not all quantities
	// delivered.
	PartiallyDelivered

	// Cancelled is a request withdrawn before completion.
	Cancelled
)

// getStatusStrings returns a map of Status values to their persisted
// representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:      "Unknown",
		Registered:         "REGISTERED",
		InReview:           "IN_REVIEW",
		Approved:           "APPROVED",
		Rejected:           "REJECTED",
		Delivered:          "DELIVERED",
		PartiallyDelivered: "PARTIALLY_DELIVERED",
		Cancelled:          "CANCELLED",
	}
}

// StatusFromString parses the persisted representation.
func StatusFromString(str string) (Status, error) {
	for s, candidate := range getStatusStrings() {
		if s != UnknownStatus && candidate == str {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("request status",
		fmt.Errorf("%q is not a valid request status", str))
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status is one of the defined request states.
func (s Status) Validate() error {
	if s == UnknownStatus {
		return errs.NewValueIsInvalidErrorWithCause("request status",
			fmt.Errorf("%d is not a valid request status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("request status",
			fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// CanAcceptDelivery reports whether a new delivery may be created against a
// request in this status.
func (s Status) CanAcceptDelivery() bool {
	return s == Approved || s == PartiallyDelivered
}

// Line is one requested product or kit on an aid request, tracking how much
// of it has been delivered so far. Exactly one of the product or kit
// references is set.
type Line struct {
	productID *kernel.UUID
	kitID     *kernel.UUID
	requested kernel.Quantity
	delivered kernel.Quantity
}

// RestoreLine reconstructs a request line from persistence.
func RestoreLine(productID, kitID *kernel.UUID, requested, delivered kernel.Quantity) (*Line, error) {
	if (productID == nil) == (kitID == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("request line",
			errors.New("must reference exactly one of product or kit"))
	}
	if requested.LessThan(delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause("request line",
			fmt.Errorf("delivered %s exceeds requested %s", delivered, requested))
	}

	return &Line{
		productID: productID,
		kitID:     kitID,
		requested: requested,
		delivered: delivered,
	}, nil
}

// Ref returns the identifier of the referenced product or kit.
func (l *Line) Ref() kernel.UUID {
	if l.productID != nil {
		return *l.productID
	}
	return *l.kitID
}

// ProductID returns the referenced product, or nil for a kit line.
func (l *Line) ProductID() *kernel.UUID {
	return l.productID
}

// KitID returns the referenced kit, or nil for a product line.
func (l *Line) KitID() *kernel.UUID {
	return l.kitID
}

// Requested returns the total quantity the beneficiary asked for.
func (l *Line) Requested() kernel.Quantity {
	return l.requested
}

// Delivered returns the quantity delivered so far.
func (l *Line) Delivered() kernel.Quantity {
	return l.delivered
}

// Remaining returns how much of the line is still undelivered.
func (l *Line) Remaining() kernel.Quantity {
	remaining, err := l.requested.Subtract(l.delivered)
	if err != nil {
		// delivered never exceeds requested (RestoreLine and applyDelivered enforce it)
		return kernel.Quantity{}
	}
	return remaining
}

// IsFulfilled reports whether the line is fully delivered.
func (l *Line) IsFulfilled() bool {
	return l.Remaining().IsZero()
}

// applyDelivered adds a delivered quantity, refusing to exceed the
// requested total.
func (l *Line) applyDelivered(quantity kernel.Quantity) error {
	newDelivered := l.delivered.Add(quantity)
	if l.requested.LessThan(newDelivered) {
		return errs.NewValueIsOutOfRangeError("delivered quantity",
			newDelivered.Value(), 0, l.requested.Value())
	}
	l.delivered = newDelivered
	return nil
}

// Request is the aid request entity as far as this core owns it: per-line
// requested and delivered quantities plus the status recomputation that
// runs when a delivery completes. Creation, review, and rejection of
// requests belong to the request CRUD collaborator.
type Request struct {
	id      kernel.UUID
	status  Status
	lines   []*Line
	version int

	isConstructed bool
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(id kernel.UUID, status Status, lines []*Line, version int) (*Request, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("request",
			fmt.Errorf("%d is negative", version))
	}

	return &Request{
		id:            id,
		status:        status,
		lines:         lines,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// Status returns the current request status.
func (r *Request) Status() Status {
	return r.status
}

// Lines returns the request's lines.
func (r *Request) Lines() []*Line {
	return r.lines
}

// Version returns the optimistic-lock version read from persistence.
func (r *Request) Version() int {
	return r.version
}

// LineByRef returns the line referencing the given product or kit, or nil.
func (r *Request) LineByRef(ref kernel.UUID) *Line {
	for _, line := range r.lines {
		if line.Ref().IsEqual(ref) {
			return line
		}
	}
	return nil
}

// RemainingFor returns the undelivered quantity of the line referencing the
// given product or kit. Unknown references have nothing remaining.
func (r *Request) RemainingFor(ref kernel.UUID) kernel.Quantity {
	if line := r.LineByRef(ref); line != nil {
		return line.Remaining()
	}
	return kernel.Quantity{}
}

// ApplyDelivery increments the delivered quantity of every matching line
// and recomputes the request status: Delivered when every line is fully
// delivered, PartiallyDelivered otherwise. The caller persists the result
// in the same atomic unit as the delivery's own transition.
func (r *Request) ApplyDelivery(quantities map[kernel.UUID]kernel.Quantity) error {
	if err := r.Validate(); err != nil {
		return err
	}

	for ref, quantity := range quantities {
		line := r.LineByRef(ref)
		if line == nil {
			return errs.NewObjectNotFoundError("request line", ref.String())
		}
		if err := line.applyDelivered(quantity); err != nil {
			return err
		}
	}

	r.recomputeStatus()
	return nil
}

// recomputeStatus derives the fulfillment status from the lines.
func (r *Request) recomputeStatus() {
	for _, line := range r.lines {
		if !line.IsFulfilled() {
			r.status = PartiallyDelivered
			return
		}
	}
	r.status = Delivered
}
