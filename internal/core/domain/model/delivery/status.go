package delivery

// Status represents the lifecycle state of a delivery.
// It implements a state machine with a single central transition table so
// every workflow rule about which step may follow which is declared in one
// place instead of being re-derived per endpoint.
//
// State transitions:
//
//	PendingAuthorization ──> Authorized ──> ReceivedWarehouse ──> InPreparation ──> Ready ──> Delivered
//	         │                    │                 │                   │             │
//	         └────────────────────┴─────────────────┴───────────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingAuthorization is the initial status of a freshly created
	// delivery, waiting for an authorizer distinct from its creator.
	PendingAuthorization

	// Authorized indicates the delivery was approved and may be handed
	// over to the warehouse.
	Authorized

	// ReceivedWarehouse indicates the warehouse took custody of the
	// delivery paperwork and will start picking.
	ReceivedWarehouse

	// InPreparation indicates the warehouse is assembling the kits and
	// products of the delivery.
	InPreparation

	// Ready indicates stock has been allocated and decremented; the
	// delivery is packed and waiting for physical handoff.
	Ready

	// Delivered indicates the beneficiary received the goods.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the delivery was aborted before handoff.
	// This is a terminal state; stock drawn at Ready has been returned.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		PendingAuthorization: "PendingAuthorization",
		Authorized:           "Authorized",
		ReceivedWarehouse:    "ReceivedWarehouse",
		InPreparation:        "InPreparation",
		Ready:                "Ready",
		Delivered:            "Delivered",
		Cancelled:            "Cancelled",
	}
}

// getTransitions returns the central transition table. Cancellation is an
// explicit edge from every non-terminal state; nothing leaves a terminal
// state. All transition validation in the aggregate goes through this table.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingAuthorization: {Authorized, Cancelled},
		Authorized:           {ReceivedWarehouse, Cancelled},
		ReceivedWarehouse:    {InPreparation, Cancelled},
		InPreparation:        {Ready, Cancelled},
		Ready:                {Delivered, Cancelled},
		Delivered:            {},
		Cancelled:            {},
	}
}

// Validate checks if the Status value is one of the defined workflow states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return NewInvalidTransitionError(s, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the central transition table contains an
// edge from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range getTransitions()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo performs a validated transition along the table.
//
// Returns:
//   - (target, nil) when the edge s -> target exists
//   - (0, *InvalidTransitionError) otherwise, including re-attempts of a
//     completed step and any move out of a terminal state
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
