package delivery

import (
	"aiddelivery/internal/core/domain/model/kernel"
)

// Step identifies a sensitive workflow step guarded by segregation-of-duties
// rules. Only steps listed here are checked; creation itself has no rule.
type Step int

const (
	// StepAuthorize is the approval of a pending delivery.
	StepAuthorize Step = iota + 1

	// StepReceiveWarehouse is the warehouse taking custody.
	StepReceiveWarehouse

	// StepPrepare is the start of kit/product preparation.
	StepPrepare

	// StepDeliver is the physical handoff to the beneficiary.
	StepDeliver
)

// String returns the step name used in violation messages and events.
func (s Step) String() string {
	switch s {
	case StepAuthorize:
		return "authorize"
	case StepReceiveWarehouse:
		return "receiveWarehouse"
	case StepPrepare:
		return "prepare"
	case StepDeliver:
		return "deliver"
	}
	return "unknown"
}

// Violation describes one broken segregation rule: which step was attempted,
// by whom, and the rule text suitable for direct reporting.
type Violation struct {
	Step  Step
	Actor kernel.UUID
	Rule  string
}

// CheckSegregation evaluates every segregation-of-duties rule that applies
// to the attempted step and returns the full list of violations. It is a
// pure predicate: no rule short-circuits, so a caller can report everything
// broken at once.
//
// Rules per step:
//   - authorize: actor must not equal the creator
//   - receiveWarehouse: actor must not equal the authorizer
//   - prepare: actor must not equal the authorizer
//   - deliver: actor must not equal the authorizer nor the preparer
//
// A nil recorded actor never matches; rules against an actor that has not
// been recorded yet are trivially satisfied.
func CheckSegregation(d *Delivery, actor kernel.UUID, step Step) []Violation {
	var violations []Violation

	sameActor := func(recorded *kernel.UUID) bool {
		return recorded != nil && recorded.IsEqual(actor)
	}

	switch step {
	case StepAuthorize:
		if sameActor(&d.createdBy) {
			violations = append(violations, Violation{
				Step:  step,
				Actor: actor,
				Rule:  "authorizer cannot equal creator",
			})
		}
	case StepReceiveWarehouse:
		if sameActor(d.authorizedBy) {
			violations = append(violations, Violation{
				Step:  step,
				Actor: actor,
				Rule:  "warehouse receiver cannot equal authorizer",
			})
		}
	case StepPrepare:
		if sameActor(d.authorizedBy) {
			violations = append(violations, Violation{
				Step:  step,
				Actor: actor,
				Rule:  "preparer cannot equal authorizer",
			})
		}
	case StepDeliver:
		if sameActor(d.authorizedBy) {
			violations = append(violations, Violation{
				Step:  step,
				Actor: actor,
				Rule:  "deliverer cannot equal authorizer",
			})
		}
		if sameActor(d.preparedBy) {
			violations = append(violations, Violation{
				Step:  step,
				Actor: actor,
				Rule:  "deliverer cannot equal preparer",
			})
		}
	}

	return violations
}
