package queries

import (
	"errors"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
	"aiddelivery/internal/pkg/guard"
)

var ErrListPendingAuthorizationsQueryIsNotConstructed = errors.New(
	"ListPendingAuthorizationsQuery must be created via NewListPendingAuthorizationsQuery constructor",
)

// ListPendingAuthorizationsQuery finds deliveries still waiting for
// authorization that were created at or before the given cutoff. The
// reminder job uses it to nudge authorizers about stale deliveries.
type ListPendingAuthorizationsQuery struct {
	createdBefore time.Time

	guard guard.ConstructorGuard
}

// NewListPendingAuthorizationsQuery creates a query for deliveries pending
// authorization since before the cutoff.
func NewListPendingAuthorizationsQuery(createdBefore time.Time) (ListPendingAuthorizationsQuery, error) {
	if createdBefore.IsZero() {
		return ListPendingAuthorizationsQuery{}, errs.NewValueIsRequiredError("createdBefore")
	}

	return ListPendingAuthorizationsQuery{
		createdBefore: createdBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPendingAuthorizationsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingAuthorizationsQueryIsNotConstructed)
}

// CreatedBefore returns the staleness cutoff.
func (q ListPendingAuthorizationsQuery) CreatedBefore() time.Time {
	return q.createdBefore
}

// PendingAuthorizationResponse is one stale delivery awaiting authorization.
type PendingAuthorizationResponse struct {
	ID        kernel.UUID
	Code      string
	CreatedBy kernel.UUID
	CreatedAt time.Time
}

// ListPendingAuthorizationsQueryResponse holds the stale deliveries, oldest
// first.
type ListPendingAuthorizationsQueryResponse struct {
	Deliveries []PendingAuthorizationResponse
}
