// Package delivery contains the Delivery aggregate root and its supporting
// value objects: the workflow Status state machine with its central
// transition table, line items with partial-authorization overrides and
// recorded lot draws, append-only transition history, the handoff receiver
// identity, and the pure segregation-of-duties check.
//
// The aggregate owns every workflow rule that can be decided from its own
// state. Rules that need other aggregates (request fulfillment limits,
// stock availability) live in the command handlers, which coordinate the
// aggregates inside one unit of work.
package delivery
