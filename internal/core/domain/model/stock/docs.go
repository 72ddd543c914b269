// Package stock contains the inventory side of the domain: the ProductLot
// aggregate (the unit of FEFO allocation) and the Movement ledger entry.
//
// The stock ledger is append-only; a lot's quantity is always the sum of
// its movements' signed quantities. Code that changes a lot quantity must
// write the matching movement in the same atomic unit.
package stock
