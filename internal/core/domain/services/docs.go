// Package services contains stateless domain services that coordinate
// behavior across aggregates: the FEFO LotAllocator, which plans stock
// allocations without mutating anything, and the KitExpander, which maps
// kit lines to the product demands their allocation requires.
package services
