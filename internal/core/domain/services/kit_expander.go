package services

import (
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/kit"
)

// ProductDemand is one product quantity that must be allocated from stock.
type ProductDemand struct {
	ProductID kernel.UUID
	Quantity  kernel.Quantity
}

// KitExpander is a domain service that expands kit lines into the product
// demands their allocation requires. It is a pure mapping, independent of
// persistence, so kit expansion rules stay unit-testable on their own.
type KitExpander struct{}

// NewKitExpander creates a new KitExpander instance.
func NewKitExpander() KitExpander {
	return KitExpander{}
}

// Expand returns one demand per kit component, each scaled by the number of
// kits requested: count kits of a kit containing 3 units of product P
// demand 3*count units of P.
func (e KitExpander) Expand(k *kit.Kit, count kernel.Quantity) ([]ProductDemand, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	demands := make([]ProductDemand, 0, len(k.Components()))
	for _, component := range k.Components() {
		total, err := kernel.NewQuantity(component.Quantity().Value() * count.Value())
		if err != nil {
			return nil, err
		}
		demands = append(demands, ProductDemand{
			ProductID: component.ProductID(),
			Quantity:  total,
		})
	}

	return demands, nil
}
