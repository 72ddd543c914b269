// Package kit defines aid kit compositions: a kit is a named bundle of
// component products, each with a per-kit quantity. Kits are expanded into
// plain product demands at allocation time.
package kit

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
)

// ErrKitIsNotConstructed is returned when a Kit instance was not created
// through NewKit.
var ErrKitIsNotConstructed = errors.New("Kit must be created via NewKit")

// Component is one product inside a kit with its per-kit quantity.
type Component struct {
	productID kernel.UUID
	quantity  kernel.Quantity
}

// NewComponent creates a kit component of quantity units of a product.
func NewComponent(productID kernel.UUID, quantity kernel.Quantity) (Component, error) {
	if err := productID.Validate(); err != nil {
		return Component{}, err
	}
	if quantity.IsZero() {
		return Component{}, errs.NewValueIsRequiredError("component quantity")
	}
	return Component{productID: productID, quantity: quantity}, nil
}

// ProductID returns the component's product.
func (c Component) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns how many units of the product one kit contains.
func (c Component) Quantity() kernel.Quantity {
	return c.quantity
}

// Kit is a bundle of component products handed out as one unit, for
// example a hygiene kit or a food basket.
type Kit struct {
	id         kernel.UUID
	name       string
	components []Component

	isConstructed bool
}

// NewKit creates a kit from its components. At least one component is
// required and no product may appear twice.
func NewKit(id kernel.UUID, name string, components []Component) (*Kit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("kit name")
	}
	if len(components) == 0 {
		return nil, errs.NewValueIsRequiredError("kit components")
	}

	seen := make(map[kernel.UUID]struct{}, len(components))
	for _, c := range components {
		if _, dup := seen[c.productID]; dup {
			return nil, errs.NewValueIsInvalidError("kit components")
		}
		seen[c.productID] = struct{}{}
	}

	return &Kit{
		id:            id,
		name:          name,
		components:    components,
		isConstructed: true,
	}, nil
}

// Validate ensures the Kit instance was properly constructed.
func (k *Kit) Validate() error {
	if k == nil || !k.isConstructed {
		return ErrKitIsNotConstructed
	}
	return nil
}

// ID returns the kit's unique identifier.
func (k *Kit) ID() kernel.UUID {
	return k.id
}

// Name returns the kit's display name.
func (k *Kit) Name() string {
	return k.name
}

// Components returns the kit's components.
func (k *Kit) Components() []Component {
	return k.components
}
