package delivery

import (
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"
)

// ErrLineItemReferenceIsAmbiguous is returned when a line item references
// both a product and a kit, or neither.
var ErrLineItemReferenceIsAmbiguous = errors.New("line item must reference exactly one of product or kit")

// LineItem is one requested quantity of a single product or kit inside a
// delivery. Exactly one of the product or kit references is set.
//
// A line carries two quantities:
//   - the requested quantity fixed at creation
//   - an optional authorized quantity recorded during partial authorization,
//     which overrides the requested quantity from the Ready step onward
//
// After stock allocation the line also records the lot draws that satisfied
// it, one LotDraw per (lot, quantity) pair. Kit lines record the draws of
// their expanded component products.
type LineItem struct {
	productID *kernel.UUID
	kitID     *kernel.UUID
	quantity  kernel.Quantity

	authorizedQuantity *kernel.Quantity
	draws              []LotDraw
}

// NewProductLineItem creates a line requesting a quantity of a single product.
func NewProductLineItem(productID kernel.UUID, quantity kernel.Quantity) (*LineItem, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity.IsZero() {
		return nil, errs.NewValueIsRequiredError("line quantity")
	}

	return &LineItem{
		productID: &productID,
		quantity:  quantity,
	}, nil
}

// NewKitLineItem creates a line requesting a quantity of a kit.
func NewKitLineItem(kitID kernel.UUID, quantity kernel.Quantity) (*LineItem, error) {
	if err := kitID.Validate(); err != nil {
		return nil, err
	}
	if quantity.IsZero() {
		return nil, errs.NewValueIsRequiredError("line quantity")
	}

	return &LineItem{
		kitID:    &kitID,
		quantity: quantity,
	}, nil
}

// RestoreLineItem reconstructs a line from persistence, including the
// authorized override and recorded lot draws.
func RestoreLineItem(
	productID, kitID *kernel.UUID,
	quantity kernel.Quantity,
	authorizedQuantity *kernel.Quantity,
	draws []LotDraw,
) (*LineItem, error) {
	li := &LineItem{
		productID:          productID,
		kitID:              kitID,
		quantity:           quantity,
		authorizedQuantity: authorizedQuantity,
		draws:              draws,
	}
	if err := li.Validate(); err != nil {
		return nil, err
	}
	return li, nil
}

// Validate ensures the line references exactly one of product or kit.
func (li *LineItem) Validate() error {
	if (li.productID == nil) == (li.kitID == nil) {
		return ErrLineItemReferenceIsAmbiguous
	}
	return nil
}

// ProductID returns the referenced product, or nil for a kit line.
func (li *LineItem) ProductID() *kernel.UUID {
	return li.productID
}

// KitID returns the referenced kit, or nil for a product line.
func (li *LineItem) KitID() *kernel.UUID {
	return li.kitID
}

// Ref returns the identifier of the referenced product or kit. It is the
// key used to match delivery lines against request lines and partial
// authorization quantities.
func (li *LineItem) Ref() kernel.UUID {
	if li.productID != nil {
		return *li.productID
	}
	return *li.kitID
}

// IsKit reports whether the line references a kit.
func (li *LineItem) IsKit() bool {
	return li.kitID != nil
}

// Quantity returns the quantity requested at creation.
func (li *LineItem) Quantity() kernel.Quantity {
	return li.quantity
}

// AuthorizedQuantity returns the partial-authorization override, or nil if
// the line was authorized in full.
func (li *LineItem) AuthorizedQuantity() *kernel.Quantity {
	return li.authorizedQuantity
}

// EffectiveQuantity returns the quantity that allocation and fulfillment
// must honor: the partial-authorization override when one was recorded,
// otherwise the requested quantity.
func (li *LineItem) EffectiveQuantity() kernel.Quantity {
	if li.authorizedQuantity != nil {
		return *li.authorizedQuantity
	}
	return li.quantity
}

// Draws returns the lot draws recorded when the delivery was marked ready.
// Empty before allocation.
func (li *LineItem) Draws() []LotDraw {
	return li.draws
}

// authorize records a partial-authorization override. The override must be
// positive and must not exceed the requested quantity.
func (li *LineItem) authorize(quantity kernel.Quantity) error {
	if quantity.IsZero() || li.quantity.LessThan(quantity) {
		return errs.NewValueIsOutOfRangeError("authorized quantity", quantity.Value(), 1, li.quantity.Value())
	}
	li.authorizedQuantity = &quantity
	return nil
}

// recordDraws attaches the allocation result to the line.
func (li *LineItem) recordDraws(draws []LotDraw) {
	li.draws = draws
}

// LotDraw records that a quantity of a product was drawn from one lot to
// satisfy a line. For kit lines the product is a kit component, so it may
// differ from the line reference.
type LotDraw struct {
	lotID     kernel.UUID
	productID kernel.UUID
	quantity  kernel.Quantity
}

// NewLotDraw creates a draw of quantity units of productID from lotID.
func NewLotDraw(lotID, productID kernel.UUID, quantity kernel.Quantity) (LotDraw, error) {
	if err := errors.Join(lotID.Validate(), productID.Validate()); err != nil {
		return LotDraw{}, err
	}
	if quantity.IsZero() {
		return LotDraw{}, errs.NewValueIsRequiredError("draw quantity")
	}
	return LotDraw{lotID: lotID, productID: productID, quantity: quantity}, nil
}

// LotID returns the lot the quantity was drawn from.
func (d LotDraw) LotID() kernel.UUID {
	return d.lotID
}

// ProductID returns the product that was drawn.
func (d LotDraw) ProductID() kernel.UUID {
	return d.productID
}

// Quantity returns the drawn quantity.
func (d LotDraw) Quantity() kernel.Quantity {
	return d.quantity
}
