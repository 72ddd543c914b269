package delivery

import (
	"aiddelivery/internal/pkg/errs"
)

// Receiver identifies the person who physically accepted the goods at
// handoff. Both the name and the identity document are required before a
// delivery may complete.
type Receiver struct {
	name     string
	document string
}

// NewReceiver creates a receiver identity. Name and document are required.
func NewReceiver(name, document string) (Receiver, error) {
	if name == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiver name")
	}
	if document == "" {
		return Receiver{}, errs.NewValueIsRequiredError("receiver document")
	}
	return Receiver{name: name, document: document}, nil
}

// Name returns the receiver's full name.
func (r Receiver) Name() string {
	return r.name
}

// Document returns the receiver's identity document number.
func (r Receiver) Document() string {
	return r.document
}
