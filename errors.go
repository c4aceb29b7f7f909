package xmlbuilder

import "errors"

// Values raised via panic when the element content rules are broken.
// These are programming errors, kept separate from the error returns
// used to report sink failures during Write.
var (
	// ErrTextContent is the panic value of AddChild when the element
	// already carries text content.
	ErrTextContent = errors.New("element already carries text content")

	// ErrNonEmptyContent is the panic value of AddText when the element
	// already carries text or child elements.
	ErrNonEmptyContent = errors.New("element is not empty")
)
