package memory

import "errors"

// Domain-specific errors for the memory package.
var (
	ErrEmptyEntry   = errors.New("knowledge text is empty")
	ErrEmptyProduct = errors.New("purchase product is empty")
)
