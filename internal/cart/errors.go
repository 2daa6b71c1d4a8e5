package cart

import "errors"

// Engine errors. Unknown products surface as catalog.ErrNotFound.
var (
	ErrOutOfStock       = errors.New("out of stock")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidFormat    = errors.New("invalid student id format")
)
