package cart

import "grosirku-be/internal/apperr"

var (
	ErrInvalidQuantity   = apperr.Validation("quantity must be greater than zero")
	ErrInsufficientStock = apperr.Conflict("insufficient stock")
	ErrLineNotFound      = apperr.NotFound("item is not in the cart")
)
