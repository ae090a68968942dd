package order

import "grosirku-be/internal/apperr"

var (
	ErrOrderNotFound      = apperr.NotFound("order not found")
	ErrEmptyCart          = apperr.Conflict("cart is empty")
	ErrInvalidSlot        = apperr.Conflict("pickup slot is not available for that date")
	ErrProductUnavailable = apperr.Conflict("some items are out of stock or no longer available")
	ErrInvalidTransition  = apperr.Conflict("illegal order status transition")
)
