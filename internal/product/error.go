package product

import "grosirku-be/internal/apperr"

var ErrNotFound = apperr.NotFound("product not found")
