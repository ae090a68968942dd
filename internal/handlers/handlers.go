// Package handlers exposes the storefront and seller admin over HTTP.
package handlers

import (
	"net/http"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/banner"
	"grosirku-be/internal/cart"
	"grosirku-be/internal/logger"
	"grosirku-be/internal/order"
	"grosirku-be/internal/pickup"
	"grosirku-be/internal/product"
	"grosirku-be/internal/receipt"
	"grosirku-be/internal/seller"
	"grosirku-be/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds every HTTP handler and the services they delegate to.
type Handlers struct {
	products product.Service
	banners  banner.Service
	carts    cart.Service
	pickups  pickup.Service
	orders   order.Service
	sellers  seller.Service
	uploads  *upload.Store
	receipts *receipt.Renderer
}

func NewHandlers(
	products product.Service,
	banners banner.Service,
	carts cart.Service,
	pickups pickup.Service,
	orders order.Service,
	sellers seller.Service,
	uploads *upload.Store,
	receipts *receipt.Renderer,
) *Handlers {
	return &Handlers{
		products: products,
		banners:  banners,
		carts:    carts,
		pickups:  pickups,
		orders:   orders,
		sellers:  sellers,
		uploads:  uploads,
		receipts: receipts,
	}
}

// handleError translates the error taxonomy into an HTTP answer.
// Internal failures are logged with full detail but answered with a
// generic message.
func handleError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperr.KindUpload:
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
