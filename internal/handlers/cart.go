package handlers

import (
	"net/http"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity"`
}

// AddToCart handles POST /api/cart/add.
func (h *Handlers) AddToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperr.Validation("invalid request body"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	count, err := h.carts.Add(c.Request.Context(), middleware.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_count": count})
}

// UpdateCartItem handles POST /api/cart/update. Quantity zero removes
// the line.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperr.Validation("invalid request body"))
		return
	}

	if err := h.carts.SetQuantity(c.Request.Context(), middleware.SessionID(c), req.ProductID, req.Quantity); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

// RemoveCartItem handles POST /api/cart/remove.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperr.Validation("invalid request body"))
		return
	}

	if err := h.carts.Remove(c.Request.Context(), middleware.SessionID(c), req.ProductID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}

// ViewCart handles GET /api/cart.
func (h *Handlers) ViewCart(c *gin.Context) {
	items, err := h.carts.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// CartCount handles GET /api/cart/count.
func (h *Handlers) CartCount(c *gin.Context) {
	count, err := h.carts.Count(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart_count": count})
}
