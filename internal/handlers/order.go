package handlers

import (
	"net/http"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/middleware"
	"grosirku-be/internal/order"
	"grosirku-be/internal/receipt"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail *string `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	Notes         *string `json:"notes"`
	PickupDate    string  `json:"pickup_date" binding:"required"`
	SlotID        int64   `json:"slot_id" binding:"required"`
}

// Checkout handles POST /api/checkout.
func (h *Handlers) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperr.Validation("invalid request body"))
		return
	}

	o, err := h.orders.PlaceOrder(c.Request.Context(), middleware.SessionID(c), order.PlaceOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		PickupDate:    req.PickupDate,
		SlotID:        req.SlotID,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// GetOrder handles GET /api/orders/:id.
func (h *Handlers) GetOrder(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// DownloadReceipt handles GET /api/orders/:id/receipt.
func (h *Handlers) DownloadReceipt(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		handleError(c, err)
		return
	}

	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	data, err := h.receipts.Render(o)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+receipt.Filename(o.ID)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
