package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PickupSlots handles GET /api/pickup/slots. Without a date it
// returns the daily slot template; with ?date=YYYY-MM-DD it filters
// out slots whose cutoff has already passed for that day.
func (h *Handlers) PickupSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		slots, err := h.pickups.ListSlots(c.Request.Context())
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": slots})
		return
	}

	slots, err := h.pickups.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// SuggestedPickupDate handles GET /api/pickup/suggested-date.
func (h *Handlers) SuggestedPickupDate(c *gin.Context) {
	date, err := h.pickups.SuggestedDate(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date})
}
