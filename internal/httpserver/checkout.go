package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutsvc "gpupos/internal/service/checkout"
)

type checkoutRequest struct {
	Customer checkoutsvc.CustomerInput `json:"customer"`
}

func submitCheckout(checkout *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		sale, err := checkout.Submit(sessionID(c), req.Customer)
		if err != nil {
			if errors.Is(err, checkoutsvc.ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			if sale != nil {
				// Recorded but the cart could not be cleared; report the
				// sale anyway so the order is not re-submitted.
				c.JSON(http.StatusCreated, sale)
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, sale)
	}
}
