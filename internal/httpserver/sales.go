package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gpupos/internal/domain"
	salesstore "gpupos/internal/store/sales"
)

type updateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listSales(sales *salesstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := sales.List()
		if list == nil {
			list = []domain.Sale{}
		}
		c.JSON(http.StatusOK, gin.H{"sales": list})
	}
}

func salesSummary(sales *salesstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sales.Summarize())
	}
}

func updateSaleStatus(sales *salesstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req updateSaleStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		if _, err := sales.Get(id); errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		err := sales.UpdateStatus(id, domain.SaleStatus(req.Status))
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		case errors.Is(err, domain.ErrStatusFinal):
			c.JSON(http.StatusConflict, gin.H{"error": "status is final"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
			return
		}
		sale, err := sales.Get(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}
