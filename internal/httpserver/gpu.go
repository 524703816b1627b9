package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gpupos/internal/domain"
	"gpupos/internal/ident"
	inventorystore "gpupos/internal/store/inventory"
)

type createGPURequest struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Memory       string `json:"memory"`
	PriceCents   int64  `json:"priceCents"`
	Stock        int    `json:"stock"`
	Image        string `json:"image"`
}

type updateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

func listGPUs(inventory *inventorystore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		gpus := inventory.List()
		if gpus == nil {
			gpus = []domain.GPU{}
		}
		c.JSON(http.StatusOK, gin.H{"gpus": gpus})
	}
}

// createGPU validates the record at the boundary and generates the fresh id
// the inventory store expects from its callers.
func createGPU(inventory *inventorystore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGPURequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.PriceCents < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
			return
		}
		if req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}

		gpu := domain.GPU{
			ID:           ident.New("gpu"),
			Name:         strings.TrimSpace(req.Name),
			Manufacturer: strings.TrimSpace(req.Manufacturer),
			Model:        strings.TrimSpace(req.Model),
			Memory:       strings.TrimSpace(req.Memory),
			PriceCents:   req.PriceCents,
			Stock:        req.Stock,
			Image:        strings.TrimSpace(req.Image),
		}
		if err := inventory.Add(gpu); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
			return
		}
		c.JSON(http.StatusCreated, gpu)
	}
}

func updateGPUStock(inventory *inventorystore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req updateStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock required"})
			return
		}
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be non-negative"})
			return
		}
		if _, err := inventory.Get(id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "gpu not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		if err := inventory.UpdateStock(id, *req.Stock); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
			return
		}
		gpu, err := inventory.Get(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		c.JSON(http.StatusOK, gpu)
	}
}

func removeGPU(inventory *inventorystore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := inventory.Remove(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
