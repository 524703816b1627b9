package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gpupos/internal/domain"
	cartstore "gpupos/internal/store/cart"
	inventorystore "gpupos/internal/store/inventory"
)

// Cart mutations arrive as a list of tagged actions, one dispatch per
// action, in request order.
type updateCartRequest struct {
	Actions []cartAction `json:"actions"`
}

type cartAction struct {
	Action   string `json:"action"`
	GPUID    string `json:"gpuId"`
	Quantity int    `json:"quantity"`
}

func getCart(carts *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(carts.Get(sessionID(c))))
	}
}

func updateCart(carts *cartstore.Store, inventory *inventorystore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Actions) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "actions required"})
			return
		}

		session := sessionID(c)
		for _, action := range req.Actions {
			gpuID := strings.TrimSpace(action.GPUID)
			if gpuID == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "gpuId required"})
				return
			}
			switch strings.ToLower(strings.TrimSpace(action.Action)) {
			case "additem":
				gpu, err := inventory.Get(gpuID)
				if errors.Is(err, domain.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "gpu not found"})
					return
				}
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
					return
				}
				// The store does not reject out-of-stock additions; the
				// calling layer must.
				if gpu.Stock <= 0 {
					c.JSON(http.StatusConflict, gin.H{"error": "out of stock"})
					return
				}
				if err := carts.AddItem(session, gpu); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
					return
				}
			case "changequantity":
				if err := carts.UpdateQuantity(session, gpuID, action.Quantity); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
					return
				}
			case "removeitem":
				if err := carts.RemoveItem(session, gpuID); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "persist failed"})
					return
				}
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported action"})
				return
			}
		}

		c.JSON(http.StatusOK, cartView(carts.Get(session)))
	}
}

func cartView(cart domain.Cart) domain.Cart {
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return cart
}
