package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	checkoutsvc "gpupos/internal/service/checkout"
	sessionsvc "gpupos/internal/service/session"
	"gpupos/internal/storage"
	cartstore "gpupos/internal/store/cart"
	inventorystore "gpupos/internal/store/inventory"
	salesstore "gpupos/internal/store/sales"
)

// Deps carries the stores and services the routes depend on. Every field is
// required; a nil dependency is a wiring bug and fails construction.
type Deps struct {
	Inventory *inventorystore.Store
	Carts     *cartstore.Store
	Sales     *salesstore.Store
	Checkout  *checkoutsvc.Service
	Sessions  *sessionsvc.Service
}

func (d Deps) validate() error {
	switch {
	case d.Inventory == nil:
		return errors.New("httpserver: inventory store is nil")
	case d.Carts == nil:
		return errors.New("httpserver: cart store is nil")
	case d.Sales == nil:
		return errors.New("httpserver: sales store is nil")
	case d.Checkout == nil:
		return errors.New("httpserver: checkout service is nil")
	case d.Sessions == nil:
		return errors.New("httpserver: session service is nil")
	}
	return nil
}

// sessionHeader names the anonymous session id the browser carries. A
// request without one gets an id issued and echoed back on the response.
const sessionHeader = "X-Session-Id"

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, snapshots *storage.FileStore, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type", sessionHeader},
		ExposeHeaders: []string{sessionHeader},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(snapshots))

	router.GET("/gpus", listGPUs(deps.Inventory))
	router.POST("/gpus", createGPU(deps.Inventory))
	router.PATCH("/gpus/:id/stock", updateGPUStock(deps.Inventory))
	router.DELETE("/gpus/:id", removeGPU(deps.Inventory))

	withSession := router.Group("", sessionMiddleware(deps.Sessions))
	withSession.GET("/cart", getCart(deps.Carts))
	withSession.POST("/cart", updateCart(deps.Carts, deps.Inventory))
	withSession.POST("/checkout", submitCheckout(deps.Checkout))

	router.GET("/sales", listSales(deps.Sales))
	router.GET("/sales/summary", salesSummary(deps.Sales))
	router.PATCH("/sales/:id/status", updateSaleStatus(deps.Sales))

	return router, nil
}

// sessionMiddleware resolves the anonymous session id for cart and checkout
// routes, issuing one when the client has none yet.
func sessionMiddleware(sessions *sessionsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessions.Ensure(c.GetHeader(sessionHeader))
		c.Header(sessionHeader, id)
		c.Set(sessionKey, id)
		c.Next()
	}
}

const sessionKey = "sessionID"

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
