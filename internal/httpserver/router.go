package httpserver

import (
	"log"

	cartsvc "beerhall/internal/service/cart"
	catalogsvc "beerhall/internal/service/catalog"
	checkoutsvc "beerhall/internal/service/checkout"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services and repositories the handlers need.
type Deps struct {
	CatalogSvc   *catalogsvc.Service
	CartSvc      *cartsvc.Service
	CheckoutSvc  *checkoutsvc.Service
	CustomerRepo customerDirectory
	OrderRepo    orderDirectory
}

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.GET("/beers", listBeersHandler(deps.CatalogSvc))
	api.GET("/beers/:id", getBeerHandler(deps.CatalogSvc))
	api.GET("/brewers", listBrewersHandler(deps.CatalogSvc))
	api.GET("/locations", listLocationsHandler(deps.CatalogSvc))

	withSession := api.Group("", sessionMiddleware())
	withSession.GET("/cart", getCartHandler(deps.CartSvc))
	withSession.POST("/cart/lines", addCartLineHandler(deps.CartSvc))
	withSession.DELETE("/cart/lines/:beerID", removeCartLineHandler(deps.CartSvc))
	withSession.DELETE("/cart", clearCartHandler(deps.CartSvc))
	withSession.GET("/checkout", checkoutFormHandler(deps.CartSvc, deps.CatalogSvc))
	withSession.POST("/checkout", placeOrderHandler(deps.CheckoutSvc))

	api.POST("/customers", registerCustomerHandler(deps.CustomerRepo))
	api.GET("/customers/:email/orders", listOrdersHandler(deps.CustomerRepo, deps.OrderRepo))

	return router
}
