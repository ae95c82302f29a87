package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/config"
	"github.com/abreai/abreai-api/controllers"
	"github.com/abreai/abreai-api/middleware"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

// Services bundles the constructed state containers handed to the router
type Services struct {
	Cart      *services.CartService
	Favorites *services.FavoritesService
	Orders    *services.OrderService
	Checkout  *services.CheckoutService
	Chat      *services.ChatService
	Auth      *services.AuthService
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config, svcs Services) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Cookie session for the checkout step state
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("abreai", store))

	router.GET("/health", func(c *gin.Context) {
		if err := utils.CheckSessionStore(c); err != nil {
			utils.LogError("Session store check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	products := controllers.NewProductController()
	cart := controllers.NewCartController(svcs.Cart)
	favorites := controllers.NewFavoritesController(svcs.Favorites)
	checkout := controllers.NewCheckoutController(svcs.Checkout)
	orders := controllers.NewOrderController(svcs.Orders)
	chat := controllers.NewChatController(svcs.Chat, svcs.Auth)
	auth := controllers.NewAuthController(svcs.Auth)

	api := router.Group("/" + utils.APIVersion)
	{
		api.GET("/products", products.List)
		api.GET("/products/:id", products.GetByID)
		api.GET("/coupons", products.ListCoupons)

		api.GET("/cart", cart.Get)
		api.POST("/cart", cart.Add)
		api.PUT("/cart/:id", cart.Update)
		api.DELETE("/cart/:id", cart.Remove)
		api.DELETE("/cart", cart.Clear)

		api.GET("/favorites", favorites.List)
		api.POST("/favorites/toggle", favorites.Toggle)

		api.GET("/checkout", checkout.State)
		api.POST("/checkout/next", checkout.Next)
		api.POST("/checkout/back", checkout.Back)
		api.POST("/checkout/coupon", checkout.ApplyCoupon)
		api.DELETE("/checkout/coupon", checkout.RemoveCoupon)
		api.POST("/checkout/submit", checkout.Submit)

		api.GET("/orders", orders.List)
		api.GET("/orders/:id", orders.GetByID)
		api.GET("/orders/:id/receipt", orders.DownloadReceipt)
		api.POST("/orders/:id/cancel", orders.Cancel)
		api.PUT("/orders/:id/status", orders.UpdateStatus)
		api.GET("/track/:code", orders.Track)
		api.GET("/reports/orders", orders.DownloadOrdersReport)

		api.GET("/chat", chat.Greeting)
		api.POST("/chat", middleware.OptionalAuth(svcs.Auth), chat.Message)

		api.POST("/auth/register", auth.Register)
		api.POST("/auth/login", auth.Login)
		api.POST("/auth/logout", auth.Logout)

		profile := api.Group("/profile", middleware.RequireAuth(svcs.Auth))
		{
			profile.GET("", auth.Profile)
			profile.PUT("", auth.UpdateProfile)
		}
	}

	return router
}
