package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/D4RKPR1NC366/venuevista-sub001/internal/config"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/container"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/handlers"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/middleware"
	"github.com/D4RKPR1NC366/venuevista-sub001/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(cfg *config.Config, c *container.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.OriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "venuevista-api",
			})
		})

		// public routes
		v1.POST("/register", handlers.RegisterCustomerHandler(c.AccountService))
		v1.POST("/register/supplier", handlers.RegisterSupplierHandler(c.AccountService))
		v1.POST("/login", handlers.LoginHandler(c.AccountService))
		v1.POST("/login/mfa", handlers.VerifyMFAHandler(c.AccountService))
		v1.POST("/login/mfa/resend", handlers.ResendMFAHandler(c.AccountService))
		v1.POST("/logout", handlers.LogoutHandler())

		// public catalog reads
		v1.GET("/products", handlers.ListProductsHandler(c.CatalogService))
		v1.GET("/products/:id", handlers.GetProductHandler(c.CatalogService))
		v1.GET("/categories", handlers.ListCategoriesHandler(c.CatalogService))
		v1.GET("/event-types", handlers.ListEventTypesHandler(c.CatalogService))
		v1.GET("/promos", handlers.ListPromosHandler(c.CatalogService))
		v1.GET("/reviews", handlers.ListReviewsHandler(c.ReviewService))
		v1.GET("/suppliers", handlers.ListSuppliersHandler(c.AccountService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(c.Logger))
	{
		protected.GET("/profile", handlers.GetProfileHandler(c.AccountService))
		protected.PATCH("/profile", handlers.UpdateProfileHandler(c.AccountService))
		protected.POST("/profile/verify-password", handlers.VerifyPasswordHandler(c.AccountService))
		protected.POST("/profile/mfa", handlers.ToggleMFAHandler(c.AccountService))

		protected.GET("/cart", handlers.GetCartHandler(c.CartService))
		protected.POST("/cart", handlers.AddToCartHandler(c.CartService, c.CatalogService))
		protected.DELETE("/cart", handlers.ClearCartHandler(c.CartService))
		protected.DELETE("/cart/:product_id", handlers.RemoveCartItemHandler(c.CartService))

		protected.POST("/bookings", handlers.CreateBookingHandler(c.BookingService))
		protected.GET("/bookings/mine", handlers.ListMyBookingsHandler(c.BookingService))
		protected.GET("/bookings/:id", handlers.GetBookingHandler(c.BookingService))
		protected.POST("/bookings/:id/cancel-request", handlers.RequestCancellationHandler(c.BookingService))
		protected.POST("/bookings/:id/reschedule-request", handlers.RequestRescheduleHandler(c.BookingService))
		protected.POST("/bookings/:id/payment", handlers.SubmitPaymentHandler(c.BookingService))

		protected.POST("/reviews", handlers.CreateReviewHandler(c.ReviewService))

		protected.GET("/notifications", handlers.ListNotificationsHandler(c.NotificationService))
		protected.GET("/notifications/feed", handlers.FeedHandler(c.NotificationService))
		protected.PATCH("/notifications/:id/read", handlers.MarkNotificationReadHandler(c.NotificationService))

		protected.GET("/schedules", handlers.ListSchedulesHandler(c.ScheduleService))
	}

	supplier := protected.Group("/supplier")
	supplier.Use(middleware.RequireRole(string(models.RoleSupplier)))
	{
		supplier.POST("/availability", handlers.SetAvailabilityHandler(c.AccountService))
		supplier.POST("/schedules/:id/respond", handlers.RespondScheduleHandler(c.ScheduleService))
	}

	catalogWrite := protected.Group("/")
	catalogWrite.Use(middleware.RequireRole(string(models.RoleSupplier), string(models.RoleAdmin)))
	{
		catalogWrite.POST("/products", handlers.CreateProductHandler(c.CatalogService))
		catalogWrite.PATCH("/products/:id", handlers.UpdateProductHandler(c.CatalogService))
		catalogWrite.DELETE("/products/:id", handlers.DeleteProductHandler(c.CatalogService))
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
	{
		admin.GET("/bookings", handlers.ListBookingsHandler(c.BookingService))
		admin.GET("/bookings/counts", handlers.CountBookingsHandler(c.BookingService))
		admin.POST("/bookings/:id/status", handlers.TransitionBookingHandler(c.BookingService))
		admin.POST("/bookings/:id/cancel-request/resolve", handlers.ResolveCancellationHandler(c.BookingService))
		admin.POST("/bookings/:id/reschedule-request/resolve", handlers.ResolveRescheduleHandler(c.BookingService))

		admin.POST("/categories", handlers.CreateCategoryHandler(c.CatalogService))
		admin.POST("/event-types", handlers.CreateEventTypeHandler(c.CatalogService))
		admin.POST("/promos", handlers.CreatePromoHandler(c.CatalogService))
		admin.DELETE("/promos/:id", handlers.DeletePromoHandler(c.CatalogService))

		admin.POST("/schedules", handlers.CreateScheduleHandler(c.ScheduleService))
	}

	return r
}
