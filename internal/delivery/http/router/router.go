// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"maple/config"
	"maple/internal/delivery/http/middleware"
	"maple/internal/delivery/http/router/handler"
	"maple/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	UserHandler         *handler.UserHandler
	AddressHandler      *handler.AddressHandler
	MenuHandler         *handler.MenuHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	PointsHandler       *handler.PointsHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.RefreshToken)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// Public catalog routes
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", p.MenuHandler.ListMenu)
		menuGroup.GET("/:id", p.MenuHandler.GetProduct)
		menuGroup.GET("/:id/reviews", p.ReviewHandler.ListProductReviews)
	}

	// Customer routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PUT("/password", p.UserHandler.ChangePassword)
		userGroup.DELETE("/account", p.UserHandler.DeleteAccount)

		userGroup.GET("/addresses", p.AddressHandler.ListAddresses)
		userGroup.POST("/addresses", p.AddressHandler.CreateAddress)
		userGroup.PUT("/addresses/:id", p.AddressHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:id", p.AddressHandler.DeleteAddress)

		userGroup.GET("/points/balance", p.PointsHandler.GetBalance)
		userGroup.GET("/points/history", p.PointsHandler.GetHistory)

		userGroup.GET("/notifications", p.NotificationHandler.ListNotifications)
		userGroup.GET("/notifications/unread", p.NotificationHandler.UnreadCount)
		userGroup.PUT("/notifications/:id/read", p.NotificationHandler.MarkRead)
		userGroup.PUT("/notifications/read-all", p.NotificationHandler.MarkAllRead)

		userGroup.POST("/devices", p.DeviceHandler.RegisterDevice)
		userGroup.GET("/devices", p.DeviceHandler.GetUserDevices)
		userGroup.DELETE("/devices", p.DeviceHandler.UnregisterDevice)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(p.AuthMiddleware.Authenticate)
	{
		cartGroup.GET("", p.CartHandler.GetCart)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PUT("/items/:id", p.CartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", p.CartHandler.RemoveItem)
		cartGroup.DELETE("", p.CartHandler.ClearCart)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(p.AuthMiddleware.Authenticate)
	{
		checkoutGroup.POST("/intent", p.CheckoutHandler.CreateIntent)
		checkoutGroup.POST("/confirm", p.CheckoutHandler.Confirm)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(p.AuthMiddleware.Authenticate)
	{
		orderGroup.GET("", p.OrderHandler.ListMyOrders)
		orderGroup.GET("/:id", p.OrderHandler.GetOrder)
		orderGroup.GET("/:id/qrcode", p.OrderHandler.GetPickupQRCode)
		orderGroup.GET("/:orderID/reviewable", p.ReviewHandler.ListReviewable)
	}

	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(p.AuthMiddleware.Authenticate)
	{
		reviewGroup.POST("/product", p.ReviewHandler.SubmitProductReview)
		reviewGroup.POST("/restaurant", p.ReviewHandler.SubmitRestaurantReview)
		reviewGroup.GET("/mine", p.ReviewHandler.ListMyReviews)
	}

	// Staff routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/orders", p.OrderHandler.ListOrdersByStatus)
		adminGroup.GET("/orders/:id", p.OrderHandler.GetOrderAsStaff)
		adminGroup.PUT("/orders/:id/status", p.OrderHandler.UpdateStatus)

		adminGroup.POST("/menu", p.MenuHandler.CreateProduct)
		adminGroup.PUT("/menu/:id", p.MenuHandler.UpdateProduct)

		adminGroup.GET("/reviews/pending", p.ReviewHandler.ListPendingReviews)
		adminGroup.PUT("/reviews/:id/approve", p.ReviewHandler.ApproveReview)
		adminGroup.PUT("/reviews/:id/reject", p.ReviewHandler.RejectReview)

		adminGroup.POST("/points/adjust", p.PointsHandler.AdjustPoints)
		adminGroup.POST("/notifications/broadcast", p.NotificationHandler.Broadcast)
	}

	// Test routes for middleware validation, gated by config
	if p.Config.TestRoutes != nil && p.Config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", p.TestHandler.TestPublicEndpoint)
			testGroup.GET("/auth", p.TestHandler.TestAuthMiddleware, p.AuthMiddleware.Authenticate)
		}
	}
}
