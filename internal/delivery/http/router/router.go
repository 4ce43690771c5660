// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"padpro/config"
	"padpro/internal/delivery/http/middleware"
	"padpro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	UserHandler         *handler.UserHandler
	ReceiptHandler      *handler.ReceiptHandler
	AlertHandler        *handler.AlertHandler
	DeviceHandler       *handler.DeviceHandler
	PromotionHandler    *handler.PromotionHandler
	SubscriptionHandler *handler.SubscriptionHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	userHandler         *handler.UserHandler
	receiptHandler      *handler.ReceiptHandler
	alertHandler        *handler.AlertHandler
	deviceHandler       *handler.DeviceHandler
	promotionHandler    *handler.PromotionHandler
	subscriptionHandler *handler.SubscriptionHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		userHandler:         params.UserHandler,
		receiptHandler:      params.ReceiptHandler,
		alertHandler:        params.AlertHandler,
		deviceHandler:       params.DeviceHandler,
		promotionHandler:    params.PromotionHandler,
		subscriptionHandler: params.SubscriptionHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Receipt routes that require authentication
	receiptGroup := e.Group("/receipts")
	receiptGroup.Use(r.authMiddleware.Authenticate)
	{
		receiptGroup.POST("", r.receiptHandler.IngestReceipt)
		receiptGroup.GET("", r.receiptHandler.GetUserReceipts)
		receiptGroup.DELETE("/:id", r.receiptHandler.DeleteReceipt)
	}

	// Alert routes that require authentication
	alertGroup := e.Group("/alerts")
	alertGroup.Use(r.authMiddleware.Authenticate)
	{
		alertGroup.GET("", r.alertHandler.GetActiveAlerts)
		alertGroup.POST("/:id/dismiss", r.alertHandler.DismissAlert)
	}

	// Device routes that require authentication
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PATCH("/:id/token", r.deviceHandler.UpdateToken)
		deviceGroup.PATCH("/:id/preferences", r.deviceHandler.UpdatePreferences)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Subscription routes. The webhook endpoint is unauthenticated because
	// billing providers call it directly; reconciliation happens upstream.
	subscriptionGroup := e.Group("/subscriptions")
	{
		subscriptionGroup.POST("/webhook", r.subscriptionHandler.HandleWebhook)
		subscriptionGroup.GET("/me", r.subscriptionHandler.GetUserSubscription, r.authMiddleware.Authenticate)
	}

	// Promotion ingestion routes for the scanning pipeline
	promotionGroup := e.Group("/promotions")
	{
		promotionGroup.POST("", r.promotionHandler.CreatePromotion)
		promotionGroup.POST("/:id/process", r.promotionHandler.ProcessPromotion)
	}

	// Test routes for middleware validation, only enabled via configuration
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
