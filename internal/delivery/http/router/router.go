// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DispatchHandler *handler.DispatchHandler
	ReviewHandler   *handler.ReviewHandler
	InboxHandler    *handler.InboxHandler
	LocationHandler *handler.LocationHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dispatchHandler *handler.DispatchHandler
	reviewHandler   *handler.ReviewHandler
	inboxHandler    *handler.InboxHandler
	locationHandler *handler.LocationHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dispatchHandler: params.DispatchHandler,
		reviewHandler:   params.ReviewHandler,
		inboxHandler:    params.InboxHandler,
		locationHandler: params.LocationHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Sender-facing dispatch routes
	dispatchGroup := e.Group("/dispatches")
	dispatchGroup.Use(r.authMiddleware.Authenticate)
	{
		dispatchGroup.POST("", r.dispatchHandler.Submit)
		dispatchGroup.GET("/history", r.dispatchHandler.History)
		dispatchGroup.PUT("/:id", r.dispatchHandler.Update)
		dispatchGroup.DELETE("/:id", r.dispatchHandler.Delete)
		dispatchGroup.GET("/:id/qrcode", r.dispatchHandler.ShareQR)
	}

	// Admin review routes
	adminGroup := e.Group("/admin/dispatches")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(middleware.AdminRole))
	{
		adminGroup.GET("/pending", r.reviewHandler.ListPending)
		adminGroup.POST("/:id/approve", r.reviewHandler.Approve)
		adminGroup.POST("/:id/reject", r.reviewHandler.Reject)
		adminGroup.PUT("/:id", r.dispatchHandler.Update)
		adminGroup.DELETE("/:id", r.dispatchHandler.Delete)
		adminGroup.POST("", r.dispatchHandler.Submit)
	}

	// Recipient inbox routes
	inboxGroup := e.Group("/notifications")
	inboxGroup.Use(r.authMiddleware.Authenticate)
	{
		inboxGroup.GET("", r.inboxHandler.List)
		inboxGroup.GET("/unread-count", r.inboxHandler.UnreadCount)
		inboxGroup.POST("/:id/read", r.inboxHandler.MarkRead)
	}

	// Profile routes for location and device registration
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.PUT("/location", r.locationHandler.Record)
		meGroup.GET("/locations", r.locationHandler.List)
		meGroup.POST("/devices", r.deviceHandler.Register)
	}
}
