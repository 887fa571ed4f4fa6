// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"matchdeportivo/config"
	"matchdeportivo/internal/delivery/api/middleware"
	"matchdeportivo/internal/delivery/api/router/handler"
	"matchdeportivo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	ActivityHandler     *handler.ActivityHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	profileHandler      *handler.ProfileHandler
	activityHandler     *handler.ActivityHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	adminHandler        *handler.AdminHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		profileHandler:      params.ProfileHandler,
		activityHandler:     params.ActivityHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.userHandler.Me)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	apiV1.GET("/users/:id/profile", r.profileHandler.GetPublicProfile)

	activitiesGroup := apiV1.Group("/activities")
	{
		activitiesGroup.GET("", r.activityHandler.ListActivities)
		activitiesGroup.POST("", r.activityHandler.CreateActivity)
		activitiesGroup.GET("/mine", r.activityHandler.ListMyActivities)
		activitiesGroup.POST("/join/qr", r.activityHandler.JoinByInvite)
		activitiesGroup.GET("/:id", r.activityHandler.GetActivity)
		activitiesGroup.PUT("/:id", r.activityHandler.UpdateActivity)
		activitiesGroup.DELETE("/:id", r.activityHandler.DeleteActivity)
		activitiesGroup.POST("/:id/join", r.activityHandler.JoinActivity)
		activitiesGroup.POST("/:id/leave", r.activityHandler.LeaveActivity)
		activitiesGroup.DELETE("/:id/participants/:userId", r.activityHandler.RemoveParticipant)
		activitiesGroup.GET("/:id/qr", r.activityHandler.GetInviteQR)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.CountUnread)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/logs", r.adminHandler.ListAuditLogs)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/ping", r.testHandler.Ping)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/whoami", r.testHandler.WhoAmI)
		}
	}
}
