// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gateway/config"
	"gateway/internal/delivery/api/middleware"
	"gateway/internal/delivery/api/router/handler"
	"gateway/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// LogoutPath is the full route of the single-session logout registered under /auth.
const LogoutPath = "/auth/logout"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	rateLimit := middleware.NewRateLimit(r.config.RateLimit)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/hack_club", r.authHandler.StartLogin, rateLimit)
		authGroup.POST("/refresh", r.authHandler.Refresh, rateLimit)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout_all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// OAuth routes
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/callback", r.authHandler.Callback, rateLimit)
	}

	// Account routes that require authentication
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.accountHandler.Me)
		meGroup.GET("/identities", r.accountHandler.Identities)
		meGroup.GET("/provider_token", r.accountHandler.ProviderToken)
	}
}
