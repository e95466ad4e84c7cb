// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walletauth/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
}

// Router registers every API route on an echo instance.
type Router interface {
	RegisterRoutes(e *echo.Echo)
}

type router struct {
	sessionHandler *handler.SessionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) Router {
	return &router{
		sessionHandler: params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	sessions := apiV1.Group("/sessions")
	{
		sessions.POST("", r.sessionHandler.StartSession)
		sessions.GET("/:id", r.sessionHandler.GetSession)
		sessions.DELETE("/:id", r.sessionHandler.EndSession)
		sessions.POST("/:id/reset", r.sessionHandler.ResetSession)

		// Wizard steps
		sessions.PUT("/:id/step", r.sessionHandler.SetLoginStep)
		sessions.PUT("/:id/recover-step", r.sessionHandler.SetRecoverStep)

		// Generic sub-results
		sessions.POST("/:id/operations/:op/begin", r.sessionHandler.BeginOperation)
		sessions.POST("/:id/operations/:op/fail", r.sessionHandler.FailOperation)
		sessions.POST("/:id/operations/:op/succeed", r.sessionHandler.SucceedOperation)
		sessions.POST("/:id/operations/:op/reset", r.sessionHandler.ResetOperation)

		// Wallet login
		sessions.POST("/:id/login/begin", r.sessionHandler.BeginLogin)
		sessions.POST("/:id/login/complete", r.sessionHandler.CompleteLogin)
		sessions.POST("/:id/login/fail", r.sessionHandler.FailLogin)
		sessions.POST("/:id/exchange-login/result", r.sessionHandler.RecordExchangeLoginResult)

		sessions.POST("/:id/magic-link", r.sessionHandler.ApplyMagicLink)
		sessions.POST("/:id/device-challenge", r.sessionHandler.IssueDeviceChallenge)
		sessions.POST("/:id/device-challenge/resolve", r.sessionHandler.ResolveDeviceChallenge)

		sessions.PUT("/:id/unification-flow", r.sessionHandler.SetAccountUnificationFlow)
		sessions.DELETE("/:id/unification-flow", r.sessionHandler.ClearAccountUnificationFlow)

		// Mobile pairing
		sessions.POST("/:id/pairing", r.sessionHandler.StartMobilePairing)
		sessions.POST("/:id/bridge", r.sessionHandler.HandleBridgeMessage)

		sessions.PUT("/:id/geo", r.sessionHandler.SetUserGeoData)
		sessions.PATCH("/:id/flags", r.sessionHandler.UpdateAccountFlags)
	}
}
