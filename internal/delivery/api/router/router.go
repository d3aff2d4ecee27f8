// Package router contains routing for the HTTP delivery.
package router

import (
	"rubbishday/internal/delivery/api/middleware"
	"rubbishday/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SkillHandler        *handler.SkillHandler
	SignatureMiddleware *middleware.SignatureMiddleware
}

type router struct {
	skillHandler        *handler.SkillHandler
	signatureMiddleware *middleware.SignatureMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		skillHandler:        params.SkillHandler,
		signatureMiddleware: params.SignatureMiddleware,
	}
}

// RegisterRoutes sets up the skill and health routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Alexa posts every request type to one endpoint
	e.POST("/skill", r.skillHandler.HandleSkillRequest, r.signatureMiddleware.Verify)
}
