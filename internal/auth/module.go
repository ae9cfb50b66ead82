// Package auth provides the login and sign-up endpoints of the stub API.
// This file defines the module that encapsulates all auth setup and route registration.
package auth

import (
	"survey_client/internal/auth/handler"
	"survey_client/internal/auth/repository"
	"survey_client/internal/auth/service"
	apphttp "survey_client/internal/http"
	"survey_client/platform/config"
	"survey_client/platform/logger"
	"survey_client/platform/validator"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the auth module with all its dependencies.
func NewModule(repo repository.AccountRepository, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// Service returns the auth service.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts auth routes with the stricter rate limit.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.API.Group("")
	authGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(authGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
