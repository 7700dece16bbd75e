// Package esim provides the eSIM registration bounded context module.
// It decides whether a Myanmar number can be activated as an eSIM, checks
// handset compatibility and publishes the provider catalogue.
package esim

import (
	"esim_portal_backend/internal/esim/handler"
	"esim_portal_backend/internal/esim/service"
	apphttp "esim_portal_backend/internal/http"
	"esim_portal_backend/platform/logger"
	"esim_portal_backend/platform/validator"
)

// Module is the eSIM bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the eSIM module.
func NewModule(val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "esim"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts eSIM registration routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/esim-registration/providers", m.handler.Providers)
	ctx.Public.POST("/esim-registration/validate-phone", m.handler.ValidatePhone)
	ctx.Public.POST("/esim-registration/check-device", m.handler.CheckDevice)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
