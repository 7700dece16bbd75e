// Package phonecheck provides the phone number check bounded context module.
// It exposes Myanmar number validation, formatting and carrier detection.
package phonecheck

import (
	apphttp "esim_portal_backend/internal/http"
	"esim_portal_backend/internal/phonecheck/handler"
	"esim_portal_backend/internal/phonecheck/service"
	"esim_portal_backend/platform/logger"
	"esim_portal_backend/platform/validator"
)

// Module is the phone check bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the phone check module.
func NewModule(val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "phonecheck"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts phone check routes on the public, rate-limited group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Public.Group("/phone")
	group.POST("/validate", m.handler.Validate)
	group.GET("/format", m.handler.Format)
	group.GET("/carrier", m.handler.Carrier)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
