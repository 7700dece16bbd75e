// Package theme provides the date-gated site theme module.
package theme

import (
	apphttp "esim_portal_backend/internal/http"
	"esim_portal_backend/platform/config"
	"esim_portal_backend/platform/logger"
)

// Module is the theme module implementing http.Module.
type Module struct {
	handler  *Handler
	switcher *Switcher
}

// NewModule creates the theme module for the configured window.
func NewModule(cfg config.ThemeConfig, log *logger.Logger) *Module {
	switcher := NewSwitcher(cfg, log)
	return &Module{
		handler:  NewHandler(switcher),
		switcher: switcher,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "theme"
}

// Switcher returns the theme switcher so main can run its watcher.
func (m *Module) Switcher() *Switcher {
	return m.switcher
}

// RegisterRoutes mounts the theme read-out.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/theme", m.handler.Get)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
