package theme

import (
	"github.com/gin-gonic/gin"

	"esim_portal_backend/platform/httpkit"
)

// Handler serves the active theme.
type Handler struct {
	switcher *Switcher
}

// NewHandler creates a new theme handler.
func NewHandler(switcher *Switcher) *Handler {
	return &Handler{switcher: switcher}
}

// Get returns the active theme.
// GET /api/v1/theme
func (h *Handler) Get(c *gin.Context) {
	httpkit.OK(c, h.switcher.Status())
}
