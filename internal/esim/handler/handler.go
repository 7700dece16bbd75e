package handler

import (
	"github.com/gin-gonic/gin"

	"esim_portal_backend/internal/esim/service"
	"esim_portal_backend/internal/esim/transport"
	"esim_portal_backend/platform/httpkit"
	"esim_portal_backend/platform/validator"
)

// Handler handles HTTP requests for eSIM registration checks.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new eSIM handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ValidatePhone checks whether a number is eligible for eSIM with a provider.
// POST /api/v1/esim-registration/validate-phone
func (h *Handler) ValidatePhone(c *gin.Context) {
	var req transport.EligibilityRequest
	if !httpkit.BindJSON(c, h.val, &req) {
		return
	}

	result, err := h.svc.CheckEligibility(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Providers lists the known carriers.
// GET /api/v1/esim-registration/providers
func (h *Handler) Providers(c *gin.Context) {
	httpkit.OK(c, h.svc.Providers())
}

// CheckDevice checks whether a handset can take an eSIM profile.
// POST /api/v1/esim-registration/check-device
func (h *Handler) CheckDevice(c *gin.Context) {
	var req transport.DeviceRequest
	if !httpkit.BindJSON(c, h.val, &req) {
		return
	}
	httpkit.OK(c, h.svc.CheckDevice(c.Request.Context(), req))
}
