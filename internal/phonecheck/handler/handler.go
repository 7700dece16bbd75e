package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"esim_portal_backend/internal/phonecheck/service"
	"esim_portal_backend/internal/phonecheck/transport"
	"esim_portal_backend/platform/httpkit"
	"esim_portal_backend/platform/validator"
)

// Handler handles HTTP requests for phone number checks.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new phone check handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Validate validates a phone number. Invalid numbers still answer 200.
// POST /api/v1/phone/validate
func (h *Handler) Validate(c *gin.Context) {
	var req transport.ValidateRequest
	if !httpkit.BindJSON(c, h.val, &req) {
		return
	}

	httpkit.OK(c, h.svc.Validate(c.Request.Context(), req.PhoneNumber))
}

// Format returns the display form of a number.
// GET /api/v1/phone/format?phone=
func (h *Handler) Format(c *gin.Context) {
	req, ok := h.bindPhoneQuery(c)
	if !ok {
		return
	}
	httpkit.OK(c, h.svc.Format(req.Phone))
}

// Carrier returns the carrier inferred from a number.
// GET /api/v1/phone/carrier?phone=
func (h *Handler) Carrier(c *gin.Context) {
	req, ok := h.bindPhoneQuery(c)
	if !ok {
		return
	}
	httpkit.OK(c, h.svc.DetectCarrier(req.Phone))
}

func (h *Handler) bindPhoneQuery(c *gin.Context) (transport.PhoneQuery, bool) {
	var req transport.PhoneQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, httpkit.MsgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, httpkit.MsgValidationFailed, validator.FieldErrors(err))
		return req, false
	}
	return req, true
}
