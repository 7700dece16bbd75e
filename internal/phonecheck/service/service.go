package service

import (
	"context"

	"esim_portal_backend/internal/phonecheck/transport"
	"esim_portal_backend/platform/logger"
	"esim_portal_backend/platform/phone"
)

// Service exposes the phone analyzer to HTTP callers and records outcomes.
type Service struct {
	log *logger.Logger
}

// New creates a new phone check service.
func New(log *logger.Logger) *Service {
	return &Service{log: log}
}

// Validate checks a raw number. Invalid numbers are reported in the response,
// not as an error.
func (s *Service) Validate(ctx context.Context, raw *string) transport.ValidateResponse {
	result := phone.ValidatePtr(raw)
	resp := transport.ValidateResponse{Result: result}

	if result.Valid {
		resp.Carrier = phone.DetectCarrier(result.Cleaned).String()
		// Cleaned always parses; a failure here only drops the optional field.
		if e164, err := phone.E164(result.Cleaned); err == nil {
			resp.E164 = e164
		} else {
			s.log.WithContext(ctx).Warn("e164 rendering failed", "error", err)
		}
	}

	s.log.WithContext(ctx).PhoneChecked(result.Cleaned, resp.Carrier, result.Valid, result.Error)
	return resp
}

// Format returns the display form of a number.
func (s *Service) Format(raw string) transport.FormatResponse {
	return transport.FormatResponse{Formatted: phone.Format(raw)}
}

// DetectCarrier returns the carrier inferred from the number prefix.
func (s *Service) DetectCarrier(raw string) transport.CarrierResponse {
	return transport.CarrierResponse{Carrier: phone.DetectCarrier(raw).String()}
}
