package service

import (
	"context"
	"fmt"

	"esim_portal_backend/internal/esim/transport"
	"esim_portal_backend/platform/apperr"
	"esim_portal_backend/platform/logger"
	"esim_portal_backend/platform/phone"
)

// esimCapable lists the carriers that can provision eSIM profiles.
var esimCapable = map[phone.Carrier]bool{
	phone.CarrierMPT:   true,
	phone.CarrierAtom:  true,
	phone.CarrierMytel: true,
}

// Service decides eSIM eligibility for Myanmar numbers.
type Service struct {
	log *logger.Logger
}

// New creates a new eSIM service.
func New(log *logger.Logger) *Service {
	return &Service{log: log}
}

// SupportsESIM reports whether the carrier can provision eSIM profiles.
func SupportsESIM(c phone.Carrier) bool {
	return esimCapable[c]
}

// CheckEligibility validates the number, compares the detected carrier with
// the requested provider and checks that provider supports eSIM. The first
// failing step decides the single reason returned.
func (s *Service) CheckEligibility(ctx context.Context, req transport.EligibilityRequest) (transport.EligibilityResponse, error) {
	requested, ok := phone.ParseCarrier(req.Provider)
	if !ok {
		return transport.EligibilityResponse{}, apperr.Validation("unknown provider").
			WithOp("esim.CheckEligibility").
			WithDetails(map[string]string{"provider": req.Provider})
	}

	resp := transport.EligibilityResponse{
		RequestedProvider: requested.String(),
		Reasons:           []string{},
	}

	result := phone.ValidatePtr(req.PhoneNumber)
	resp.PhoneValid = result.Valid
	if !result.Valid {
		resp.Reasons = append(resp.Reasons, result.Error)
		s.logDecision(ctx, resp)
		return resp, nil
	}

	detected := phone.DetectCarrier(result.Cleaned)
	resp.DetectedProvider = detected.String()
	resp.Formatted = result.Formatted

	switch {
	case detected != requested:
		resp.Reasons = append(resp.Reasons, fmt.Sprintf("Phone number belongs to %s, not %s", detected, requested))
	case !SupportsESIM(requested):
		// Unreachable while MPT's "09" prefix claims every number; kept for
		// when the carrier table is corrected.
		resp.Reasons = append(resp.Reasons, fmt.Sprintf("%s does not support eSIM activation", requested))
	default:
		resp.Eligible = true
	}

	s.logDecision(ctx, resp)
	return resp, nil
}

// Providers lists every carrier in match order with its prefixes.
func (s *Service) Providers() transport.ProvidersResponse {
	table := phone.Carriers()
	out := make([]transport.ProviderResponse, 0, len(table))
	for _, entry := range table {
		out = append(out, transport.ProviderResponse{
			Name:          entry.Carrier.String(),
			Prefixes:      entry.Prefixes,
			ESIMSupported: SupportsESIM(entry.Carrier),
		})
	}
	return transport.ProvidersResponse{Providers: out}
}

func (s *Service) logDecision(ctx context.Context, resp transport.EligibilityResponse) {
	s.log.WithContext(ctx).Info("esim_eligibility",
		"requested_provider", resp.RequestedProvider,
		"detected_provider", resp.DetectedProvider,
		"phone_valid", resp.PhoneValid,
		"eligible", resp.Eligible,
	)
}
