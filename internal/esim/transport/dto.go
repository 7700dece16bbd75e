package transport

// EligibilityRequest asks whether a number can be activated as an eSIM with
// the named provider.
type EligibilityRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	Provider    string  `json:"provider" validate:"required,mmcarrier"`
}

// EligibilityResponse reports the eSIM eligibility decision.
// Reasons is empty when Eligible is true.
type EligibilityResponse struct {
	Eligible          bool     `json:"eligible"`
	PhoneValid        bool     `json:"phoneValid"`
	DetectedProvider  string   `json:"detectedProvider,omitempty"`
	RequestedProvider string   `json:"requestedProvider"`
	Formatted         string   `json:"formatted,omitempty"`
	Reasons           []string `json:"reasons"`
}

// ProviderResponse describes one carrier in the provider catalogue.
type ProviderResponse struct {
	Name          string   `json:"name"`
	Prefixes      []string `json:"prefixes"`
	ESIMSupported bool     `json:"esimSupported"`
}

// ProvidersResponse wraps the provider catalogue in match order.
type ProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// DeviceRequest describes the handset a customer wants to activate the eSIM on.
type DeviceRequest struct {
	DeviceType  string `json:"deviceType" validate:"required,oneofci=ios android tablet wearable"`
	DeviceModel string `json:"deviceModel" validate:"required,max=100"`
	OSVersion   string `json:"osVersion" validate:"required,max=32"`
}

// DeviceResponse reports the device compatibility decision.
// Status is one of "verified", "failed" or "requires_review".
type DeviceResponse struct {
	Success      bool     `json:"success"`
	Status       string   `json:"status"`
	Message      string   `json:"message"`
	MatchedModel string   `json:"matchedModel,omitempty"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
}
