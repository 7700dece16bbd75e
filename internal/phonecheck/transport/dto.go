package transport

import "esim_portal_backend/platform/phone"

// ValidateRequest carries a raw number exactly as the customer typed it.
// PhoneNumber is a pointer so an absent field can be told apart from "".
type ValidateRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
}

// ValidateResponse is the analyzer result plus carrier and E.164 rendering
// for valid numbers.
type ValidateResponse struct {
	phone.Result
	Carrier string `json:"carrier,omitempty"`
	E164    string `json:"e164,omitempty"`
}

// PhoneQuery is the query string accepted by the format and carrier endpoints.
type PhoneQuery struct {
	Phone string `form:"phone" validate:"required,max=64"`
}

// FormatResponse holds the display form of a number.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// CarrierResponse holds the inferred carrier name.
type CarrierResponse struct {
	Carrier string `json:"carrier"`
}
