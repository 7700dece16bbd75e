package phone

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"esim_portal_backend/platform/apperr"
)

const (
	minLength = 9
	maxLength = 13

	ReasonRequired    = "Phone number is required"
	ReasonTrunkPrefix = "Myanmar phone numbers must start with 09"
	ReasonLength      = "Phone number must be 9-13 digits"
	ReasonDigitsOnly  = "Phone number can only contain digits"
)

// Result is the outcome of Validate. Valid results carry Cleaned and
// Formatted; invalid ones carry only Error.
type Result struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Cleaned   string `json:"cleaned,omitempty"`
	Formatted string `json:"formatted,omitempty"`
}

// Err converts an invalid result into a validation error. It returns nil for
// valid results.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return apperr.Validation(r.Error).WithOp("phone.Validate")
}

func invalid(reason string) Result {
	return Result{Valid: false, Error: reason}
}

// Validate normalizes a raw number to its 09-prefixed national form and checks
// it against the Myanmar numbering rules. Failures are reported in the result,
// never as a panic or error.
func Validate(raw string) Result {
	if raw == "" {
		return invalid(ReasonRequired)
	}

	cleaned := normalizeCountryCode(stripSeparators(raw))

	if !strings.HasPrefix(cleaned, "09") {
		return invalid(ReasonTrunkPrefix)
	}

	if n := utf8.RuneCountInString(cleaned); n < minLength || n > maxLength {
		return invalid(ReasonLength)
	}

	if !isDigits(cleaned) {
		return invalid(ReasonDigitsOnly)
	}

	return Result{Valid: true, Cleaned: cleaned, Formatted: Format(cleaned)}
}

// ValidatePtr treats a nil input as absent.
func ValidatePtr(raw *string) Result {
	if raw == nil {
		return invalid(ReasonRequired)
	}
	return Validate(*raw)
}

// Format groups a number for display by digit count: 11 and 10 digits split
// at 2/5/8, 9 digits at 2/5. Any other length returns the input unchanged.
func Format(raw string) string {
	d := digitsOnly(raw)

	switch len(d) {
	case 10, 11:
		return d[:2] + "-" + d[2:5] + "-" + d[5:8] + "-" + d[8:]
	case 9:
		return d[:2] + "-" + d[2:5] + "-" + d[5:]
	default:
		return raw
	}
}

// normalizeCountryCode rewrites +95 and bare 95 prefixes to the trunk 0.
func normalizeCountryCode(s string) string {
	switch {
	case strings.HasPrefix(s, "+95"):
		return "0" + s[3:]
	case strings.HasPrefix(s, "95") && !strings.HasPrefix(s, "09"):
		return "0" + s[2:]
	default:
		return s
	}
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isWhitespace(r) {
			return -1
		}
		switch r {
		case '-', '(', ')', '.':
			return -1
		}
		return r
	}, s)
}

// isWhitespace matches the ECMAScript whitespace and line terminator set:
// unicode.IsSpace without NEL (U+0085), plus the byte order mark (U+FEFF).
func isWhitespace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
