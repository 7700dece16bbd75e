package phone

import (
	"github.com/nyaruka/phonenumbers"

	"esim_portal_backend/platform/apperr"
)

const defaultRegion = "MM"

// E164 renders a national Myanmar number (as returned in Result.Cleaned) in
// E.164 form, e.g. 09771234567 becomes +959771234567. It does not check the
// number against carrier ranges.
func E164(normalized string) (string, error) {
	if normalized == "" {
		return "", apperr.Validation(ReasonRequired).WithOp("phone.E164")
	}

	number, err := phonenumbers.Parse(normalized, defaultRegion)
	if err != nil {
		return "", apperr.Wrap(apperr.KindValidation, "unparseable phone number", err).WithOp("phone.E164")
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
