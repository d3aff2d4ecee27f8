package util

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrPostalCodeNoDigit is returned when a postcode has no digit to end its area prefix.
var ErrPostalCodeNoDigit = errors.New("postal code contains no digit")

// PostalCodeArea returns the postcode area: everything before the first digit.
// "CO4 3ZZ" gives "CO", "SW1A 1AA" gives "SW".
func PostalCodeArea(postalCode string) (string, error) {
	idx := strings.IndexFunc(postalCode, unicode.IsDigit)
	if idx < 0 {
		return "", errors.WithStack(ErrPostalCodeNoDigit)
	}

	return postalCode[:idx], nil
}

// EncodePostalCodeQuery prepares a postcode for the council OData filter:
// spaces become %20 and the result is lower-cased.
func EncodePostalCodeQuery(postalCode string) string {
	return strings.ToLower(strings.ReplaceAll(postalCode, " ", "%20"))
}
