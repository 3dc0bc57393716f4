package orders

import (
	"regexp"
	"strings"

	"github.com/shopnobd/backoffice/internal/models"
)

var (
	bdPhonePattern  = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)
	bdPostalPattern = regexp.MustCompile(`^\d{4}$`)
)

// ValidateAddress checks a delivery address draft before it is submitted
// upstream. Rules run in order and stop at the first failure: required
// fields, then the Bangladesh mobile pattern, then the 4-digit postcode.
func ValidateAddress(a models.Address) error {
	required := []string{a.RecipientName, a.Phone, a.AddressLine1, a.District, a.PostalCode}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return &models.ValidationError{Reason: "All address fields are required."}
		}
	}
	if !bdPhonePattern.MatchString(a.Phone) {
		return &models.ValidationError{Reason: "Invalid Bangladesh phone number."}
	}
	if !bdPostalPattern.MatchString(a.PostalCode) {
		return &models.ValidationError{Reason: "Postal code must be a 4-digit Bangladesh postcode."}
	}
	return nil
}
