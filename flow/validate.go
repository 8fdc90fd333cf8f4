package flow

import (
	"regexp"
	"strings"

	"shopwidget.GO/model"
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizePhone reduces raw input to digits and formats progressively as
// DDD-DDD-DDDD. Anything past ten digits is dropped.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[:10]
	}
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	}
}

// ValidateContact checks the checkout form and returns field-level errors.
// Email is the only optional field. The phone is expected to already be in
// normalized form; callers run NormalizePhone first.
func ValidateContact(f model.ContactForm) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.FirstName) == "" {
		errs["first_name"] = "first name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["last_name"] = "last name is required"
	}
	if f.Email != "" && !emailPattern.MatchString(f.Email) {
		errs["email"] = "email is not valid"
	}
	if f.Phone == "" {
		errs["phone"] = "phone is required"
	} else if !phonePattern.MatchString(f.Phone) {
		errs["phone"] = "phone must match XXX-XXX-XXXX"
	}
	if f.State == "" {
		errs["state"] = "state is required"
	} else if !model.IsUSState(f.State) {
		errs["state"] = "state is not a recognized jurisdiction"
	}
	return errs
}
