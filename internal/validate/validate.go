// Package validate implements field-level validation for contact
// drafts. It is pure and cheap enough to run on every keystroke.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"contactdesk/pkg/models"
)

// Field names used as keys in models.FieldErrors.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

var (
	// Local part, @, domain, dot, tld. Intentionally loose; the server
	// is the authority on deliverability.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits, spaces, hyphens, parentheses, and plus.
	phonePattern = regexp.MustCompile(`^[0-9\s\-()+]+$`)
)

// Draft checks a contact draft and returns one message per violated
// field. All fields are trimmed before evaluation; for each field the
// first matching rule wins. The message field is never validated.
func Draft(d models.Draft) models.FieldErrors {
	errs := models.FieldErrors{}

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs[FieldName] = "Name is required"
	case utf8.RuneCountInString(name) < 2:
		errs[FieldName] = "Name must be at least 2 characters"
	case utf8.RuneCountInString(name) > 100:
		errs[FieldName] = "Name must be less than 100 characters"
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "Please enter a valid email address"
	case utf8.RuneCountInString(email) > 255:
		errs[FieldEmail] = "Email must be less than 255 characters"
	}

	phone := strings.TrimSpace(d.Phone)
	switch {
	case phone == "":
		errs[FieldPhone] = "Phone number is required"
	case len(phone) < 7 || !phonePattern.MatchString(phone):
		errs[FieldPhone] = "Please enter a valid phone number"
	}

	return errs
}

// Valid reports whether an error set from Draft is empty.
func Valid(errs models.FieldErrors) bool {
	return len(errs) == 0
}
