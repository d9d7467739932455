package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"contactdesk/pkg/models"
)

func validDraft() models.Draft {
	return models.Draft{
		Name:  "Alice Example",
		Email: "alice@example.com",
		Phone: "555-123-4567",
	}
}

func TestDraft_ValidDraftHasNoErrors(t *testing.T) {
	errs := Draft(validDraft())
	assert.Empty(t, errs)
	assert.True(t, Valid(errs))
}

func TestDraft_ValidBoundaryValues(t *testing.T) {
	cases := []struct {
		name  string
		draft models.Draft
	}{
		{"two char name", models.Draft{Name: "Al", Email: "a@b.co", Phone: "1234567"}},
		{"hundred char name", models.Draft{Name: strings.Repeat("n", 100), Email: "a@b.co", Phone: "1234567"}},
		{"seven digit phone", models.Draft{Name: "Alice", Email: "a@b.co", Phone: "1234567"}},
		{"phone with separators", models.Draft{Name: "Alice", Email: "a@b.co", Phone: "+1 (555) 123-4567"}},
		{"untrimmed but valid", models.Draft{Name: "  Alice  ", Email: " a@b.co ", Phone: " 1234567 "}},
		{"message never validated", models.Draft{Name: "Alice", Email: "a@b.co", Phone: "1234567", Message: strings.Repeat("m", 10000)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, Draft(tc.draft))
		})
	}
}

func TestDraft_RequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		draft models.Draft
		field string
		want  string
	}{
		{"empty name", models.Draft{Email: "a@b.co", Phone: "1234567"}, FieldName, "Name is required"},
		{"whitespace name", models.Draft{Name: "   ", Email: "a@b.co", Phone: "1234567"}, FieldName, "Name is required"},
		{"empty email", models.Draft{Name: "Alice", Phone: "1234567"}, FieldEmail, "Email is required"},
		{"empty phone", models.Draft{Name: "Alice", Email: "a@b.co"}, FieldPhone, "Phone number is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Draft(tc.draft)
			// Exactly one error: the missing field. Valid fields stay clean.
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.want, errs[tc.field])
		})
	}
}

func TestDraft_NameLengthPriority(t *testing.T) {
	// "A" trims to length 1: too short, and only the name errors.
	errs := Draft(models.Draft{Name: "A", Email: "a@b.com", Phone: "1234567"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "Name must be at least 2 characters", errs[FieldName])

	errs = Draft(models.Draft{Name: strings.Repeat("n", 101), Email: "a@b.com", Phone: "1234567"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "Name must be less than 100 characters", errs[FieldName])
}

func TestDraft_EmailFormat(t *testing.T) {
	bad := []string{"not-an-email", "no@tld", "two@@x.com", "spaces in@x.com", "@x.com", "a@.com"}
	for _, email := range bad {
		errs := Draft(models.Draft{Name: "Alice", Email: email, Phone: "1234567"})
		assert.Len(t, errs, 1, "email %q", email)
		assert.Equal(t, "Please enter a valid email address", errs[FieldEmail], "email %q", email)
	}

	// Format wins over length: an overlong string that is not an email
	// reports the format error.
	overlong := strings.Repeat("x", 300)
	errs := Draft(models.Draft{Name: "Alice", Email: overlong, Phone: "1234567"})
	assert.Equal(t, "Please enter a valid email address", errs[FieldEmail])

	// A well-formed but overlong email reports the length error.
	long := strings.Repeat("a", 250) + "@example.com"
	errs = Draft(models.Draft{Name: "Alice", Email: long, Phone: "1234567"})
	assert.Equal(t, "Email must be less than 255 characters", errs[FieldEmail])
}

func TestDraft_PhoneFormat(t *testing.T) {
	bad := []string{"123456", "555-CALL-NOW", "12345a7", "#5551234"}
	for _, phone := range bad {
		errs := Draft(models.Draft{Name: "Alice", Email: "a@b.co", Phone: phone})
		assert.Len(t, errs, 1, "phone %q", phone)
		assert.Equal(t, "Please enter a valid phone number", errs[FieldPhone], "phone %q", phone)
	}
}

func TestDraft_MultipleViolationsReportPerField(t *testing.T) {
	errs := Draft(models.Draft{Name: "A", Email: "nope", Phone: "12"})
	assert.Len(t, errs, 3)
	assert.Equal(t, "Name must be at least 2 characters", errs[FieldName])
	assert.Equal(t, "Please enter a valid email address", errs[FieldEmail])
	assert.Equal(t, "Please enter a valid phone number", errs[FieldPhone])
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(models.FieldErrors{}))
	assert.True(t, Valid(nil))
	assert.False(t, Valid(models.FieldErrors{FieldName: "Name is required"}))
}
