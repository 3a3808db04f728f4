package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/validation"
)

func parse(t *testing.T, body string) (*validation.SignupRequest, []validation.FieldError) {
	t.Helper()
	req, fieldErrs, err := validation.ParseSignupRequest(strings.NewReader(body))
	require.NoError(t, err)
	return req, fieldErrs
}

func fields(fieldErrs []validation.FieldError) []string {
	names := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		names[i] = fe.Field
	}
	return names
}

func TestParseSignupRequest_MissingRequiredFields(t *testing.T) {
	req, fieldErrs := parse(t, `{}`)

	assert.Nil(t, req)
	assert.Equal(t, []string{"full_name", "email", "phone_number"}, fields(fieldErrs))
	assert.Equal(t, "Full name is required", fieldErrs[0].Message)
	assert.Equal(t, "Email is required", fieldErrs[1].Message)
	assert.Equal(t, "Phone number is required", fieldErrs[2].Message)
}

func TestParseSignupRequest_CollectsAllViolations(t *testing.T) {
	body := `{
		"full_name": "A",
		"email": "not-an-email",
		"phone_number": "call me maybe",
		"zip_code": "1234"
	}`
	_, fieldErrs := parse(t, body)

	assert.Equal(t, []string{"full_name", "email", "phone_number", "zip_code"}, fields(fieldErrs))
	assert.Equal(t, "Name must be between 2-100 characters", fieldErrs[0].Message)
	assert.Equal(t, "Please enter a valid email address", fieldErrs[1].Message)
	assert.Equal(t, "Please enter a valid phone number", fieldErrs[2].Message)
	assert.Equal(t, "Please enter a valid ZIP code", fieldErrs[3].Message)
}

func TestParseSignupRequest_NormalizesEmail(t *testing.T) {
	req, fieldErrs := parse(t, `{
		"full_name": "  John Doe  ",
		"email": "  Foo@Bar.COM ",
		"phone_number": "+1 (555) 123-4567"
	}`)

	require.Empty(t, fieldErrs)
	assert.Equal(t, "foo@bar.com", req.Email)
	assert.Equal(t, "John Doe", req.FullName)
}

func TestParseSignupRequest_NumberOfChildrenRange(t *testing.T) {
	base := `{"full_name": "John Doe", "email": "j@d.com", "phone_number": "5551234567", "number_of_children": %s}`

	t.Run("TwentyAccepted", func(t *testing.T) {
		req, fieldErrs := parse(t, strings.Replace(base, "%s", "20", 1))
		require.Empty(t, fieldErrs)
		require.NotNil(t, req.NumberOfChildren)
		assert.Equal(t, 20, *req.NumberOfChildren)
	})

	t.Run("TwentyOneRejected", func(t *testing.T) {
		_, fieldErrs := parse(t, strings.Replace(base, "%s", "21", 1))
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "number_of_children", fieldErrs[0].Field)
		assert.Equal(t, "Number of children must be between 0-20", fieldErrs[0].Message)
	})

	t.Run("NegativeRejected", func(t *testing.T) {
		_, fieldErrs := parse(t, strings.Replace(base, "%s", "-1", 1))
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "number_of_children", fieldErrs[0].Field)
	})
}

func TestParseSignupRequest_ZipCode(t *testing.T) {
	base := `{"full_name": "John Doe", "email": "j@d.com", "phone_number": "5551234567"`

	t.Run("FiveDigits", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`, "zip_code": "12345"}`)
		assert.Empty(t, fieldErrs)
	})

	t.Run("PlusFour", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`, "zip_code": "12345-6789"}`)
		assert.Empty(t, fieldErrs)
	})

	t.Run("TooShort", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`, "zip_code": "1234"}`)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "zip_code", fieldErrs[0].Field)
	})

	t.Run("Omitted", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`}`)
		assert.Empty(t, fieldErrs)
	})
}

func TestParseSignupRequest_TypeMismatches(t *testing.T) {
	base := `{"full_name": "John Doe", "email": "j@d.com", "phone_number": "5551234567"`

	t.Run("ChildrenAgesNotArray", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`, "children_ages": "toddler"}`)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "children_ages", fieldErrs[0].Field)
		assert.Equal(t, "Children ages must be an array", fieldErrs[0].Message)
	})

	t.Run("InterestsNotArray", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`, "interests": 42}`)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "interests", fieldErrs[0].Field)
	})

	t.Run("ConsentNotBoolean", func(t *testing.T) {
		_, fieldErrs := parse(t, base+`, "consent_to_contact": "yes"}`)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "consent_to_contact", fieldErrs[0].Field)
		assert.Equal(t, "Consent must be true or false", fieldErrs[0].Message)
	})
}

func TestParseSignupRequest_TypeMismatchDoesNotMaskOtherViolations(t *testing.T) {
	t.Run("MissingRequiredFields", func(t *testing.T) {
		_, fieldErrs := parse(t, `{"children_ages": "toddler"}`)

		assert.Equal(t, []string{"children_ages", "full_name", "email", "phone_number"}, fields(fieldErrs))
		assert.Equal(t, "Children ages must be an array", fieldErrs[0].Message)
		assert.Equal(t, "Full name is required", fieldErrs[1].Message)
	})

	t.Run("MultipleMismatchesAndRuleViolations", func(t *testing.T) {
		_, fieldErrs := parse(t, `{
			"full_name": "John Doe",
			"email": "not-an-email",
			"phone_number": "5551234567",
			"children_ages": "toddler",
			"interests": 42
		}`)

		assert.ElementsMatch(t,
			[]string{"children_ages", "interests", "email"},
			fields(fieldErrs))
	})
}

func TestParseSignupRequest_MalformedBody(t *testing.T) {
	_, _, err := validation.ParseSignupRequest(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestSignup_ConsentDefaults(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		req, fieldErrs := parse(t, `{"full_name": "John Doe", "email": "j@d.com", "phone_number": "5551234567"}`)
		require.Empty(t, fieldErrs)

		s := req.Signup()
		assert.True(t, s.ConsentToContact)
		assert.False(t, s.ConsentToSMS)
		assert.Equal(t, domain.SignupStatusPending, s.Status)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		req, fieldErrs := parse(t, `{"full_name": "John Doe", "email": "j@d.com", "phone_number": "5551234567",
			"consent_to_contact": false, "consent_to_sms": true}`)
		require.Empty(t, fieldErrs)

		s := req.Signup()
		assert.False(t, s.ConsentToContact)
		assert.True(t, s.ConsentToSMS)
	})
}

func TestSignup_CarriesOptionalFields(t *testing.T) {
	req, fieldErrs := parse(t, `{
		"full_name": "John Doe",
		"email": "j@d.com",
		"phone_number": "5551234567",
		"address": " 123 Main St ",
		"number_of_children": 2,
		"children_ages": [3, 7],
		"interests": ["mentoring"]
	}`)
	require.Empty(t, fieldErrs)

	s := req.Signup()
	require.NotNil(t, s.Address)
	assert.Equal(t, "123 Main St", *s.Address)
	require.NotNil(t, s.NumberOfChildren)
	assert.Equal(t, 2, *s.NumberOfChildren)
	assert.Len(t, s.ChildrenAges, 2)
	assert.Equal(t, []any{"mentoring"}, s.Interests)
}
