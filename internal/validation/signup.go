// Package validation checks raw signup submissions against the program's
// field rules, collecting every violation instead of stopping at the first.
package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fatherhood-backend/internal/domain"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9\s()+-]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// FieldError is a single validation failure tied to an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SignupRequest is the raw signup submission body. Optional fields are
// pointers so an absent field is distinguishable from a zero value.
type SignupRequest struct {
	FullName         string  `json:"full_name" validate:"required,min=2,max=100"`
	Email            string  `json:"email" validate:"required,email"`
	PhoneNumber      string  `json:"phone_number" validate:"required,phone"`
	Address          *string `json:"address" validate:"omitempty,max=255"`
	ZipCode          *string `json:"zip_code" validate:"omitempty,zipcode"`
	NumberOfChildren *int    `json:"number_of_children" validate:"omitempty,min=0,max=20"`
	ChildrenAges     []any   `json:"children_ages"`
	ReferralSource   *string `json:"referral_source" validate:"omitempty,max=100"`
	Interests        []any   `json:"interests"`
	Availability     *string `json:"availability" validate:"omitempty,max=255"`
	AdditionalNotes  *string `json:"additional_notes" validate:"omitempty,max=1000"`
	ConsentToContact *bool   `json:"consent_to_contact"`
	ConsentToSMS     *bool   `json:"consent_to_sms"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})

	return v
}

// ParseSignupRequest decodes and validates a signup submission. It returns
// either the normalized request or a non-empty list of field errors. The
// error return is reserved for unreadable or malformed request bodies.
func ParseSignupRequest(r io.Reader) (*SignupRequest, []FieldError, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	// The decoder stops at the first mismatched type, but a single mismatch
	// must not hide the other violations. Record each type error, drop the
	// offending field and decode again until the rest of the body parses, so
	// the tag rules still run over every remaining field.
	var req SignupRequest
	var typeErrs []FieldError
	body := raw
	for {
		err := json.Unmarshal(body, &req)
		if err == nil {
			break
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, nil, err
		}
		typeErrs = append(typeErrs, FieldError{Field: typeErr.Field, Message: typeMessage(typeErr.Field)})
		body, err = dropField(body, typeErr.Field)
		if err != nil {
			return nil, nil, err
		}
	}

	req.Normalize()
	if fieldErrs := append(typeErrs, Validate(&req)...); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	return &req, nil, nil
}

// dropField removes one top-level field from a JSON object body.
func dropField(body []byte, field string) ([]byte, error) {
	name, _, _ := strings.Cut(field, ".")

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}
	if _, ok := obj[name]; !ok {
		return nil, errors.New("cannot decode field " + field)
	}
	delete(obj, name)
	return json.Marshal(obj)
}

// Validate applies the field rules, returning every violation in field order.
func Validate(req *SignupRequest) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	fieldErrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
	}
	return fieldErrs
}

// Normalize trims free-text fields and lowercases the email so storage and
// the case-insensitive uniqueness check agree.
func (r *SignupRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	trimPtr(&r.Address)
	trimPtr(&r.ZipCode)
	trimPtr(&r.ReferralSource)
	trimPtr(&r.Availability)
	trimPtr(&r.AdditionalNotes)
}

// Signup builds the domain record from an accepted request. Status is always
// pending at creation; consent_to_contact defaults to true unless the caller
// explicitly sent false, consent_to_sms defaults to false.
func (r *SignupRequest) Signup() *domain.Signup {
	return &domain.Signup{
		FullName:         r.FullName,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		Address:          r.Address,
		ZipCode:          r.ZipCode,
		NumberOfChildren: r.NumberOfChildren,
		ChildrenAges:     r.ChildrenAges,
		ReferralSource:   r.ReferralSource,
		Interests:        r.Interests,
		Availability:     r.Availability,
		AdditionalNotes:  r.AdditionalNotes,
		ConsentToContact: r.ConsentToContact == nil || *r.ConsentToContact,
		ConsentToSMS:     r.ConsentToSMS != nil && *r.ConsentToSMS,
		Status:           domain.SignupStatusPending,
	}
}

func trimPtr(s **string) {
	if *s == nil {
		return
	}
	trimmed := strings.TrimSpace(**s)
	*s = &trimmed
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "full_name":
		if fe.Tag() == "required" {
			return "Full name is required"
		}
		return "Name must be between 2-100 characters"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "phone_number":
		if fe.Tag() == "required" {
			return "Phone number is required"
		}
		return "Please enter a valid phone number"
	case "address":
		return "Address too long"
	case "zip_code":
		return "Please enter a valid ZIP code"
	case "number_of_children":
		return "Number of children must be between 0-20"
	case "referral_source":
		return "Referral source too long"
	case "availability":
		return "Availability too long"
	case "additional_notes":
		return "Additional notes too long"
	default:
		return "Invalid value"
	}
}

// typeMessage covers rules that are enforced by the JSON decoder rather than
// a validator tag: array and boolean shaped fields.
func typeMessage(field string) string {
	switch field {
	case "children_ages":
		return "Children ages must be an array"
	case "interests":
		return "Interests must be an array"
	case "consent_to_contact":
		return "Consent must be true or false"
	case "consent_to_sms":
		return "SMS consent must be true or false"
	case "number_of_children":
		return "Number of children must be between 0-20"
	default:
		return "Invalid value"
	}
}
