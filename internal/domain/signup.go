package domain

import (
	"errors"
	"time"
)

var (
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrSignupNotFound   = errors.New("signup not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrAdminUnavailable = errors.New("admin access not configured")
)

type SignupStatus string

const (
	SignupStatusPending   SignupStatus = "pending"
	SignupStatusContacted SignupStatus = "contacted"
	SignupStatusEnrolled  SignupStatus = "enrolled"
	SignupStatusInactive  SignupStatus = "inactive"
	SignupStatusCompleted SignupStatus = "completed"
)

// ValidStatuses lists every accepted signup status, in lifecycle order.
func ValidStatuses() []SignupStatus {
	return []SignupStatus{
		SignupStatusPending,
		SignupStatusContacted,
		SignupStatusEnrolled,
		SignupStatusInactive,
		SignupStatusCompleted,
	}
}

// IsValidStatus reports whether s is one of the five accepted statuses.
func IsValidStatus(s SignupStatus) bool {
	for _, v := range ValidStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Signup is one applicant's submission to the fatherhood program.
type Signup struct {
	ID               string       `json:"id"`
	FullName         string       `json:"full_name"`
	Email            string       `json:"email"`
	PhoneNumber      string       `json:"phone_number"`
	Address          *string      `json:"address"`
	ZipCode          *string      `json:"zip_code"`
	NumberOfChildren *int         `json:"number_of_children"`
	ChildrenAges     []any        `json:"children_ages"`
	ReferralSource   *string      `json:"referral_source"`
	Interests        []any        `json:"interests"`
	Availability     *string      `json:"availability"`
	AdditionalNotes  *string      `json:"additional_notes"`
	ConsentToContact bool         `json:"consent_to_contact"`
	ConsentToSMS     bool         `json:"consent_to_sms"`
	Status           SignupStatus `json:"status"`
	SignupDate       time.Time    `json:"signup_date"`
	CreatedAt        time.Time    `json:"created_at"`
}

// SignupStats summarizes the signup collection for the admin dashboard.
type SignupStats struct {
	Total    int                  `json:"total"`
	ThisWeek int                  `json:"thisWeek"`
	ByStatus map[SignupStatus]int `json:"byStatus"`
}
