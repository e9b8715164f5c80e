// Package validation holds the field-level checks run before an order or
// account is created. All checks are local and synchronous; input that
// fails here never reaches the record store.
package validation

import (
	"regexp"
	"strings"

	apperrors "marblemanager/internal/errors"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// India mobile numbering: exactly 10 digits, first digit 6-9.
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

func FullName(name string) *apperrors.ValidationDetail {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return &apperrors.ValidationDetail{Field: "full_name", Message: "name must be at least 2 characters"}
	}
	if len(name) > 100 {
		return &apperrors.ValidationDetail{Field: "full_name", Message: "name must be less than 100 characters"}
	}
	if !nameRe.MatchString(name) {
		return &apperrors.ValidationDetail{Field: "full_name", Message: "name can only contain letters and spaces"}
	}
	return nil
}

func Email(email string) *apperrors.ValidationDetail {
	email = strings.TrimSpace(email)
	if email == "" {
		return &apperrors.ValidationDetail{Field: "email", Message: "email is required"}
	}
	if len(email) > 255 {
		return &apperrors.ValidationDetail{Field: "email", Message: "email must be less than 255 characters"}
	}
	if !emailRe.MatchString(email) {
		return &apperrors.ValidationDetail{Field: "email", Message: "invalid email format"}
	}
	return nil
}

func Phone(phone string) *apperrors.ValidationDetail {
	phone = strings.TrimSpace(phone)
	if !phoneRe.MatchString(phone) {
		return &apperrors.ValidationDetail{Field: "phone", Message: "phone must be a 10-digit Indian mobile number starting with 6-9"}
	}
	return nil
}

// Address is optional; only the length is bounded.
func Address(address string) *apperrors.ValidationDetail {
	if len(strings.TrimSpace(address)) > 500 {
		return &apperrors.ValidationDetail{Field: "project_address", Message: "address must be less than 500 characters"}
	}
	return nil
}

func Password(password string) *apperrors.ValidationDetail {
	if len(password) < 6 {
		return &apperrors.ValidationDetail{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
