package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Password validation regex patterns
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail checks if the email is syntactically valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the minimum policy
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// FormatPhoneNumber normalizes a Brazilian phone number to its bare digits
func FormatPhoneNumber(phone string) (string, error) {
	phone = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	// Strip the country code if present
	if strings.HasPrefix(phone, "55") && len(phone) > 11 {
		phone = phone[2:]
	}

	// Two-digit area code plus an 8 or 9 digit subscriber number
	if len(phone) != 10 && len(phone) != 11 {
		return "", fmt.Errorf("phone number must have 10 or 11 digits including area code")
	}

	return phone, nil
}

// ValidatePhone checks if the phone number is valid
func ValidatePhone(phone string) (bool, string) {
	if strings.TrimSpace(phone) == "" {
		return false, "Phone is required"
	}
	if _, err := FormatPhoneNumber(phone); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// ValidateName checks if the name is plausible
func ValidateName(name string) (bool, string) {
	if len(strings.TrimSpace(name)) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if matched, _ := regexp.MatchString(`[0-9!@#$%^&*(){}|<>]`, name); matched {
		return false, "Name cannot contain numbers or special characters"
	}
	return true, ""
}

// ValidateStringLength validates string length
func ValidateStringLength(str string, min, max int) error {
	length := len(strings.TrimSpace(str))
	if length < min {
		return fmt.Errorf("must be at least %d characters long", min)
	}
	if length > max {
		return fmt.Errorf("must not exceed %d characters", max)
	}
	return nil
}
