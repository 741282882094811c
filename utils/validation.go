package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidateEmail checks if the email has a valid format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidatePassword checks the password against the minimum length policy
func ValidatePassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// ValidateRating checks a review rating is within the 1-5 range
func ValidateRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
