package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks that the email looks like an email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsValidPassword enforces the minimum password length
func IsValidPassword(password string) bool {
	return len(password) >= 8
}

// IsValidRating checks that a review rating is within 1..5
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
