package services

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isEmailValid(email string) bool {
	return emailRe.MatchString(email)
}

func isNameValid(name string) bool {
	return strings.TrimSpace(name) != ""
}
