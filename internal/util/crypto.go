package util

import (
	"fmt"
	"unicode"
)

// ValidatePassphrase enforces the minimum strength for encrypted backups.
func ValidatePassphrase(pass string) error {
	if len([]rune(pass)) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("passphrase must contain a letter and a digit")
	}
	return nil
}
