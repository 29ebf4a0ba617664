package utils

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// NormalizePhone strips every non-digit rune and checks the result is a
// korean mobile number: 10 or 11 digits starting with `01`
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < 10 || len(digits) > 11 || !strings.HasPrefix(digits, "01") {
		return "", ErrInvalidPhone
	}

	return digits, nil
}
