package numberutils

import (
	"errors"
	"strconv"
	"unicode"
)

// ErrNotAnIdentifier is returned by ToIDWithError for values that are not plain decimal digits.
var ErrNotAnIdentifier = errors.New("not a numeric identifier")

// IsDigits checks if the given string contains only digits (0-9).
// It returns false for the empty string.
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsIntInRange checks if the given number is within the specified range (inclusive).
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

// ToIDWithError converts a path or form value into a non-negative int64 identifier.
// Signs, spaces and anything else that is not a digit are rejected.
func ToIDWithError(str string) (int64, error) {
	if !IsDigits(str) {
		return 0, ErrNotAnIdentifier
	}
	return strconv.ParseInt(str, 10, 64)
}
