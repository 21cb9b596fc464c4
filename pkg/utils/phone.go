package utils

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// NormalizePhone parses a phone number, national or international, and
// returns it in E.164 form. defaultRegion is an ISO 3166 code such as "VN".
func NormalizePhone(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhone
	}
	num, err := libphonenumber.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}

// IsValidPhone reports whether raw parses as a valid number for defaultRegion.
func IsValidPhone(raw, defaultRegion string) bool {
	_, err := NormalizePhone(raw, defaultRegion)
	return err == nil
}
