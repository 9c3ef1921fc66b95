package expiry

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidExpiration = errors.New("invalid expiration")

// ToYYMM converts a card expiration given as MMYY (or card face MM/YY) to the
// YYMM layout used by ISO 8583 DE14.
func ToYYMM(mmyy string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(mmyy), "/", "")
	if len(s) != 4 {
		return "", fmt.Errorf("%w: %q must be MMYY", ErrInvalidExpiration, mmyy)
	}
	if !isDigits(s) {
		return "", fmt.Errorf("%w: %q must be digits", ErrInvalidExpiration, mmyy)
	}
	if mm := s[:2]; mm < "01" || mm > "12" {
		return "", fmt.Errorf("%w: month %s must be 01..12", ErrInvalidExpiration, mm)
	}
	return s[2:] + s[:2], nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
