package errors

import (
	"strings"
	"unicode"
)

// ValidateQuality validates a JPEG quality setting.
// Quality must be in the inclusive range 1-100.
func ValidateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return New(ErrCodeInvalidInput, "quality must be between 1 and 100, got %d", quality)
	}
	return nil
}

// ValidatePadding validates the cell padding in pixels.
func ValidatePadding(padding int) error {
	if padding < 0 {
		return New(ErrCodeInvalidInput, "padding cannot be negative, got %d", padding)
	}
	return nil
}

// ValidateDimension validates an explicit canvas dimension flag.
// Zero means unset and is accepted; negative values are rejected.
func ValidateDimension(name string, value int) error {
	if value < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative, got %d", name, value)
	}
	return nil
}

// ValidateHexColor performs a cheap syntactic check on a hex color string
// before it reaches the full color parser. It rejects empty strings,
// missing '#' prefixes, and non-hex digits.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !strings.HasPrefix(s, "#") {
		return New(ErrCodeInvalidColor, "color %q must start with '#'", s)
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return New(ErrCodeInvalidColor, "color %q must be #RGB or #RRGGBB", s)
	}
	for _, r := range digits {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return New(ErrCodeInvalidColor, "color %q contains invalid hex digit %q", s, r)
		}
	}
	return nil
}
