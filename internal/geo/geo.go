package geo

import (
	"regexp"
	"strings"
)

// Coordinates is a WGS 84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// A street address starts with a house-number token (digits, '#' or '.')
// followed by street/city/state text.
var addressPattern = regexp.MustCompile(`^[#.0-9]+\s+[#.0-9a-zA-Z\s,-]+$`)

var emailPattern = regexp.MustCompile(`^(([A-Za-z0-9]+_+)|([A-Za-z0-9]+-+)|([A-Za-z0-9]+\.+)|([A-Za-z0-9]+\++))*[A-Za-z0-9]+@((\w+-+)|(\w+\.))*\w{1,63}\.[a-zA-Z]{2,6}$`)

// ValidStreetAddress trims raw and reports whether it looks like a street
// address. The trimmed value is returned either way.
func ValidStreetAddress(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, addressPattern.MatchString(trimmed)
}

// ValidEmail reports whether raw has a local-part@domain.tld shape.
func ValidEmail(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, emailPattern.MatchString(trimmed)
}
