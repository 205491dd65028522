package core

import (
	"fmt"
	"regexp"
	"strings"
)

// HexColor is a color in canonical #RRGGBB form (uppercase hex digits).
type HexColor string

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParseHexColor validates s as a six-digit hex color and canonicalises it
// to uppercase.
func ParseHexColor(s string) (HexColor, error) {
	if !hexColorRe.MatchString(s) {
		return "", fmt.Errorf("invalid hex color: %q", s)
	}
	return HexColor("#" + strings.ToUpper(s[1:])), nil
}

func (c HexColor) String() string {
	return string(c)
}
