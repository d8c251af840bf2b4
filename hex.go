package csscolors

import (
	"fmt"
	"strings"
)

// ParseHex parses a hex color literal like "#eb6f92" or "#eb6f9280" into an
// RGBA, with or without the leading #. Six-digit literals are fully opaque.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")

	var r, g, b, a uint8
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		a = 255
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q: must be 6 or 8 hex digits", s)
	}

	return NewRGBA(r, g, b, a), nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R.Byte(), c.G.Byte(), c.B.Byte())
}

// Hex returns the color as an eight-digit hex string with leading #,
// e.g. "#eb6f9280".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		c.R.Byte(), c.G.Byte(), c.B.Byte(), c.A.Byte())
}
