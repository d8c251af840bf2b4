// Package csscolors models colors in the two CSS color spaces, RGB and HSL,
// with and without an alpha channel, and implements the color-editing
// functions of the CSS/Less specification (saturate, lighten, fade, spin,
// mix, tint, shade, greyscale) on top of lossless-or-near-lossless
// conversions between the spaces.
//
// All types are immutable values: every operation returns a new color and
// values are safe to share across goroutines. Channel magnitudes are held as
// 8-bit fixed-point Ratios and hues as wraparound Angles, so arithmetic
// saturates and wraps exactly the way CSS color math is expected to behave.
package csscolors

// Color is implemented by the four concrete color types: RGB, RGBA, HSL,
// and HSLA. Every color can convert to every representation; conversions
// between the opaque and alpha-aware members of one family are pure field
// projections, while RGB↔HSL conversions route through the RGBA↔HSLA pair.
type Color interface {
	ToRGB() RGB
	ToRGBA() RGBA
	ToHSL() HSL
	ToHSLA() HSLA

	// ToCSS renders the canonical CSS text form, e.g. "rgb(255, 99, 71)"
	// or "hsla(9, 100%, 64%, 0.50)".
	ToCSS() string
}
