package csscolors

import (
	"fmt"

	"github.com/chewxy/math32"
)

// RGB describes how much red, green, and blue light is added to create a
// color, with no alpha channel. Each channel is a Ratio over the 0-255
// byte range.
//
// See the CSS color spec: https://www.w3.org/TR/css-color-3/#rgb-color
type RGB struct {
	R Ratio // red
	G Ratio // green
	B Ratio // blue
}

// NewRGB constructs an RGB color from byte channel values.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: Byte(r), G: Byte(g), B: Byte(b)}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R.Byte(), c.G.Byte(), c.B.Byte())
}

// ToCSS renders the color as a CSS rgb() function.
func (c RGB) ToCSS() string {
	return c.String()
}

func (c RGB) ToRGB() RGB {
	return c
}

// ToRGBA promotes the color to its alpha-aware form, fully opaque.
func (c RGB) ToRGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: Byte(255)}
}

func (c RGB) ToHSL() HSL {
	return c.ToRGBA().ToHSL()
}

func (c RGB) ToHSLA() HSLA {
	return c.ToRGBA().ToHSLA()
}

// Saturate increases saturation by the given amount, clamped at 100%.
func (c RGB) Saturate(amount Ratio) RGB {
	return c.ToRGBA().Saturate(amount).ToRGB()
}

// Desaturate decreases saturation by the given amount, clamped at 0%.
func (c RGB) Desaturate(amount Ratio) RGB {
	return c.ToRGBA().Desaturate(amount).ToRGB()
}

// Lighten increases lightness by the given amount, clamped at 100%.
func (c RGB) Lighten(amount Ratio) RGB {
	return c.ToRGBA().Lighten(amount).ToRGB()
}

// Darken decreases lightness by the given amount, clamped at 0%.
func (c RGB) Darken(amount Ratio) RGB {
	return c.ToRGBA().Darken(amount).ToRGB()
}

// FadeIn is a no-op on an opaque color.
func (c RGB) FadeIn(amount Ratio) RGB {
	return c
}

// FadeOut is a no-op on an opaque color.
func (c RGB) FadeOut(amount Ratio) RGB {
	return c
}

// Fade promotes the color to RGBA with the given alpha.
func (c RGB) Fade(amount Ratio) RGBA {
	return c.ToRGBA().Fade(amount)
}

// Spin rotates the hue by the given angle.
func (c RGB) Spin(amount Angle) RGB {
	return c.ToRGBA().Spin(amount).ToRGB()
}

// Mix blends the color with another; see RGBA.Mix.
func (c RGB) Mix(other Color, weight Ratio) RGBA {
	return c.ToRGBA().Mix(other, weight)
}

// Tint mixes the color with white at the given weight.
func (c RGB) Tint(weight Ratio) RGB {
	return c.ToRGBA().Tint(weight).ToRGB()
}

// Shade mixes the color with black at the given weight.
func (c RGB) Shade(weight Ratio) RGB {
	return c.ToRGBA().Shade(weight).ToRGB()
}

// Greyscale drops all saturation, leaving lightness intact.
func (c RGB) Greyscale() RGB {
	return c.ToRGBA().Greyscale().ToRGB()
}

// RGBA is an RGB color with an alpha channel. Alpha is a Ratio over the
// 0-255 byte range, where 0 is fully transparent and 255 fully opaque.
//
// See the CSS color spec: https://www.w3.org/TR/css-color-3/#rgba-color
type RGBA struct {
	R Ratio // red
	G Ratio // green
	B Ratio // blue
	A Ratio // alpha
}

// NewRGBA constructs an RGBA color from byte channel values.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{R: Byte(r), G: Byte(g), B: Byte(b), A: Byte(a)}
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)",
		c.R.Byte(), c.G.Byte(), c.B.Byte(), c.A.Float32())
}

// ToCSS renders the color as a CSS rgba() function, with the alpha
// formatted to two decimal places.
func (c RGBA) ToCSS() string {
	return c.String()
}

// ToRGB drops the alpha channel.
func (c RGBA) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

func (c RGBA) ToRGBA() RGBA {
	return c
}

func (c RGBA) ToHSL() HSL {
	return c.ToHSLA().ToHSL()
}

// ToHSLA converts to the HSL space, determining the equivalent hue,
// saturation, and luminosity. Alpha passes through unchanged.
func (c RGBA) ToHSLA() HSLA {
	// Equal channels mean a shade of grey between black and white. There is
	// no hue or saturation, and any channel doubles as the luminosity.
	if c.R == c.G && c.G == c.B {
		return HSLA{H: Deg(0), S: Byte(0), L: c.R, A: c.A}
	}

	r := c.R.Float32()
	g := c.G.Float32()
	b := c.B.Float32()

	max := math32.Max(math32.Max(r, g), b)
	min := math32.Min(math32.Min(r, g), b)

	// Luminosity is the midpoint of the strongest and weakest channels.
	luminosity := (max + min) / 2.0

	// Saturation relates the channel spread to the luminosity; the
	// denominator flips once the color is brighter than mid-grey.
	var saturation float32
	if luminosity < 0.5 {
		saturation = (max - min) / (max + min)
	} else {
		saturation = (max - min) / (2.0 - (max + min))
	}

	// Hue depends on which channel dominates: each channel owns a 120°
	// sector of the wheel, and the other two pull up to 60° either way.
	// The result may be negative here; Deg normalizes it.
	var hue float32
	switch max {
	case r:
		hue = 60.0 * (g - b) / (max - min)
	case g:
		hue = 120.0 + 60.0*(b-r)/(max-min)
	default:
		hue = 240.0 + 60.0*(r-g)/(max-min)
	}

	return HSLA{
		H: Deg(int(math32.Round(hue))),
		S: clampRatio(saturation),
		L: clampRatio(luminosity),
		A: c.A,
	}
}

// Saturate increases saturation by the given amount, clamped at 100%.
func (c RGBA) Saturate(amount Ratio) RGBA {
	return c.ToHSLA().Saturate(amount).ToRGBA()
}

// Desaturate decreases saturation by the given amount, clamped at 0%.
func (c RGBA) Desaturate(amount Ratio) RGBA {
	return c.ToHSLA().Desaturate(amount).ToRGBA()
}

// Lighten increases lightness by the given amount, clamped at 100%.
func (c RGBA) Lighten(amount Ratio) RGBA {
	return c.ToHSLA().Lighten(amount).ToRGBA()
}

// Darken decreases lightness by the given amount, clamped at 0%.
func (c RGBA) Darken(amount Ratio) RGBA {
	return c.ToHSLA().Darken(amount).ToRGBA()
}

// FadeIn increases alpha by the given amount, clamped at 100%.
func (c RGBA) FadeIn(amount Ratio) RGBA {
	return c.Fade(c.A.Add(amount))
}

// FadeOut decreases alpha by the given amount, clamped at 0%.
func (c RGBA) FadeOut(amount Ratio) RGBA {
	return c.Fade(c.A.Sub(amount))
}

// Fade sets alpha to the given amount absolutely.
func (c RGBA) Fade(amount Ratio) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: amount}
}

// Spin rotates the hue by the given angle.
func (c RGBA) Spin(amount Angle) RGBA {
	return c.ToHSLA().Spin(amount).ToRGBA()
}

// Mix computes a weighted average of two colors, taking both the caller's
// weight and the difference between the colors' alphas into account. This is
// the Sass mix algorithm: the RGB channels blend with an alpha-corrected
// weight while the alpha channels blend with the caller's original weight.
// A weight of 100% yields the receiver, 0% yields other.
func (c RGBA) Mix(other Color, weight Ratio) RGBA {
	rhs := other.ToRGBA()

	// Scale the caller's weight from [0, 1] to [-1, 1].
	w := weight.Float32()*2.0 - 1.0

	// Difference between the two alphas, in [-1, 1].
	a := c.A.Float32() - rhs.A.Float32()

	// Combine the weight with the alpha difference. The guard steps around
	// the singularity at w×a == -1.
	var combined float32
	if w*a == -1.0 {
		combined = w
	} else {
		combined = (w + a) / (1.0 + w*a)
	}

	// Back into [0, 1], quantized.
	rgbWeight := clampRatio((combined + 1.0) / 2.0)
	rgbWeightRHS := Byte(255).Sub(rgbWeight)

	alphaWeight := weight
	alphaWeightRHS := Byte(255).Sub(alphaWeight)

	return RGBA{
		R: c.R.Mul(rgbWeight).Add(rhs.R.Mul(rgbWeightRHS)),
		G: c.G.Mul(rgbWeight).Add(rhs.G.Mul(rgbWeightRHS)),
		B: c.B.Mul(rgbWeight).Add(rhs.B.Mul(rgbWeightRHS)),
		A: c.A.Mul(alphaWeight).Add(rhs.A.Mul(alphaWeightRHS)),
	}
}

// Tint mixes the color with white at the given weight.
func (c RGBA) Tint(weight Ratio) RGBA {
	return c.Mix(NewRGB(255, 255, 255), weight)
}

// Shade mixes the color with black at the given weight.
func (c RGBA) Shade(weight Ratio) RGBA {
	return c.Mix(NewRGB(0, 0, 0), weight)
}

// Greyscale drops all saturation, leaving lightness and alpha intact.
func (c RGBA) Greyscale() RGBA {
	return c.ToHSLA().Greyscale().ToRGBA()
}
