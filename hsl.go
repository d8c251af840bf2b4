package csscolors

import "fmt"

// HSL describes a color by its hue on the color wheel, its saturation, and
// its luminosity. Hue 0 (or 360) is red, 120 green, 240 blue. Saturation
// runs from 0% (grey) to 100% (fully saturated); luminosity from 0% (black)
// to 100% (white).
//
// See the CSS color spec: https://www.w3.org/TR/css-color-3/#hsl-color
type HSL struct {
	H Angle // hue
	S Ratio // saturation
	L Ratio // luminosity
}

// NewHSL constructs an HSL color. The hue is in degrees and normalizes like
// Deg; saturation and luminosity are percentages and values above 100 are
// rejected.
func NewHSL(h int, s, l uint8) (HSL, error) {
	sr, err := Percent(s)
	if err != nil {
		return HSL{}, fmt.Errorf("saturation: %w", err)
	}
	lr, err := Percent(l)
	if err != nil {
		return HSL{}, fmt.Errorf("luminosity: %w", err)
	}
	return HSL{H: Deg(h), S: sr, L: lr}, nil
}

// MustHSL is like NewHSL but panics on an out-of-range value.
func MustHSL(h int, s, l uint8) HSL {
	c, err := NewHSL(h, s, l)
	if err != nil {
		panic(err)
	}
	return c
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s, %s)", c.H, c.S, c.L)
}

// ToCSS renders the color as a CSS hsl() function.
func (c HSL) ToCSS() string {
	return c.String()
}

func (c HSL) ToRGB() RGB {
	return c.ToHSLA().ToRGB()
}

func (c HSL) ToRGBA() RGBA {
	return c.ToHSLA().ToRGBA()
}

func (c HSL) ToHSL() HSL {
	return c
}

// ToHSLA promotes the color to its alpha-aware form, fully opaque.
func (c HSL) ToHSLA() HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: Byte(255)}
}

// Saturate increases saturation by the given amount, clamped at 100%.
func (c HSL) Saturate(amount Ratio) HSL {
	return c.ToHSLA().Saturate(amount).ToHSL()
}

// Desaturate decreases saturation by the given amount, clamped at 0%.
func (c HSL) Desaturate(amount Ratio) HSL {
	return c.ToHSLA().Desaturate(amount).ToHSL()
}

// Lighten increases luminosity by the given amount, clamped at 100%.
func (c HSL) Lighten(amount Ratio) HSL {
	return c.ToHSLA().Lighten(amount).ToHSL()
}

// Darken decreases luminosity by the given amount, clamped at 0%.
func (c HSL) Darken(amount Ratio) HSL {
	return c.ToHSLA().Darken(amount).ToHSL()
}

// FadeIn is a no-op on an opaque color.
func (c HSL) FadeIn(amount Ratio) HSL {
	return c
}

// FadeOut is a no-op on an opaque color.
func (c HSL) FadeOut(amount Ratio) HSL {
	return c
}

// Fade promotes the color to HSLA with the given alpha.
func (c HSL) Fade(amount Ratio) HSLA {
	return c.ToHSLA().Fade(amount)
}

// Spin rotates the hue by the given angle.
func (c HSL) Spin(amount Angle) HSL {
	return c.ToHSLA().Spin(amount).ToHSL()
}

// Mix blends the color with another; see RGBA.Mix.
func (c HSL) Mix(other Color, weight Ratio) HSLA {
	return c.ToHSLA().Mix(other, weight)
}

// Tint mixes the color with white at the given weight.
func (c HSL) Tint(weight Ratio) HSL {
	return c.ToHSLA().Tint(weight).ToHSL()
}

// Shade mixes the color with black at the given weight.
func (c HSL) Shade(weight Ratio) HSL {
	return c.ToHSLA().Shade(weight).ToHSL()
}

// Greyscale drops all saturation, leaving hue and luminosity intact.
func (c HSL) Greyscale() HSL {
	return c.ToHSLA().Greyscale().ToHSL()
}

// HSLA is an HSL color with an alpha channel.
//
// See the CSS color spec: https://www.w3.org/TR/css-color-3/#hsla-color
type HSLA struct {
	H Angle // hue
	S Ratio // saturation
	L Ratio // luminosity
	A Ratio // alpha
}

// NewHSLA constructs an HSLA color. The hue is in degrees and normalizes
// like Deg; saturation and luminosity are percentages and values above 100
// are rejected. Alpha is a float and values outside [0.0, 1.0] are rejected.
func NewHSLA(h int, s, l uint8, a float32) (HSLA, error) {
	sr, err := Percent(s)
	if err != nil {
		return HSLA{}, fmt.Errorf("saturation: %w", err)
	}
	lr, err := Percent(l)
	if err != nil {
		return HSLA{}, fmt.Errorf("luminosity: %w", err)
	}
	ar, err := Float(a)
	if err != nil {
		return HSLA{}, fmt.Errorf("alpha: %w", err)
	}
	return HSLA{H: Deg(h), S: sr, L: lr, A: ar}, nil
}

// MustHSLA is like NewHSLA but panics on an out-of-range value.
func MustHSLA(h int, s, l uint8, a float32) HSLA {
	c, err := NewHSLA(h, s, l, a)
	if err != nil {
		panic(err)
	}
	return c
}

func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%s, %s, %s, %.2f)", c.H, c.S, c.L, c.A.Float32())
}

// ToCSS renders the color as a CSS hsla() function, with the alpha
// formatted to two decimal places.
func (c HSLA) ToCSS() string {
	return c.String()
}

func (c HSLA) ToRGB() RGB {
	return c.ToRGBA().ToRGB()
}

// ToRGBA converts to the RGB space. Alpha passes through unchanged.
func (c HSLA) ToRGBA() RGBA {
	// With no saturation the color is a shade of grey: every channel equals
	// the luminosity.
	if c.S == Byte(0) {
		return RGBA{R: c.L, G: c.L, B: c.L, A: c.A}
	}

	s := c.S.Float32()
	l := c.L.Float32()

	// Two intermediates drive the piecewise channel function. Below
	// mid-grey the first is l scaled up by the saturation; above, it is
	// their sum less their product.
	var temp1 float32
	if l < 0.5 {
		temp1 = l * (1.0 + s)
	} else {
		temp1 = (l + s) - (l * s)
	}
	temp2 := (2.0 * l) - temp1

	// Each channel reads the hue wheel a third of a turn apart: red leads
	// the hue by 120°, blue trails it by 120°.
	rotation := Deg(120)
	red := hueToChannel(c.H.Add(rotation).Degrees(), temp1, temp2)
	green := hueToChannel(c.H.Degrees(), temp1, temp2)
	blue := hueToChannel(c.H.Sub(rotation).Degrees(), temp1, temp2)

	return RGBA{
		R: clampRatio(red),
		G: clampRatio(green),
		B: clampRatio(blue),
		A: c.A,
	}
}

// hueToChannel converts one rotated hue angle into the magnitude of a single
// RGB channel, given the two luminosity/saturation intermediates.
func hueToChannel(degrees uint16, temp1, temp2 float32) float32 {
	v := float32(degrees) / 360.0

	switch {
	case v > 2.0/3.0:
		return temp2
	case v > 1.0/2.0:
		return temp2 + (temp1-temp2)*(2.0/3.0-v)*6.0
	case v > 1.0/6.0:
		return temp1
	default:
		return temp2 + (temp1-temp2)*v*6.0
	}
}

func (c HSLA) ToHSL() HSL {
	return HSL{H: c.H, S: c.S, L: c.L}
}

func (c HSLA) ToHSLA() HSLA {
	return c
}

// Saturate increases saturation by the given amount, clamped at 100%.
func (c HSLA) Saturate(amount Ratio) HSLA {
	return HSLA{H: c.H, S: c.S.Add(amount), L: c.L, A: c.A}
}

// Desaturate decreases saturation by the given amount, clamped at 0%.
func (c HSLA) Desaturate(amount Ratio) HSLA {
	return HSLA{H: c.H, S: c.S.Sub(amount), L: c.L, A: c.A}
}

// Lighten increases luminosity by the given amount, clamped at 100%.
func (c HSLA) Lighten(amount Ratio) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L.Add(amount), A: c.A}
}

// Darken decreases luminosity by the given amount, clamped at 0%.
func (c HSLA) Darken(amount Ratio) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L.Sub(amount), A: c.A}
}

// FadeIn increases alpha by the given amount, clamped at 100%.
func (c HSLA) FadeIn(amount Ratio) HSLA {
	return c.Fade(c.A.Add(amount))
}

// FadeOut decreases alpha by the given amount, clamped at 0%.
func (c HSLA) FadeOut(amount Ratio) HSLA {
	return c.Fade(c.A.Sub(amount))
}

// Fade sets alpha to the given amount absolutely.
func (c HSLA) Fade(amount Ratio) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: amount}
}

// Spin rotates the hue by the given angle.
func (c HSLA) Spin(amount Angle) HSLA {
	return HSLA{H: c.H.Add(amount), S: c.S, L: c.L, A: c.A}
}

// Mix blends the color with another in RGB space; see RGBA.Mix.
func (c HSLA) Mix(other Color, weight Ratio) HSLA {
	return c.ToRGBA().Mix(other, weight).ToHSLA()
}

// Tint mixes the color with white at the given weight.
func (c HSLA) Tint(weight Ratio) HSLA {
	return c.ToRGBA().Tint(weight).ToHSLA()
}

// Shade mixes the color with black at the given weight.
func (c HSLA) Shade(weight Ratio) HSLA {
	return c.ToRGBA().Shade(weight).ToHSLA()
}

// Greyscale drops all saturation, leaving hue, luminosity, and alpha intact.
func (c HSLA) Greyscale() HSLA {
	return HSLA{H: c.H, S: Byte(0), L: c.L, A: c.A}
}
