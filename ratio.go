package csscolors

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Ratio is a fraction in the range [0, 1], stored with 8-bit fixed-point
// precision. It backs the R, G, B, saturation, lightness, and alpha channels.
// The zero value is 0%.
//
// Arithmetic on Ratios saturates: results beyond [0, 1] clamp to the boundary
// instead of wrapping or failing. This matches how CSS color math behaves —
// saturating past 100% stays at 100%.
type Ratio struct {
	value uint8
}

// Percent constructs a Ratio from a percentage. Values above 100 are
// rejected.
func Percent(p uint8) (Ratio, error) {
	if p > 100 {
		return Ratio{}, fmt.Errorf("percentage %d out of range 0-100", p)
	}
	return Ratio{value: uint8(math32.Round(float32(p) / 100.0 * 255.0))}, nil
}

// MustPercent is like Percent but panics on an out-of-range value.
// Intended for constants and tests.
func MustPercent(p uint8) Ratio {
	r, err := Percent(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Byte constructs a Ratio from a raw byte. Every byte is a valid Ratio.
func Byte(b uint8) Ratio {
	return Ratio{value: b}
}

// Float constructs a Ratio from a float in the inclusive range [0.0, 1.0].
// Values outside that range are rejected.
func Float(f float32) (Ratio, error) {
	if !(f >= 0.0 && f <= 1.0) {
		return Ratio{}, fmt.Errorf("ratio %v out of range 0.0-1.0", f)
	}
	return Ratio{value: uint8(math32.Round(f * 255.0))}, nil
}

// Percent returns the ratio as a percentage, rounded to the nearest integer.
func (r Ratio) Percent() uint8 {
	return uint8(math32.Round(float32(r.value) / 255.0 * 100.0))
}

// Byte returns the raw underlying byte.
func (r Ratio) Byte() uint8 {
	return r.value
}

// Float32 returns the ratio as a float in [0.0, 1.0].
func (r Ratio) Float32() float32 {
	return float32(r.value) / 255.0
}

// Add returns r + o, clamped to 100%.
func (r Ratio) Add(o Ratio) Ratio {
	return clampRatio(r.Float32() + o.Float32())
}

// Sub returns r - o, clamped to 0%.
func (r Ratio) Sub(o Ratio) Ratio {
	return clampRatio(r.Float32() - o.Float32())
}

// Mul returns r × o, clamped to [0%, 100%].
func (r Ratio) Mul(o Ratio) Ratio {
	return clampRatio(r.Float32() * o.Float32())
}

// Div returns r ÷ o, clamped to [0%, 100%]. Division by a zero ratio
// clamps to 100% rather than failing.
func (r Ratio) Div(o Ratio) Ratio {
	return clampRatio(r.Float32() / o.Float32())
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d%%", r.Percent())
}

// clampRatio quantizes a float into a Ratio, clamping to [0.0, 1.0] first.
// NaN clamps to zero.
func clampRatio(f float32) Ratio {
	switch {
	case f > 1.0:
		f = 1.0
	case f >= 0.0:
		// in range
	default:
		f = 0.0
	}
	return Ratio{value: uint8(math32.Round(f * 255.0))}
}
