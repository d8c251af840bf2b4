package csscolors

import (
	"fmt"
	"strconv"
)

// Angle is a hue angle in whole degrees, always normalized to [0, 360).
// The zero value is 0°.
//
// Arithmetic on Angles wraps around the color wheel: results reduce
// modulo 360 rather than clamping.
type Angle struct {
	degrees uint16
}

// Deg constructs an Angle from any number of degrees, normalizing into
// [0, 360). Negative and over-range values wrap: Deg(-90) == Deg(270).
func Deg(d int) Angle {
	d %= 360
	if d < 0 {
		d += 360
	}
	return Angle{degrees: uint16(d)}
}

// Degrees returns the normalized number of degrees.
func (a Angle) Degrees() uint16 {
	return a.degrees
}

// Add returns a + o, reduced modulo 360.
func (a Angle) Add(o Angle) Angle {
	return Angle{degrees: uint16((uint32(a.degrees) + uint32(o.degrees)) % 360)}
}

// Sub returns a - o, defined as the addition of o's negation.
func (a Angle) Sub(o Angle) Angle {
	return a.Add(o.Neg())
}

// Mul returns a × o, reduced modulo 360.
func (a Angle) Mul(o Angle) Angle {
	return Angle{degrees: uint16((uint32(a.degrees) * uint32(o.degrees)) % 360)}
}

// Div returns a ÷ o. Dividing by the zero angle is undefined and
// returns an error.
func (a Angle) Div(o Angle) (Angle, error) {
	if o.degrees == 0 {
		return Angle{}, fmt.Errorf("division by zero-valued angle")
	}
	return Angle{degrees: uint16((uint32(a.degrees) / uint32(o.degrees)) % 360)}, nil
}

// Neg returns the reflection of a across 0°: Deg(90).Neg() == Deg(270).
func (a Angle) Neg() Angle {
	return Angle{degrees: (360 - a.degrees) % 360}
}

func (a Angle) String() string {
	return strconv.Itoa(int(a.degrees))
}
