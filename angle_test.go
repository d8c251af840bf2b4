package csscolors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegNormalizes(t *testing.T) {
	tests := []struct {
		in   int
		want uint16
	}{
		{0, 0},
		{30, 30},
		{359, 359},
		{360, 0},
		{361, 1},
		{720, 0},
		{-1, 359},
		{-90, 270},
		{-360, 0},
		{-721, 359},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Deg(tt.in).Degrees(), "Deg(%d)", tt.in)
	}
}

func TestAngleAdd(t *testing.T) {
	assert.Equal(t, Deg(77), Deg(30).Add(Deg(47)))
	assert.Equal(t, Deg(0), Deg(359).Add(Deg(1)))
	assert.Equal(t, Deg(357), Deg(359).Add(Deg(359)).Add(Deg(359)))
}

func TestAngleSub(t *testing.T) {
	assert.Equal(t, Deg(343), Deg(30).Sub(Deg(47)))
	assert.Equal(t, Deg(17), Deg(47).Sub(Deg(30)))
	assert.Equal(t, Deg(359), Deg(0).Sub(Deg(1)))
	assert.Equal(t, Deg(3), Deg(0).Sub(Deg(359)).Sub(Deg(359)).Sub(Deg(359)))
}

func TestAngleMul(t *testing.T) {
	assert.Equal(t, Deg(0), Deg(30).Mul(Deg(0)))
	assert.Equal(t, Deg(60), Deg(30).Mul(Deg(2)))
	assert.Equal(t, Deg(0), Deg(30).Mul(Deg(12)))
	assert.Equal(t, Deg(120), Deg(30).Mul(Deg(100)))
	assert.Equal(t, Deg(16), Deg(47).Mul(Deg(8)))
	assert.Equal(t, Deg(20), Deg(47).Mul(Deg(100)))
}

func TestAngleDiv(t *testing.T) {
	got, err := Deg(30).Div(Deg(2))
	assert.NoError(t, err)
	assert.Equal(t, Deg(15), got)

	got, err = Deg(180).Div(Deg(12))
	assert.NoError(t, err)
	assert.Equal(t, Deg(15), got)

	got, err = Deg(47).Div(Deg(2))
	assert.NoError(t, err)
	assert.Equal(t, Deg(23), got)

	_, err = Deg(30).Div(Deg(0))
	assert.Error(t, err)
}

func TestAngleNeg(t *testing.T) {
	assert.Equal(t, Deg(270), Deg(90).Neg())
	assert.Equal(t, Deg(0), Deg(0).Neg())
}

func TestAngleString(t *testing.T) {
	assert.Equal(t, "30", Deg(30).String())
}
