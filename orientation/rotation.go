// Package orientation provides the two interchangeable 2D facing
// representations, Rotation and Direction, and the arithmetic shared by both.
//
// Angles are measured clockwise from north (+y).
package orientation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// FullCircle is the number of deci-degrees in one turn.
const FullCircle = 3600

// Rotation is an angle in tenths of a degree, clockwise from north.
// It is always reduced modulo FullCircle, so equality is exact and repeated
// accumulation never drifts.
type Rotation uint16

// Compass rotations.
const (
	North     Rotation = 0
	NorthEast Rotation = 450
	East      Rotation = 900
	SouthEast Rotation = 1350
	South     Rotation = 1800
	SouthWest Rotation = 2250
	West      Rotation = 2700
	NorthWest Rotation = 3150
)

// Unbounded passed as a step limit means "snap straight to the target".
const Unbounded Rotation = math.MaxUint16

// NewRotation reduces deciDegrees into a Rotation.
func NewRotation(deciDegrees uint16) Rotation {
	return Rotation(deciDegrees % FullCircle)
}

// FromDegrees wraps d into [0, 360) and rounds to the nearest deci-degree.
// Non-finite input yields North.
func FromDegrees(d float64) Rotation {
	return fromDeci(math.Mod(d, 360) * 10)
}

// FromRadians wraps r into [0, 2π) and rounds to the nearest deci-degree.
// Non-finite input yields North.
func FromRadians(r float64) Rotation {
	return fromDeci(math.Mod(r, 2*math.Pi) * FullCircle / (2 * math.Pi))
}

// FromXY returns the rotation of the vector (x, y). Vectors shorter than
// the singular epsilon have no rotation.
func FromXY(x, y float64) (Rotation, error) {
	if x*x+y*y < singularEpsilon*singularEpsilon {
		return North, fmt.Errorf("rotation of (%g, %g): %w", x, y, ErrNearlySingular)
	}
	return FromRadians(math.Atan2(x, y)), nil
}

func fromDeci(deci float64) Rotation {
	if math.IsNaN(deci) || math.IsInf(deci, 0) {
		return North
	}
	m := math.Mod(math.Round(deci), FullCircle)
	if m < 0 {
		m += FullCircle
	}
	return Rotation(m)
}

// DeciDegrees returns r in tenths of a degree.
func (r Rotation) DeciDegrees() uint16 { return uint16(r) }

// Degrees returns r in degrees.
func (r Rotation) Degrees() float64 { return float64(r) / 10 }

// Radians returns r in radians.
func (r Rotation) Radians() float64 { return float64(r) * (2 * math.Pi) / FullCircle }

// Add returns r + o, wrapped.
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation((uint32(r) + uint32(o)) % FullCircle)
}

// Sub returns r - o, wrapped.
func (r Rotation) Sub(o Rotation) Rotation {
	return Rotation((uint32(r) + FullCircle - uint32(o)%FullCircle) % FullCircle)
}

// Neg returns the rotation mirrored across the north-south axis.
func (r Rotation) Neg() Rotation {
	return Rotation((FullCircle - uint32(r)%FullCircle) % FullCircle)
}

// Rotate turns r by delta deci-degrees; positive is clockwise. Any multiple
// of FullCircle in delta has no effect.
func (r Rotation) Rotate(delta int64) Rotation {
	m := delta % FullCircle
	if m < 0 {
		m += FullCircle
	}
	return Rotation((int64(r) + m) % FullCircle)
}

// Mul scales the angle of r by f, wrapped and rounded.
func (r Rotation) Mul(f float64) Rotation { return fromDeci(float64(r) * f) }

// Div divides the angle of r by f, wrapped and rounded.
func (r Rotation) Div(f float64) Rotation { return fromDeci(float64(r) / f) }

// IntoXY returns the unit vector (sin θ, cos θ) for r. Multiples of 90° are exact.
func (r Rotation) IntoXY() (x, y float64) {
	switch r {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	s, c := math.Sincos(r.Radians())
	return s, c
}

// AsRotation returns r.
func (r Rotation) AsRotation() Rotation { return r }

// AsDirection returns the unit vector r points along.
func (r Rotation) AsDirection() Direction {
	x, y := r.IntoXY()
	return Direction{v: r2.Vec{X: x, Y: y}}
}

// WithRotation returns o.
func (Rotation) WithRotation(o Rotation) Rotation { return o }

func (r Rotation) String() string {
	return fmt.Sprintf("%d.%d°", uint16(r)/10, uint16(r)%10)
}
