package orientation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrNearlySingular is returned when an orientation is requested from a
// vector too short to have one.
var ErrNearlySingular = errors.New("nearly singular orientation")

const singularEpsilon = 1e-6

// Direction is a unit vector in the plane.
//
// The zero value is not a valid Direction; use DirectionNorth as a default.
type Direction struct {
	v r2.Vec
}

var sqrtHalf = math.Sqrt2 / 2

// Compass directions, matching the Rotation constants.
var (
	DirectionNorth     = Direction{v: r2.Vec{X: 0, Y: 1}}
	DirectionNorthEast = Direction{v: r2.Vec{X: sqrtHalf, Y: sqrtHalf}}
	DirectionEast      = Direction{v: r2.Vec{X: 1, Y: 0}}
	DirectionSouthEast = Direction{v: r2.Vec{X: sqrtHalf, Y: -sqrtHalf}}
	DirectionSouth     = Direction{v: r2.Vec{X: 0, Y: -1}}
	DirectionSouthWest = Direction{v: r2.Vec{X: -sqrtHalf, Y: -sqrtHalf}}
	DirectionWest      = Direction{v: r2.Vec{X: -1, Y: 0}}
	DirectionNorthWest = Direction{v: r2.Vec{X: -sqrtHalf, Y: sqrtHalf}}
)

// NewDirection normalizes (x, y). It panics on a vector with no direction;
// use DirectionFromVec when the input may be zero.
func NewDirection(x, y float64) Direction {
	d, err := DirectionFromVec(r2.Vec{X: x, Y: y})
	if err != nil {
		panic(fmt.Sprintf("orientation: NewDirection: %v", err))
	}
	return d
}

// DirectionFromVec normalizes v, failing with ErrNearlySingular when v is
// shorter than the singular epsilon or not finite.
func DirectionFromVec(v r2.Vec) (Direction, error) {
	n := r2.Norm(v)
	if n < singularEpsilon || math.IsNaN(n) || math.IsInf(n, 0) {
		return Direction{}, fmt.Errorf("direction of (%g, %g): %w", v.X, v.Y, ErrNearlySingular)
	}
	return Direction{v: r2.Scale(1/n, v)}, nil
}

// X returns the x component.
func (d Direction) X() float64 { return d.v.X }

// Y returns the y component.
func (d Direction) Y() float64 { return d.v.Y }

// Vec returns d as a plain vector.
func (d Direction) Vec() r2.Vec { return d.v }

// Scale returns d stretched to length m.
func (d Direction) Scale(m float64) r2.Vec { return r2.Scale(m, d.v) }

// Dot returns the cosine of the angle between d and o.
func (d Direction) Dot(o Direction) float64 { return r2.Dot(d.v, o.v) }

// Neg returns the opposite direction.
func (d Direction) Neg() Direction { return Direction{v: r2.Scale(-1, d.v)} }

// IsValid reports whether d has unit length.
func (d Direction) IsValid() bool {
	return math.Abs(r2.Norm(d.v)-1) < 1e-6
}

// ApproxEqual reports whether d and o differ by at most tol per component.
func (d Direction) ApproxEqual(o Direction, tol float64) bool {
	return scalar.EqualWithinAbs(d.v.X, o.v.X, tol) && scalar.EqualWithinAbs(d.v.Y, o.v.Y, tol)
}

// AsRotation returns the rotation nearest to d.
func (d Direction) AsRotation() Rotation {
	return FromRadians(math.Atan2(d.v.X, d.v.Y))
}

// AsDirection returns d.
func (d Direction) AsDirection() Direction { return d }

// WithRotation returns the direction of r.
func (Direction) WithRotation(r Rotation) Direction { return r.AsDirection() }

func (d Direction) String() string {
	return fmt.Sprintf("Direction(%.4f, %.4f)", d.v.X, d.v.Y)
}
