package components

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

// Velocity is the rate of change of Position, in C per second.
type Velocity[C coord.Coordinate[C]] struct {
	X, Y C
}

// Acceleration is the rate of change of Velocity, in C per second squared.
type Acceleration[C coord.Coordinate[C]] struct {
	X, Y C
}

// NewVelocity builds a velocity of the given magnitude along d.
func NewVelocity[C coord.Coordinate[C]](magnitude float64, d orientation.Direction) (Velocity[C], error) {
	x, y, err := vecToCoords[C](d.Scale(magnitude))
	if err != nil {
		return Velocity[C]{}, fmt.Errorf("velocity: %w", err)
	}
	return Velocity[C]{X: x, Y: y}, nil
}

// NewAcceleration builds an acceleration of the given magnitude along d.
func NewAcceleration[C coord.Coordinate[C]](magnitude float64, d orientation.Direction) (Acceleration[C], error) {
	x, y, err := vecToCoords[C](d.Scale(magnitude))
	if err != nil {
		return Acceleration[C]{}, fmt.Errorf("acceleration: %w", err)
	}
	return Acceleration[C]{X: x, Y: y}, nil
}

func vecToCoords[C coord.Coordinate[C]](v r2.Vec) (C, C, error) {
	var zero C
	x, err := coord.FromFloat32[C](float32(v.X))
	if err != nil {
		return zero, zero, err
	}
	y, err := coord.FromFloat32[C](float32(v.Y))
	if err != nil {
		return zero, zero, err
	}
	return x, y, nil
}

func coordsToVec[C coord.Coordinate[C]](x, y C) r2.Vec {
	return r2.Vec{X: float64(x.Float32()), Y: float64(y.Float32())}
}

// Vec returns v in the float interchange format.
func (v Velocity[C]) Vec() r2.Vec { return coordsToVec(v.X, v.Y) }

// Magnitude returns the speed.
func (v Velocity[C]) Magnitude() float64 { return r2.Norm(v.Vec()) }

// Direction returns the heading of v. A zero velocity has none.
func (v Velocity[C]) Direction() (orientation.Direction, error) {
	return orientation.DirectionFromVec(v.Vec())
}

// Vec returns a in the float interchange format.
func (a Acceleration[C]) Vec() r2.Vec { return coordsToVec(a.X, a.Y) }

// Magnitude returns the length of a.
func (a Acceleration[C]) Magnitude() float64 { return r2.Norm(a.Vec()) }

// Direction returns the heading of a. A zero acceleration has none.
func (a Acceleration[C]) Direction() (orientation.Direction, error) {
	return orientation.DirectionFromVec(a.Vec())
}

// AngularVelocity is the rate of change of Rotation in deci-degrees per
// second. Positive is clockwise.
type AngularVelocity struct {
	Rate float32

	// sub-deci-degree rotation not yet applied to Rotation
	carry float64
}

// AngularAcceleration is the rate of change of AngularVelocity in
// deci-degrees per second squared. Positive is clockwise.
type AngularAcceleration struct {
	Rate float32
}

// Spin returns the sense of w, or false when w is zero.
func (w AngularVelocity) Spin() (orientation.Spin, bool) {
	switch {
	case w.Rate > 0:
		return orientation.Clockwise, true
	case w.Rate < 0:
		return orientation.CounterClockwise, true
	}
	return 0, false
}

// Step returns the whole deci-degrees to rotate after dt seconds and keeps
// the fractional remainder for the next call.
func (w *AngularVelocity) Step(dt float32) int64 {
	total := float64(w.Rate)*float64(dt) + w.carry
	whole := math.Trunc(total)
	w.carry = total - whole
	return int64(whole)
}
