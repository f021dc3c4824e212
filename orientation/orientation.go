package orientation

import "gonum.org/v1/gonum/spatial/r2"

// Orientation is implemented by every 2D facing representation.
type Orientation interface {
	AsRotation() Rotation
	AsDirection() Direction
}

// Oriented constrains a concrete orientation type that can be rebuilt from
// a Rotation, so generic helpers can return the caller's own type.
type Oriented[O any] interface {
	Orientation
	WithRotation(Rotation) O
}

// Spin is the sense of a rotation.
type Spin int8

const (
	Clockwise        Spin = 1
	CounterClockwise Spin = -1
)

// Reverse returns the opposite spin.
func (s Spin) Reverse() Spin { return -s }

func (s Spin) String() string {
	if s == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// Distance is the unsigned shortest angle between a and b, in [0°, 180°].
func Distance(a, b Orientation) Rotation {
	d := b.AsRotation().Sub(a.AsRotation())
	if d > South {
		return d.Neg()
	}
	return d
}

// RotationDirection returns the shorter way to turn from a to b. A half
// turn, or no turn at all, is clockwise.
func RotationDirection(from, to Orientation) Spin {
	if to.AsRotation().Sub(from.AsRotation()) <= South {
		return Clockwise
	}
	return CounterClockwise
}

// RotateTowards turns current toward target by at most maxStep along the
// shorter path. It lands exactly on target once within maxStep; pass
// Unbounded to snap.
func RotateTowards[O Oriented[O]](current, target O, maxStep Rotation) O {
	if Distance(current, target) <= maxStep {
		return target
	}
	step := int64(maxStep)
	if RotationDirection(current, target) == CounterClockwise {
		step = -step
	}
	return current.WithRotation(current.AsRotation().Rotate(step))
}

// ApproxEqual reports whether a and b are within two deci-degrees.
func ApproxEqual(a, b Orientation) bool {
	return Distance(a, b) <= 2
}

// Between returns the orientation pointing from one point to another.
// Coincident points fail with ErrNearlySingular.
func Between[O Oriented[O]](from, to r2.Vec) (O, error) {
	var zero O
	r, err := FromXY(to.X-from.X, to.Y-from.Y)
	if err != nil {
		return zero, err
	}
	return zero.WithRotation(r), nil
}
