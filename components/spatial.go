package components

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

// Position is an entity's location in the plane.
type Position[C coord.Coordinate[C]] struct {
	X, Y C
}

// NewPosition returns the position (x, y).
func NewPosition[C coord.Coordinate[C]](x, y C) Position[C] {
	return Position[C]{X: x, Y: y}
}

// PositionFromVec converts a float vector into a position, failing if
// either axis is out of range for C.
func PositionFromVec[C coord.Coordinate[C]](v r2.Vec) (Position[C], error) {
	x, err := coord.FromFloat32[C](float32(v.X))
	if err != nil {
		return Position[C]{}, fmt.Errorf("position x: %w", err)
	}
	y, err := coord.FromFloat32[C](float32(v.Y))
	if err != nil {
		return Position[C]{}, fmt.Errorf("position y: %w", err)
	}
	return Position[C]{X: x, Y: y}, nil
}

func (p Position[C]) Add(o Position[C]) Position[C] { return Position[C]{p.X.Add(o.X), p.Y.Add(o.Y)} }
func (p Position[C]) Sub(o Position[C]) Position[C] { return Position[C]{p.X.Sub(o.X), p.Y.Sub(o.Y)} }
func (p Position[C]) Mul(o Position[C]) Position[C] { return Position[C]{p.X.Mul(o.X), p.Y.Mul(o.Y)} }
func (p Position[C]) Div(o Position[C]) Position[C] { return Position[C]{p.X.Div(o.X), p.Y.Div(o.Y)} }
func (p Position[C]) Rem(o Position[C]) Position[C] { return Position[C]{p.X.Rem(o.X), p.Y.Rem(o.Y)} }

func (p Position[C]) AddScalar(c C) Position[C] { return Position[C]{p.X.Add(c), p.Y.Add(c)} }
func (p Position[C]) SubScalar(c C) Position[C] { return Position[C]{p.X.Sub(c), p.Y.Sub(c)} }
func (p Position[C]) MulScalar(c C) Position[C] { return Position[C]{p.X.Mul(c), p.Y.Mul(c)} }
func (p Position[C]) DivScalar(c C) Position[C] { return Position[C]{p.X.Div(c), p.Y.Div(c)} }
func (p Position[C]) RemScalar(c C) Position[C] { return Position[C]{p.X.Rem(c), p.Y.Rem(c)} }

// Vec returns p in the float interchange format.
func (p Position[C]) Vec() r2.Vec {
	return r2.Vec{X: float64(p.X.Float32()), Y: float64(p.Y.Float32())}
}

// DistanceTo returns the straight-line distance to o.
func (p Position[C]) DistanceTo(o Position[C]) float64 {
	return r2.Norm(o.Sub(p).Vec())
}

// RotationTo returns the rotation pointing from p to target.
func (p Position[C]) RotationTo(target Position[C]) (orientation.Rotation, error) {
	return OrientationBetween[orientation.Rotation](p, target)
}

// RotationFrom returns the rotation pointing from source to p.
func (p Position[C]) RotationFrom(source Position[C]) (orientation.Rotation, error) {
	return OrientationBetween[orientation.Rotation](source, p)
}

// DirectionTo returns the direction pointing from p to target.
func (p Position[C]) DirectionTo(target Position[C]) (orientation.Direction, error) {
	return orientation.DirectionFromVec(target.Sub(p).Vec())
}

// DirectionFrom returns the direction pointing from source to p.
func (p Position[C]) DirectionFrom(source Position[C]) (orientation.Direction, error) {
	return orientation.DirectionFromVec(p.Sub(source).Vec())
}

func (p Position[C]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// OrientationBetween returns the orientation of the displacement from one
// position to another. Coincident positions fail with
// orientation.ErrNearlySingular.
func OrientationBetween[O orientation.Oriented[O], C coord.Coordinate[C]](from, to Position[C]) (O, error) {
	return orientation.Between[O](r2.Vec{}, to.Sub(from).Vec())
}

// RotateTowardsPosition turns current, held by an entity at from, toward
// the position to by at most maxStep. When the positions coincide current
// is returned along with the error.
func RotateTowardsPosition[O orientation.Oriented[O], C coord.Coordinate[C]](current O, from, to Position[C], maxStep orientation.Rotation) (O, error) {
	target, err := OrientationBetween[O](from, to)
	if err != nil {
		return current, err
	}
	return orientation.RotateTowards(current, target, maxStep), nil
}
