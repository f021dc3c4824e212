package orientation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quat returns the host rotation for r: a pure rotation about the z axis.
func (r Rotation) Quat() quat.Number {
	return zQuat(r.Radians())
}

// Quat returns the host rotation for d, without quantizing to deci-degrees.
func (d Direction) Quat() quat.Number {
	return zQuat(math.Atan2(d.v.X, d.v.Y))
}

func zQuat(theta float64) quat.Number {
	s, c := math.Sincos(theta / 2)
	return quat.Number{Real: c, Kmag: s}
}

// DirectionFromQuat projects the forward (+y) axis of the inverse of q onto
// the plane. Any rotation out of the plane is discarded. A zero quaternion,
// or one that turns forward onto the z axis, fails with ErrNearlySingular.
func DirectionFromQuat(q quat.Number) (Direction, error) {
	n := quat.Abs(q)
	if n < singularEpsilon || math.IsNaN(n) || math.IsInf(n, 0) {
		return Direction{}, fmt.Errorf("quaternion %v: %w", q, ErrNearlySingular)
	}
	q = quat.Scale(1/n, q)
	v := rotate(quat.Conj(q), r3.Vec{Y: 1})
	return DirectionFromVec(r2.Vec{X: v.X, Y: v.Y})
}

// RotationFromQuat is DirectionFromQuat followed by AsRotation.
func RotationFromQuat(q quat.Number) (Rotation, error) {
	d, err := DirectionFromQuat(q)
	if err != nil {
		return North, err
	}
	return d.AsRotation(), nil
}

// rotate applies the unit quaternion q to v.
func rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	p = quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// QuatApproxEqual reports whether a and b describe the same rotation to
// within tol. q and -q are the same rotation.
func QuatApproxEqual(a, b quat.Number, tol float64) bool {
	return quat.Abs(quat.Sub(a, b)) <= tol || quat.Abs(quat.Add(a, b)) <= tol
}
