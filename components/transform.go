package components

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/planar/coord"
)

// Transform is the host engine's 3D placement of an entity. The plane is
// z = 0 seen from +z; Translation.Z is depth and is never written by the
// spatial systems.
type Transform struct {
	Translation r3.Vec
	Rotation    quat.Number
	Scale       r3.Vec
}

// IdentityTransform returns a transform at the origin with no rotation and unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: quat.Number{Real: 1},
		Scale:    r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// WithDepth returns t moved to depth z.
func (t Transform) WithDepth(z float64) Transform {
	t.Translation.Z = z
	return t
}

// PlaceAt returns t with its x and y translation set. Depth is untouched.
func (t Transform) PlaceAt(x, y float32) Transform {
	t.Translation.X = float64(x)
	t.Translation.Y = float64(y)
	return t
}

// ToTransformXY returns p in transform units.
func ToTransformXY[C coord.Coordinate[C]](p Position[C]) (x, y float32) {
	s := p.X.Scale()
	return p.X.Float32() * s, p.Y.Float32() * s
}

// FromTransform reads the x and y translation of t back into a Position.
// It fails when either axis is out of range for C.
func FromTransform[C coord.Coordinate[C]](t Transform) (Position[C], error) {
	var zero C
	s := zero.Scale()
	if s == 0 {
		s = 1
	}
	return PositionFromVec[C](r2.Vec{
		X: float64(float32(t.Translation.X) / s),
		Y: float64(float32(t.Translation.Y) / s),
	})
}
