// Package partition snaps continuous orientations onto fixed sets of compass
// points.
package partition

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planar/orientation"
)

// Partition constrains an enumerated set of named orientations. Members
// ignores its receiver and lists every value in clockwise order from the
// member nearest north.
type Partition[P any] interface {
	comparable
	orientation.Orientation
	Members() []P
}

// Members lists every value of P.
func Members[P Partition[P]]() []P {
	var zero P
	return zero.Members()
}

// Snap returns the member of P nearest to o. Ties go to the member listed first.
func Snap[P Partition[P]](o orientation.Orientation) P {
	members := Members[P]()
	best := members[0]
	bestDist := orientation.Distance(best, o)
	for _, m := range members[1:] {
		if d := orientation.Distance(m, o); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

// SnapRotation snaps r and returns the member's rotation.
func SnapRotation[P Partition[P]](r orientation.Rotation) orientation.Rotation {
	return Snap[P](r).AsRotation()
}

// SnapDirection snaps d and returns the member's direction.
func SnapDirection[P Partition[P]](d orientation.Direction) orientation.Direction {
	return Snap[P](d).AsDirection()
}

// SnapVec redirects v onto the nearest member of P, keeping its length.
// A vector too short to have a direction snaps to zero.
func SnapVec[P Partition[P]](v r2.Vec) r2.Vec {
	d, err := orientation.DirectionFromVec(v)
	if err != nil {
		return r2.Vec{}
	}
	return Snap[P](d).AsDirection().Scale(r2.Norm(v))
}

// Rotations lists the rotation of every member of P.
func Rotations[P Partition[P]]() []orientation.Rotation {
	members := Members[P]()
	out := make([]orientation.Rotation, len(members))
	for i, m := range members {
		out[i] = m.AsRotation()
	}
	return out
}

// Directions lists the direction of every member of P.
func Directions[P Partition[P]]() []orientation.Direction {
	members := Members[P]()
	out := make([]orientation.Direction, len(members))
	for i, m := range members {
		out[i] = m.AsDirection()
	}
	return out
}
