package components

import (
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

// Bundle is the usual set of spatial components for a moving entity.
type Bundle[C coord.Coordinate[C]] struct {
	Position            Position[C]
	Velocity            Velocity[C]
	Acceleration        Acceleration[C]
	Rotation            orientation.Rotation
	Direction           orientation.Direction
	AngularVelocity     AngularVelocity
	AngularAcceleration AngularAcceleration
}

// NewBundle returns a bundle at p facing north and at rest.
func NewBundle[C coord.Coordinate[C]](p Position[C]) Bundle[C] {
	return Bundle[C]{
		Position:  p,
		Rotation:  orientation.North,
		Direction: orientation.DirectionNorth,
	}
}

// Facing returns b turned to r, with Direction kept consistent.
func (b Bundle[C]) Facing(r orientation.Rotation) Bundle[C] {
	b.Rotation = r
	b.Direction = r.AsDirection()
	return b
}

// Transform returns the host transform matching b's position and rotation.
func (b Bundle[C]) Transform() Transform {
	t := IdentityTransform().PlaceAt(ToTransformXY(b.Position))
	t.Rotation = b.Rotation.Quat()
	return t
}
