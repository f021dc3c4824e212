// Package systems contains the ECS systems that integrate motion and keep
// the spatial components consistent with each other and the host transform.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

// KinematicsSystem integrates acceleration into velocity and velocity into
// position with explicit Euler steps, for both the linear and angular pairs.
type KinematicsSystem[C coord.Coordinate[C]] struct {
	linear  ecs.Filter4[components.Position[C], components.Velocity[C], components.Acceleration[C], components.Changes]
	angular ecs.Filter4[orientation.Rotation, components.AngularVelocity, components.AngularAcceleration, components.Changes]
	maxDT   float32

	// Skipped counts integration steps dropped because a result was out of
	// range for C.
	Skipped int
}

// NewKinematicsSystem creates a kinematics system. Frame times above maxDT
// are clamped to it; zero disables the clamp.
func NewKinematicsSystem[C coord.Coordinate[C]](w *ecs.World, maxDT float32) *KinematicsSystem[C] {
	return &KinematicsSystem[C]{
		linear:  *ecs.NewFilter4[components.Position[C], components.Velocity[C], components.Acceleration[C], components.Changes](w),
		angular: *ecs.NewFilter4[orientation.Rotation, components.AngularVelocity, components.AngularAcceleration, components.Changes](w),
		maxDT:   maxDT,
	}
}

// Update advances every moving entity by dt seconds.
func (s *KinematicsSystem[C]) Update(w *ecs.World, dt float32) {
	if dt <= 0 {
		return
	}
	if s.maxDT > 0 && dt > s.maxDT {
		dt = s.maxDT
	}

	query := s.linear.Query()
	for query.Next() {
		pos, vel, acc, changes := query.Get()
		s.integrateLinear(pos, vel, acc, changes, dt)
	}

	aquery := s.angular.Query()
	for aquery.Next() {
		rot, angVel, angAcc, changes := aquery.Get()
		integrateAngular(rot, angVel, angAcc, changes, dt)
	}
}

func (s *KinematicsSystem[C]) integrateLinear(pos *components.Position[C], vel *components.Velocity[C], acc *components.Acceleration[C], changes *components.Changes, dt float32) {
	if *acc != (components.Acceleration[C]{}) {
		vx, errX := coord.FromFloat32[C](vel.X.Float32() + acc.X.Float32()*dt)
		vy, errY := coord.FromFloat32[C](vel.Y.Float32() + acc.Y.Float32()*dt)
		if errX != nil || errY != nil {
			s.Skipped++
		} else if next := (components.Velocity[C]{X: vx, Y: vy}); next != *vel {
			*vel = next
			changes.Mark(components.FieldVelocity)
		}
	}

	if *vel == (components.Velocity[C]{}) {
		return
	}
	px, errX := coord.FromFloat32[C](pos.X.Float32() + vel.X.Float32()*dt)
	py, errY := coord.FromFloat32[C](pos.Y.Float32() + vel.Y.Float32()*dt)
	if errX != nil || errY != nil {
		s.Skipped++
		return
	}
	if next := (components.Position[C]{X: px, Y: py}); next != *pos {
		*pos = next
		changes.Mark(components.FieldPosition)
	}
}

func integrateAngular(rot *orientation.Rotation, w *components.AngularVelocity, a *components.AngularAcceleration, changes *components.Changes, dt float32) {
	if a.Rate != 0 {
		w.Rate += a.Rate * dt
		changes.Mark(components.FieldAngularVelocity)
	}
	if steps := w.Step(dt); steps != 0 {
		if next := rot.Rotate(steps); next != *rot {
			*rot = next
			changes.Mark(components.FieldRotation)
		}
	}
}
