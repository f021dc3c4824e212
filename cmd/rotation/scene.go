package main

import (
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
	"github.com/pthm-cable/planar/partition"
	"github.com/pthm-cable/planar/plugin"
	"github.com/pthm-cable/planar/telemetry"
)

type point = components.Position[coord.F32]

// Input is one frame of player controls. Both axes run from -1 to 1;
// positive Turn is clockwise.
type Input struct {
	Thrust float32
	Turn   float32
}

// Ship is what the renderer needs to draw one entity.
type Ship struct {
	Name    string
	Pos     point
	Heading orientation.Rotation
}

// Scene is a player ship and two enemies that track it: one snaps to the
// nearest compass octant, the other turns toward it at a bounded rate.
type Scene struct {
	plugin *plugin.Plugin[coord.F32]
	area   components.AABB[coord.F32]
	logger *zap.Logger

	player  ecs.Entity
	snapper ecs.Entity
	chaser  ecs.Entity

	// Tunable from the sliders
	PlayerSpeed    float64 // world units per second
	PlayerTurnRate float64 // degrees per second
	EnemyTurnRate  float64 // degrees per second

	turnRate float32 // deci-degrees per second last given to the player
}

// NewScene spawns the three ships into a fresh world.
func NewScene(cfg *config.Config, logger *zap.Logger, out *telemetry.OutputManager) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	demo := cfg.Demo
	hw := coord.F32(demo.PlayArea.HalfWidth)
	hh := coord.F32(demo.PlayArea.HalfHeight)

	p := plugin.New[coord.F32](ecs.NewWorld(), plugin.Options{Config: cfg, Logger: logger, Output: out})
	s := &Scene{
		plugin:         p,
		area:           components.NewAABB(-hw, hw, -hh, hh),
		logger:         logger,
		PlayerSpeed:    demo.PlayerSpeed,
		PlayerTurnRate: demo.PlayerTurnRate,
		EnemyTurnRate:  demo.EnemyTurnRate,
	}
	s.player = p.Spawn(components.NewBundle(point{}))
	s.snapper = p.Spawn(components.NewBundle(point{X: -hw / 2, Y: hh / 2}).Facing(orientation.South))
	s.chaser = p.Spawn(components.NewBundle(point{X: hw / 2, Y: -hh / 2}).Facing(orientation.North))
	return s
}

// Step applies input, aims the enemies and runs one frame of the pipeline.
func (s *Scene) Step(in Input, dt float32) {
	s.steerPlayer(in)
	s.aimEnemies(dt)
	s.plugin.Update(dt)
}

func (s *Scene) steerPlayer(in Input) {
	p := s.plugin
	// Rewriting the rate every frame would drop the sub-step carry
	if rate := float32(s.PlayerTurnRate*10) * in.Turn; rate != s.turnRate {
		if err := p.SetAngularVelocity(s.player, components.AngularVelocity{Rate: rate}); err != nil {
			s.logger.Warn("player turn", zap.Error(err))
		}
		s.turnRate = rate
	}

	pos, _ := p.Position(s.player)
	heading, _ := p.Direction(s.player)
	vel, err := components.NewVelocity[coord.F32](s.PlayerSpeed*float64(in.Thrust), heading)
	if err != nil {
		s.logger.Warn("player velocity", zap.Error(err))
		return
	}

	// Keep the ship inside the play area and stop it pushing into a wall
	clamped := s.area.Clamp(pos)
	if clamped != pos {
		if err := p.SetPosition(s.player, clamped); err != nil {
			s.logger.Warn("player clamp", zap.Error(err))
		}
	}
	if (clamped.X <= s.area.Left && vel.X < 0) || (clamped.X >= s.area.Right && vel.X > 0) {
		vel.X = 0
	}
	if (clamped.Y <= s.area.Bottom && vel.Y < 0) || (clamped.Y >= s.area.Top && vel.Y > 0) {
		vel.Y = 0
	}
	if err := p.SetVelocity(s.player, vel); err != nil {
		s.logger.Warn("player velocity", zap.Error(err))
	}
}

func (s *Scene) aimEnemies(dt float32) {
	p := s.plugin
	target, _ := p.Position(s.player)

	from, _ := p.Position(s.snapper)
	if r, err := from.RotationTo(target); err == nil {
		snapped := partition.SnapRotation[partition.CardinalOctant](r)
		if cur, _ := p.Rotation(s.snapper); cur != snapped {
			if err := p.SetRotation(s.snapper, snapped); err != nil {
				s.logger.Warn("snapper aim", zap.Error(err))
			}
		}
	}

	from, _ = p.Position(s.chaser)
	cur, _ := p.Rotation(s.chaser)
	maxStep := orientation.FromDegrees(s.EnemyTurnRate * float64(dt))
	next, err := components.RotateTowardsPosition(cur, from, target, maxStep)
	if err == nil && next != cur {
		if err := p.SetRotation(s.chaser, next); err != nil {
			s.logger.Warn("chaser aim", zap.Error(err))
		}
	}
}

// Ships reads each ship back from its host transform, the way a renderer
// attached to the host engine would see it.
func (s *Scene) Ships() []Ship {
	names := [...]string{"player", "snapper", "chaser"}
	out := make([]Ship, 0, len(names))
	for i, e := range [...]ecs.Entity{s.player, s.snapper, s.chaser} {
		tf, ok := s.plugin.Transform(e)
		if !ok {
			continue
		}
		pos, err := components.FromTransform[coord.F32](tf)
		if err != nil {
			continue
		}
		heading, err := orientation.RotationFromQuat(tf.Rotation)
		if err != nil {
			continue
		}
		out = append(out, Ship{Name: names[i], Pos: pos, Heading: heading})
	}
	return out
}

// Area returns the play area.
func (s *Scene) Area() components.AABB[coord.F32] { return s.area }

// Plugin returns the spatial plugin driving the scene.
func (s *Scene) Plugin() *plugin.Plugin[coord.F32] { return s.plugin }
