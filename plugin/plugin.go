// Package plugin installs the spatial systems into an ark world and runs them
// in a fixed order once per frame: kinematics, orientation sync, transform
// sync, then the change-flag reset.
package plugin

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
	"github.com/pthm-cable/planar/systems"
	"github.com/pthm-cable/planar/telemetry"
)

// ErrMissingComponent is returned by setters when the entity does not carry
// the component being written.
var ErrMissingComponent = errors.New("entity lacks component")

// Options configures a Plugin. Every field is optional.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	// Output receives one trace row per frame and, every
	// telemetry.perf_log_interval frames, a perf row.
	Output *telemetry.OutputManager
}

type stage struct {
	id  string
	run func(dt float32)
}

// Plugin owns the spatial systems for coordinate type C.
type Plugin[C coord.Coordinate[C]] struct {
	world    *ecs.World
	cfg      *config.Config
	logger   *zap.Logger
	registry *systems.SystemRegistry
	perf     *telemetry.PerfCollector
	output   *telemetry.OutputManager
	stages   []stage

	kinematics  *systems.KinematicsSystem[C]
	orientation *systems.OrientationSyncSystem
	transform   *systems.TransformSyncSystem[C]
	reset       *systems.ChangeResetSystem

	spawner     *ecs.Map9[components.Position[C], components.Velocity[C], components.Acceleration[C], orientation.Rotation, orientation.Direction, components.AngularVelocity, components.AngularAcceleration, components.Transform, components.Changes]
	positions   *ecs.Map[components.Position[C]]
	velocities  *ecs.Map[components.Velocity[C]]
	accels      *ecs.Map[components.Acceleration[C]]
	rotations   *ecs.Map[orientation.Rotation]
	directions  *ecs.Map[orientation.Direction]
	angularVels *ecs.Map[components.AngularVelocity]
	angularAccs *ecs.Map[components.AngularAcceleration]
	transforms  *ecs.Map[components.Transform]
	changes     *ecs.Map[components.Changes]

	// Enabled gates Update. A disabled plugin leaves the world untouched.
	Enabled bool

	clock           components.Time
	stats           systems.SyncStats
	kinematicsSkips int
}

// New installs the systems into w.
func New[C coord.Coordinate[C]](w *ecs.World, opts Options) *Plugin[C] {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tol := systems.SyncTolerance{
		Direction: cfg.Sync.DirectionTolerance,
		Planar:    cfg.Sync.PlanarTolerance,
	}

	p := &Plugin[C]{
		world:    w,
		cfg:      cfg,
		logger:   logger,
		registry: systems.NewSystemRegistry(),
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:   opts.Output,
		Enabled:  true,

		kinematics:  systems.NewKinematicsSystem[C](w, cfg.Derived.MaxDT32),
		orientation: systems.NewOrientationSyncSystem(w, tol, logger),
		transform:   systems.NewTransformSyncSystem[C](w, tol, logger),
		reset:       systems.NewChangeResetSystem(w),

		spawner: ecs.NewMap9[
			components.Position[C],
			components.Velocity[C],
			components.Acceleration[C],
			orientation.Rotation,
			orientation.Direction,
			components.AngularVelocity,
			components.AngularAcceleration,
			components.Transform,
			components.Changes,
		](w),
		positions:   ecs.NewMap[components.Position[C]](w),
		velocities:  ecs.NewMap[components.Velocity[C]](w),
		accels:      ecs.NewMap[components.Acceleration[C]](w),
		rotations:   ecs.NewMap[orientation.Rotation](w),
		directions:  ecs.NewMap[orientation.Direction](w),
		angularVels: ecs.NewMap[components.AngularVelocity](w),
		angularAccs: ecs.NewMap[components.AngularAcceleration](w),
		transforms:  ecs.NewMap[components.Transform](w),
		changes:     ecs.NewMap[components.Changes](w),
	}

	for _, id := range p.registry.IDs() {
		switch id {
		case systems.StageKinematics:
			p.stages = append(p.stages, stage{id, p.runKinematics})
		case systems.StageOrientation:
			p.stages = append(p.stages, stage{id, func(float32) { p.orientation.Update(p.world) }})
		case systems.StageTransform:
			p.stages = append(p.stages, stage{id, func(float32) { p.transform.Update(p.world) }})
		case systems.StageReset:
			p.stages = append(p.stages, stage{id, func(float32) { p.reset.Update(p.world) }})
		}
	}
	return p
}

func (p *Plugin[C]) runKinematics(dt float32) {
	p.kinematics.Skipped = 0
	if p.cfg.Kinematics.Enabled {
		p.kinematics.Update(p.world, dt)
	}
	p.kinematicsSkips = p.kinematics.Skipped
}

// Update advances the clock by dt seconds and runs every stage once.
func (p *Plugin[C]) Update(dt float32) {
	if !p.Enabled {
		return
	}
	p.clock.Advance(dt)

	p.perf.StartTick()
	for _, s := range p.stages {
		p.perf.StartPhase(s.id)
		s.run(dt)
		if s.id == systems.StageTransform {
			p.stats = p.orientation.Stats()
			p.stats.Add(p.transform.Stats())
		}
	}
	p.perf.EndTick()

	p.flushTelemetry()
}

func (p *Plugin[C]) flushTelemetry() {
	if p.stats.Skipped > 0 || p.kinematicsSkips > 0 {
		if ce := p.logger.Check(zap.DebugLevel, "frame skipped updates"); ce != nil {
			ce.Write(
				zap.Uint64("frame", p.clock.Frame),
				zap.Int("sync_skips", p.stats.Skipped),
				zap.Int("kinematics_skips", p.kinematicsSkips),
			)
		}
	}

	if p.output != nil {
		rec := telemetry.NewFrameRecord(p.clock.Frame, p.clock.Elapsed, p.kinematicsSkips, p.stats)
		if err := p.output.WriteFrame(rec); err != nil {
			p.logger.Error("failed to write trace", zap.Error(err))
		}
	}

	interval := uint64(p.cfg.Telemetry.PerfLogInterval)
	if interval == 0 || p.clock.Frame%interval != 0 {
		return
	}
	perfStats := p.perf.Stats()
	perfStats.LogStats(p.logger)
	if p.output != nil {
		if err := p.output.WritePerf(perfStats, p.clock.Frame); err != nil {
			p.logger.Error("failed to write perf", zap.Error(err))
		}
	}
}

// Spawn creates an entity from b with a matching host transform.
func (p *Plugin[C]) Spawn(b components.Bundle[C]) ecs.Entity {
	tf := b.Transform()
	return p.spawner.NewEntity(
		&b.Position, &b.Velocity, &b.Acceleration,
		&b.Rotation, &b.Direction,
		&b.AngularVelocity, &b.AngularAcceleration,
		&tf, &components.Changes{},
	)
}

// Attach prepares an entity built elsewhere for syncing. It adds an identity
// Transform and a change mask if missing, and marks every spatial component
// the entity already carries as changed so the next Update reconciles them.
func (p *Plugin[C]) Attach(e ecs.Entity) {
	if !p.transforms.Has(e) {
		tf := components.IdentityTransform()
		p.transforms.Add(e, &tf)
	}
	if !p.changes.Has(e) {
		p.changes.Add(e, &components.Changes{})
	}

	var f components.Field
	if p.positions.Has(e) {
		f |= components.FieldPosition
	}
	if p.rotations.Has(e) {
		f |= components.FieldRotation
	}
	if p.directions.Has(e) {
		f |= components.FieldDirection
	}
	p.changes.Get(e).Mark(f)
}

func set[T any](m *ecs.Map[T], changes *ecs.Map[components.Changes], e ecs.Entity, v T, f components.Field) error {
	if !m.Has(e) {
		return fmt.Errorf("%v: %w", f, ErrMissingComponent)
	}
	*m.Get(e) = v
	if changes.Has(e) {
		changes.Get(e).Mark(f)
	}
	return nil
}

// SetPosition writes a Position and flags it changed.
func (p *Plugin[C]) SetPosition(e ecs.Entity, v components.Position[C]) error {
	return set(p.positions, p.changes, e, v, components.FieldPosition)
}

// SetRotation writes a Rotation and flags it changed.
func (p *Plugin[C]) SetRotation(e ecs.Entity, v orientation.Rotation) error {
	return set(p.rotations, p.changes, e, v, components.FieldRotation)
}

// SetDirection writes a Direction and flags it changed.
func (p *Plugin[C]) SetDirection(e ecs.Entity, v orientation.Direction) error {
	return set(p.directions, p.changes, e, v, components.FieldDirection)
}

// SetTransform writes the host transform and flags it changed, the way a
// host system moving the entity would.
func (p *Plugin[C]) SetTransform(e ecs.Entity, v components.Transform) error {
	return set(p.transforms, p.changes, e, v, components.FieldTransform)
}

// SetVelocity writes a Velocity and flags it changed.
func (p *Plugin[C]) SetVelocity(e ecs.Entity, v components.Velocity[C]) error {
	return set(p.velocities, p.changes, e, v, components.FieldVelocity)
}

// SetAcceleration writes an Acceleration and flags it changed.
func (p *Plugin[C]) SetAcceleration(e ecs.Entity, v components.Acceleration[C]) error {
	return set(p.accels, p.changes, e, v, components.FieldAcceleration)
}

// SetAngularVelocity writes an AngularVelocity and flags it changed.
func (p *Plugin[C]) SetAngularVelocity(e ecs.Entity, v components.AngularVelocity) error {
	return set(p.angularVels, p.changes, e, v, components.FieldAngularVelocity)
}

// SetAngularAcceleration writes an AngularAcceleration and flags it changed.
func (p *Plugin[C]) SetAngularAcceleration(e ecs.Entity, v components.AngularAcceleration) error {
	return set(p.angularAccs, p.changes, e, v, components.FieldAngularAcceleration)
}

// Position returns the entity's Position, if any.
func (p *Plugin[C]) Position(e ecs.Entity) (components.Position[C], bool) {
	return get(p.positions, e)
}

// Rotation returns the entity's Rotation, if any.
func (p *Plugin[C]) Rotation(e ecs.Entity) (orientation.Rotation, bool) {
	return get(p.rotations, e)
}

// Direction returns the entity's Direction, if any.
func (p *Plugin[C]) Direction(e ecs.Entity) (orientation.Direction, bool) {
	return get(p.directions, e)
}

// Transform returns the entity's host transform, if any.
func (p *Plugin[C]) Transform(e ecs.Entity) (components.Transform, bool) {
	return get(p.transforms, e)
}

// Velocity returns the entity's Velocity, if any.
func (p *Plugin[C]) Velocity(e ecs.Entity) (components.Velocity[C], bool) {
	return get(p.velocities, e)
}

func get[T any](m *ecs.Map[T], e ecs.Entity) (T, bool) {
	if !m.Has(e) {
		var zero T
		return zero, false
	}
	return *m.Get(e), true
}

// World returns the world the plugin was installed into.
func (p *Plugin[C]) World() *ecs.World { return p.world }

// Clock returns the frame clock.
func (p *Plugin[C]) Clock() components.Time { return p.clock }

// Stats returns the sync counters from the last Update.
func (p *Plugin[C]) Stats() systems.SyncStats { return p.stats }

// KinematicsSkips returns the number of integration steps dropped in the
// last Update because a result was out of range.
func (p *Plugin[C]) KinematicsSkips() int { return p.kinematicsSkips }

// Perf returns the stage timing collector.
func (p *Plugin[C]) Perf() *telemetry.PerfCollector { return p.perf }

// Registry returns the stage registry.
func (p *Plugin[C]) Registry() *systems.SystemRegistry { return p.registry }
