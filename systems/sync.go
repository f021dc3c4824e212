package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/quat"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

// SyncStats counts the writes made by the sync systems in one frame.
type SyncStats struct {
	DirectionWrites int // Direction recomputed from Rotation
	RotationWrites  int // Rotation recomputed from Direction

	RotationPushes  int // Rotation written into the transform
	DirectionPushes int // Direction written into the transform
	PositionPushes  int // Position written into the transform
	RotationPulls   int // transform rotation read back into Rotation
	DirectionPulls  int // transform rotation read back into Direction
	PositionPulls   int // transform translation read back into Position

	Skipped int // fields left alone because a conversion failed
}

// Writes returns the total number of component writes.
func (s SyncStats) Writes() int {
	return s.DirectionWrites + s.RotationWrites +
		s.RotationPushes + s.DirectionPushes + s.PositionPushes +
		s.RotationPulls + s.DirectionPulls + s.PositionPulls
}

// Add accumulates o into s.
func (s *SyncStats) Add(o SyncStats) {
	s.DirectionWrites += o.DirectionWrites
	s.RotationWrites += o.RotationWrites
	s.RotationPushes += o.RotationPushes
	s.DirectionPushes += o.DirectionPushes
	s.PositionPushes += o.PositionPushes
	s.RotationPulls += o.RotationPulls
	s.DirectionPulls += o.DirectionPulls
	s.PositionPulls += o.PositionPulls
	s.Skipped += o.Skipped
}

// SyncTolerance bounds what counts as "unchanged" when comparing float
// representations.
type SyncTolerance struct {
	Direction float64 // per-component difference between unit vectors
	Planar    float64 // largest x or y quaternion part still considered in-plane
}

// DefaultSyncTolerance is used when a zero SyncTolerance is supplied.
var DefaultSyncTolerance = SyncTolerance{Direction: 1e-9, Planar: 1e-9}

func (t SyncTolerance) orDefault() SyncTolerance {
	if t.Direction <= 0 {
		t.Direction = DefaultSyncTolerance.Direction
	}
	if t.Planar <= 0 {
		t.Planar = DefaultSyncTolerance.Planar
	}
	return t
}

// OrientationSyncSystem keeps Rotation and Direction in agreement. When both
// changed in the same frame Rotation wins.
type OrientationSyncSystem struct {
	filter ecs.Filter3[orientation.Rotation, orientation.Direction, components.Changes]
	tol    SyncTolerance
	logger *zap.Logger
	stats  SyncStats
}

// NewOrientationSyncSystem creates the Rotation/Direction sync system.
func NewOrientationSyncSystem(w *ecs.World, tol SyncTolerance, logger *zap.Logger) *OrientationSyncSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrientationSyncSystem{
		filter: *ecs.NewFilter3[orientation.Rotation, orientation.Direction, components.Changes](w),
		tol:    tol.orDefault(),
		logger: logger,
	}
}

// Update reconciles every entity carrying both Rotation and Direction.
func (s *OrientationSyncSystem) Update(w *ecs.World) {
	s.stats = SyncStats{}
	query := s.filter.Query()
	for query.Next() {
		rot, dir, changes := query.Get()
		switch {
		case changes.Has(components.FieldRotation):
			if d := rot.AsDirection(); !d.ApproxEqual(*dir, s.tol.Direction) {
				*dir = d
				changes.Mark(components.FieldDirection)
				s.stats.DirectionWrites++
			}
		case changes.Has(components.FieldDirection):
			if !dir.IsValid() {
				s.stats.Skipped++
				if ce := s.logger.Check(zap.DebugLevel, "direction has no rotation"); ce != nil {
					ce.Write(zap.Any("entity", query.Entity()), zap.Stringer("direction", *dir))
				}
				continue
			}
			if r := dir.AsRotation(); r != *rot {
				*rot = r
				changes.Mark(components.FieldRotation)
				s.stats.RotationWrites++
			}
		}
	}
}

// Stats returns the counts from the last Update.
func (s *OrientationSyncSystem) Stats() SyncStats { return s.stats }

// TransformSyncSystem reconciles Rotation, Direction and Position with the
// host Transform. Each field is handled on its own: if the domain component
// changed it is pushed into the transform, otherwise if the transform
// changed it is pulled back. Every write is skipped when the target already
// holds the value, so a second run in the same frame writes nothing.
type TransformSyncSystem[C coord.Coordinate[C]] struct {
	changes    ecs.Filter1[components.Changes]
	rotations  ecs.Filter3[orientation.Rotation, components.Transform, components.Changes]
	directions ecs.Filter3[orientation.Direction, components.Transform, components.Changes]
	positions  ecs.Filter3[components.Position[C], components.Transform, components.Changes]
	tol        SyncTolerance
	logger     *zap.Logger
	stats      SyncStats
}

// NewTransformSyncSystem creates the transform sync system for coordinate type C.
func NewTransformSyncSystem[C coord.Coordinate[C]](w *ecs.World, tol SyncTolerance, logger *zap.Logger) *TransformSyncSystem[C] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransformSyncSystem[C]{
		changes:    *ecs.NewFilter1[components.Changes](w),
		rotations:  *ecs.NewFilter3[orientation.Rotation, components.Transform, components.Changes](w),
		directions: *ecs.NewFilter3[orientation.Direction, components.Transform, components.Changes](w),
		positions:  *ecs.NewFilter3[components.Position[C], components.Transform, components.Changes](w),
		tol:        tol.orDefault(),
		logger:     logger,
	}
}

// Update runs the three per-field rules. Decisions are made against the
// change flags as they stood on entry, so a push into the transform does
// not trigger a pull of another field.
func (s *TransformSyncSystem[C]) Update(w *ecs.World) {
	s.stats = SyncStats{}

	cq := s.changes.Query()
	for cq.Next() {
		cq.Get().Stage()
	}

	rq := s.rotations.Query()
	for rq.Next() {
		rot, tf, changes := rq.Get()
		s.syncRotation(rq.Entity(), rot, tf, changes)
	}

	dq := s.directions.Query()
	for dq.Next() {
		dir, tf, changes := dq.Get()
		s.syncDirection(dq.Entity(), dir, tf, changes)
	}

	pq := s.positions.Query()
	for pq.Next() {
		pos, tf, changes := pq.Get()
		s.syncPosition(pq.Entity(), pos, tf, changes)
	}
}

// Stats returns the counts from the last Update.
func (s *TransformSyncSystem[C]) Stats() SyncStats { return s.stats }

func (s *TransformSyncSystem[C]) syncRotation(e ecs.Entity, rot *orientation.Rotation, tf *components.Transform, changes *components.Changes) {
	switch {
	case changes.Staged(components.FieldRotation):
		current, err := orientation.RotationFromQuat(tf.Rotation)
		if err == nil && current == *rot && s.planar(tf.Rotation) {
			return
		}
		tf.Rotation = rot.Quat()
		changes.Mark(components.FieldTransform)
		s.stats.RotationPushes++
	case changes.Staged(components.FieldTransform):
		r, err := orientation.RotationFromQuat(tf.Rotation)
		if err != nil {
			s.skip(e, "rotation", err)
			return
		}
		if r != *rot {
			*rot = r
			changes.Mark(components.FieldRotation)
			s.stats.RotationPulls++
		}
	}
}

func (s *TransformSyncSystem[C]) syncDirection(e ecs.Entity, dir *orientation.Direction, tf *components.Transform, changes *components.Changes) {
	switch {
	case changes.Staged(components.FieldDirection):
		if !dir.IsValid() {
			s.skip(e, "direction", orientation.ErrNearlySingular)
			return
		}
		current, err := orientation.DirectionFromQuat(tf.Rotation)
		if err == nil && current.ApproxEqual(*dir, s.tol.Direction) && s.planar(tf.Rotation) {
			return
		}
		tf.Rotation = dir.Quat()
		changes.Mark(components.FieldTransform)
		s.stats.DirectionPushes++
	case changes.Staged(components.FieldTransform):
		d, err := orientation.DirectionFromQuat(tf.Rotation)
		if err != nil {
			s.skip(e, "direction", err)
			return
		}
		if !d.ApproxEqual(*dir, s.tol.Direction) {
			*dir = d
			changes.Mark(components.FieldDirection)
			s.stats.DirectionPulls++
		}
	}
}

func (s *TransformSyncSystem[C]) syncPosition(e ecs.Entity, pos *components.Position[C], tf *components.Transform, changes *components.Changes) {
	switch {
	case changes.Staged(components.FieldPosition):
		x, y := components.ToTransformXY(*pos)
		if tf.Translation.X == float64(x) && tf.Translation.Y == float64(y) {
			return
		}
		*tf = tf.PlaceAt(x, y)
		changes.Mark(components.FieldTransform)
		s.stats.PositionPushes++
	case changes.Staged(components.FieldTransform):
		// The flag covers the whole transform; an untouched translation
		// must not round a wider Position through float32
		x, y := components.ToTransformXY(*pos)
		if tf.Translation.X == float64(x) && tf.Translation.Y == float64(y) {
			return
		}
		p, err := components.FromTransform[C](*tf)
		if err != nil {
			s.skip(e, "position", err)
			return
		}
		if p != *pos {
			*pos = p
			changes.Mark(components.FieldPosition)
			s.stats.PositionPulls++
		}
	}
}

// planar reports whether q rotates only about the z axis.
func (s *TransformSyncSystem[C]) planar(q quat.Number) bool {
	n := quat.Abs(q)
	if n == 0 {
		return false
	}
	return math.Abs(q.Imag/n) <= s.tol.Planar && math.Abs(q.Jmag/n) <= s.tol.Planar
}

func (s *TransformSyncSystem[C]) skip(e ecs.Entity, field string, err error) {
	s.stats.Skipped++
	if ce := s.logger.Check(zap.DebugLevel, "transform sync skipped field"); ce != nil {
		ce.Write(zap.Any("entity", e), zap.String("field", field), zap.Error(err))
	}
}

// ChangeResetSystem clears every change mask at the end of a frame.
type ChangeResetSystem struct {
	filter ecs.Filter1[components.Changes]
}

// NewChangeResetSystem creates the reset system.
func NewChangeResetSystem(w *ecs.World) *ChangeResetSystem {
	return &ChangeResetSystem{filter: *ecs.NewFilter1[components.Changes](w)}
}

// Update resets all change masks.
func (s *ChangeResetSystem) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		query.Get().Reset()
	}
}
