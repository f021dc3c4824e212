package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

type pos = Position[coord.F32]

func TestPositionArithmetic(t *testing.T) {
	a := pos{X: 6, Y: -4}
	b := pos{X: 4, Y: 3}

	assert.Equal(t, pos{X: 10, Y: -1}, a.Add(b))
	assert.Equal(t, pos{X: 2, Y: -7}, a.Sub(b))
	assert.Equal(t, pos{X: 24, Y: -12}, a.Mul(b))
	assert.Equal(t, pos{X: 1.5, Y: -4.0 / 3}, a.Div(b))
	assert.Equal(t, pos{X: 2, Y: -1}, a.Rem(b))

	assert.Equal(t, pos{X: 8, Y: -2}, a.AddScalar(2))
	assert.Equal(t, pos{X: 4, Y: -6}, a.SubScalar(2))
	assert.Equal(t, pos{X: 12, Y: -8}, a.MulScalar(2))
	assert.Equal(t, pos{X: 3, Y: -2}, a.DivScalar(2))
	assert.Equal(t, pos{X: 0, Y: -1}, a.RemScalar(3))

	assert.InDelta(t, 5, pos{}.DistanceTo(pos{X: 3, Y: 4}), 1e-9)
	assert.Equal(t, "(6, -4)", a.String())
}

func TestOrientationToNorth(t *testing.T) {
	origin := pos{}
	north := pos{X: 0, Y: 1}

	r, err := origin.RotationTo(north)
	require.NoError(t, err)
	assert.Equal(t, orientation.North, r)

	d, err := origin.DirectionTo(north)
	require.NoError(t, err)
	assert.True(t, d.ApproxEqual(orientation.DirectionNorth, 1e-9))

	r, err = north.RotationFrom(origin)
	require.NoError(t, err)
	assert.Equal(t, orientation.North, r)

	d, err = origin.DirectionFrom(north)
	require.NoError(t, err)
	assert.True(t, d.ApproxEqual(orientation.DirectionSouth, 1e-9))

	r, err = OrientationBetween[orientation.Rotation](pos{X: 5, Y: 5}, pos{X: 6, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, orientation.East, r)
}

func TestOrientationOfCoincidentPositions(t *testing.T) {
	p := pos{X: 2, Y: 2}

	_, err := p.RotationTo(p)
	assert.True(t, errors.Is(err, orientation.ErrNearlySingular))

	_, err = p.DirectionFrom(p)
	assert.True(t, errors.Is(err, orientation.ErrNearlySingular))

	cur, err := RotateTowardsPosition(orientation.East, p, p, 100)
	assert.Error(t, err)
	assert.Equal(t, orientation.East, cur)
}

func TestRotateTowardsPosition(t *testing.T) {
	r, err := RotateTowardsPosition(orientation.North, pos{}, pos{X: 10}, 300)
	require.NoError(t, err)
	assert.Equal(t, orientation.NewRotation(300), r)

	r, err = RotateTowardsPosition(orientation.North, pos{}, pos{X: -10}, orientation.Unbounded)
	require.NoError(t, err)
	assert.Equal(t, orientation.West, r)
}

func TestPositionFromVec(t *testing.T) {
	p, err := PositionFromVec[coord.F32](r2.Vec{X: 1.5, Y: -2})
	require.NoError(t, err)
	assert.Equal(t, pos{X: 1.5, Y: -2}, p)
	assert.Equal(t, r2.Vec{X: 1.5, Y: -2}, p.Vec())
}

func TestAABBClamp(t *testing.T) {
	box := NewAABB[coord.F32](-1, 3, 0, 17)

	assert.Equal(t, pos{X: 3, Y: 17}, box.Clamp(pos{X: 42, Y: 42}))
	assert.Equal(t, box.TopRight(), box.Clamp(pos{X: 42, Y: 42}))
	assert.Equal(t, pos{X: -1, Y: 0}, box.Clamp(pos{X: -42, Y: -42}))
	assert.Equal(t, pos{X: 2, Y: 0}, box.Clamp(pos{X: 2, Y: -5}))
	assert.Equal(t, pos{X: 1, Y: 1}, box.Clamp(pos{X: 1, Y: 1}))
}

func TestAABBConstruction(t *testing.T) {
	_, err := TryNewAABB[coord.F32](3, -1, 0, 17)
	assert.True(t, errors.Is(err, ErrInvertedBounds))

	_, err = TryNewAABB[coord.F32](-1, 3, 17, 0)
	assert.True(t, errors.Is(err, ErrInvertedBounds))

	assert.Panics(t, func() { NewAABB[coord.F32](1, 0, 0, 1) })

	box := AABBFromSize(pos{X: 1, Y: 2}, 3, 4)
	assert.Equal(t, NewAABB[coord.F32](-2, 4, -2, 6), box)
	assert.Equal(t, coord.F32(6), box.Width())
	assert.Equal(t, coord.F32(8), box.Height())
}

func TestAABBDrawAround(t *testing.T) {
	points := []pos{{X: 0, Y: 0}, {X: -1, Y: 1}, {X: 3, Y: 4}, {X: -1, Y: 17}}
	box, ok := DrawAround(points...)
	require.True(t, ok)
	assert.Equal(t, NewAABB[coord.F32](-1, 3, 0, 17), box)
	for _, p := range points {
		assert.True(t, box.Contains(p), "%v", p)
	}

	// The box is not anchored at the origin.
	box, ok = DrawAround(pos{X: 5, Y: 5}, pos{X: 7, Y: 9})
	require.True(t, ok)
	assert.Equal(t, NewAABB[coord.F32](5, 7, 5, 9), box)

	_, ok = DrawAround[coord.F32]()
	assert.False(t, ok)
}

func TestAABBContainsAndIntersects(t *testing.T) {
	box := NewAABB[coord.F32](0, 10, 0, 5)

	assert.True(t, box.Contains(pos{X: 10, Y: 5}))
	assert.False(t, box.Contains(pos{X: 5, Y: 6}))
	assert.False(t, box.Contains(pos{X: 11, Y: 1}))

	assert.True(t, box.Intersects(NewAABB[coord.F32](9, 20, 4, 8)))
	assert.True(t, box.Intersects(NewAABB[coord.F32](2, 3, 1, 2)), "contained")
	assert.True(t, box.Intersects(NewAABB[coord.F32](10, 12, 5, 6)), "touching corner")
	assert.False(t, box.Intersects(NewAABB[coord.F32](0, 10, 6, 9)))
	assert.False(t, box.Intersects(NewAABB[coord.F32](-5, -1, 0, 5)))
}

func TestAABBVertexes(t *testing.T) {
	box := NewAABB[coord.F32](-1, 3, 0, 17)
	assert.Equal(t, [4]pos{{X: 3, Y: 17}, {X: 3, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 17}}, box.Vertexes())
}

func TestVelocity(t *testing.T) {
	v := Velocity[coord.F32]{X: 3, Y: 4}
	assert.InDelta(t, 5, v.Magnitude(), 1e-9)

	d, err := v.Direction()
	require.NoError(t, err)
	assert.True(t, d.ApproxEqual(orientation.NewDirection(3, 4), 1e-9))

	_, err = Velocity[coord.F32]{}.Direction()
	assert.True(t, errors.Is(err, orientation.ErrNearlySingular))

	v, err = NewVelocity[coord.F32](2, orientation.DirectionWest)
	require.NoError(t, err)
	assert.Equal(t, Velocity[coord.F32]{X: -2, Y: 0}, v)

	a, err := NewAcceleration[coord.F64](10, orientation.DirectionNorth)
	require.NoError(t, err)
	assert.InDelta(t, 10, a.Magnitude(), 1e-6)
	_, err = Acceleration[coord.F64]{}.Direction()
	assert.Error(t, err)
}

func TestAngularVelocityStepCarriesRemainder(t *testing.T) {
	w := AngularVelocity{Rate: 10}
	var total int64
	for i := 0; i < 60; i++ {
		total += w.Step(1.0 / 60)
	}
	assert.InDelta(t, 10, float64(total), 1)

	w = AngularVelocity{Rate: -900}
	assert.Equal(t, int64(-450), w.Step(0.5))

	spin, ok := w.Spin()
	assert.True(t, ok)
	assert.Equal(t, orientation.CounterClockwise, spin)
	_, ok = AngularVelocity{}.Spin()
	assert.False(t, ok)
}

func TestChanges(t *testing.T) {
	var c Changes
	assert.False(t, c.Has(FieldPosition))

	c.Mark(FieldPosition)
	c.Stage()
	c.Mark(FieldTransform)

	assert.True(t, c.Has(FieldTransform))
	assert.True(t, c.Staged(FieldPosition))
	assert.False(t, c.Staged(FieldTransform))
	assert.Equal(t, "position|transform", c.Fields.String())

	c.Reset()
	assert.False(t, c.Has(FieldPosition|FieldTransform))
	assert.Equal(t, "none", c.Fields.String())
}

func TestTimeAdvance(t *testing.T) {
	var tm Time
	tm.Advance(0.5)
	tm.Advance(0.25)
	assert.Equal(t, float32(0.25), tm.Delta)
	assert.InDelta(t, 0.75, tm.Elapsed, 1e-9)
	assert.Equal(t, uint64(2), tm.Frame)
}

func TestBundleTransform(t *testing.T) {
	b := NewBundle(pos{X: 3, Y: -2}).Facing(orientation.East)
	assert.Equal(t, orientation.DirectionEast, b.Direction)

	tf := b.Transform()
	assert.Equal(t, r3.Vec{X: 3, Y: -2}, tf.Translation)
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, tf.Scale)
	assert.True(t, orientation.QuatApproxEqual(orientation.East.Quat(), tf.Rotation, 1e-12))

	back, err := FromTransform[coord.F32](tf.WithDepth(7))
	require.NoError(t, err)
	assert.Equal(t, b.Position, back)
	assert.Equal(t, quat.Number{Real: 1}, IdentityTransform().Rotation)
}

func TestAABBCenter(t *testing.T) {
	box := NewAABB[coord.F32](-600, 600, -320, 200)
	assert.Equal(t, Position[coord.F32]{X: 0, Y: -60}, box.Center())
}
