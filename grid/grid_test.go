package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

func TestOrthogonalNeighbors(t *testing.T) {
	got := Neighbors(components.Position[Orthogonal]{})
	want := []components.Position[Orthogonal]{
		{X: 0, Y: 1},  // north
		{X: 1, Y: 0},  // east
		{X: 0, Y: -1}, // south
		{X: -1, Y: 0}, // west
	}
	assert.Equal(t, want, got)

	dirs := NeighborDirections[Orthogonal]()
	require.Len(t, dirs, 4)
	assert.Equal(t, orientation.DirectionNorth, dirs[0])
	assert.Equal(t, orientation.DirectionEast, dirs[1])
	assert.Equal(t, orientation.DirectionSouth, dirs[2])
	assert.Equal(t, orientation.DirectionWest, dirs[3])
}

// neighborsMatchDirections checks that each listed direction is the exact
// bearing of its offset, and that each partition member is the nearest one.
func neighborsMatchDirections[C Discrete[C]](t *testing.T, name string, count int) {
	t.Helper()
	var origin components.Position[C]
	neighbors := Neighbors(origin)
	dirs := NeighborDirections[C]()
	rotations := origin.X.NeighborRotations()
	require.Len(t, neighbors, count, name)
	require.Len(t, dirs, count, name)
	require.Len(t, rotations, count, name)

	seen := map[components.Position[C]]bool{}
	for i, n := range neighbors {
		assert.False(t, seen[n], "%s: duplicate neighbor %v", name, n)
		seen[n] = true

		d, err := origin.DirectionTo(n)
		require.NoError(t, err)
		assert.True(t, orientation.ApproxEqual(d, dirs[i]),
			"%s neighbor %d: offset %v points %v, listed as %v", name, i, n, d.AsRotation(), dirs[i].AsRotation())

		// Hex offsets are skewed, so the partition member is only the closest one
		for j, r := range rotations {
			if j != i {
				assert.Less(t, orientation.Distance(d, rotations[i]), orientation.Distance(d, r),
					"%s neighbor %d: offset %v is nearer %v than %v", name, i, n, r, rotations[i])
			}
		}
		if i > 0 {
			assert.Greater(t, dirs[i].AsRotation(), dirs[i-1].AsRotation(), "%s: not clockwise at %d", name, i)
		}
	}
}

func TestHexDirectionsFollowOffsets(t *testing.T) {
	dirs := NeighborDirections[FlatHex]()
	require.Len(t, dirs, 6)
	assert.Equal(t, orientation.Rotation(450), dirs[1].AsRotation())
	assert.Equal(t, orientation.Rotation(1350), dirs[2].AsRotation())

	dirs = NeighborDirections[PointyHex]()
	require.Len(t, dirs, 6)
	assert.Equal(t, orientation.NorthEast, dirs[0].AsRotation())
	assert.Equal(t, orientation.East, dirs[1].AsRotation())
}

func TestNeighborOrder(t *testing.T) {
	neighborsMatchDirections[Orthogonal](t, "Orthogonal", 4)
	neighborsMatchDirections[Adjacent](t, "Adjacent", 8)
	neighborsMatchDirections[FlatHex](t, "FlatHex", 6)
	neighborsMatchDirections[PointyHex](t, "PointyHex", 6)
}

func TestNeighborsAreRelative(t *testing.T) {
	p := components.Position[Adjacent]{X: 10, Y: -3}
	got := Neighbors(p)
	assert.Equal(t, components.Position[Adjacent]{X: 10, Y: -2}, got[0])
	assert.Equal(t, components.Position[Adjacent]{X: 9, Y: -2}, got[7])
}

func TestValuesDistinctAtExtremes(t *testing.T) {
	require.NoError(t, AssertValuesDistinct[Orthogonal]())
	require.NoError(t, AssertValuesDistinct[Adjacent]())
	require.NoError(t, AssertValuesDistinct[FlatHex]())
	require.NoError(t, AssertValuesDistinct[PointyHex]())
}

func TestBoundsOkay(t *testing.T) {
	require.NoError(t, coord.AssertBoundsOkay[Orthogonal]())
	require.NoError(t, coord.AssertBoundsOkay[Adjacent]())
	require.NoError(t, coord.AssertBoundsOkay[FlatHex]())
	require.NoError(t, coord.AssertBoundsOkay[PointyHex]())
}

func TestRoundTripExactAcrossRange(t *testing.T) {
	for _, v := range []Orthogonal{Min, Min + 1, Min + 2, -1, 0, 1, 12345, Max - 2, Max - 1, Max} {
		diff, err := coord.RoundTripCoordinateError(v)
		require.NoError(t, err)
		assert.Zero(t, diff, "round trip of %d", v)
	}
}

func TestFromFloat32(t *testing.T) {
	v, err := Orthogonal(0).FromFloat32(2.6)
	require.NoError(t, err)
	assert.Equal(t, Orthogonal(3), v)

	v, err = Orthogonal(0).FromFloat32(-2.5)
	require.NoError(t, err)
	assert.Equal(t, Orthogonal(-3), v)

	_, err = Orthogonal(0).FromFloat32(Max + 2)
	assert.True(t, errors.Is(err, coord.ErrOutOfRange))

	_, err = Adjacent(0).FromFloat32(-1e30)
	var ce *coord.ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, float32(Min), ce.Min)
}

func TestNextPrevSaturate(t *testing.T) {
	assert.Equal(t, Orthogonal(1), Orthogonal(0).Next())
	assert.Equal(t, Orthogonal(-1), Orthogonal(0).Prev())
	assert.Equal(t, Orthogonal(Max), Orthogonal(Max).Next())
	assert.Equal(t, PointyHex(Min), PointyHex(Min).Prev())
}

func TestIntegerArithmetic(t *testing.T) {
	assert.Equal(t, FlatHex(3), FlatHex(7).Div(2))
	assert.Equal(t, FlatHex(-3), FlatHex(-7).Div(2))
	assert.Equal(t, FlatHex(-1), FlatHex(-7).Rem(2))
	assert.True(t, FlatHex(-7).Less(2))
}

func TestStep(t *testing.T) {
	origin := components.Position[Adjacent]{}
	assert.Equal(t, components.Position[Adjacent]{X: 1, Y: 1}, Step(origin, orientation.FromDegrees(50)))
	assert.Equal(t, components.Position[Adjacent]{X: -1, Y: 0}, Step(origin, orientation.DirectionWest))

	o := components.Position[Orthogonal]{X: 2, Y: 2}
	assert.Equal(t, components.Position[Orthogonal]{X: 2, Y: 1}, Step(o, orientation.FromDegrees(170)))

	h := components.Position[PointyHex]{}
	assert.Equal(t, components.Position[PointyHex]{X: 1, Y: 0}, Step(h, orientation.East))
}
