package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planar/orientation"
)

func TestSnapCardinalQuadrant(t *testing.T) {
	tests := []struct {
		deg  float64
		want CardinalQuadrant
	}{
		{0, QuadrantNorth},
		{44, QuadrantNorth},
		{46, QuadrantEast},
		{180, QuadrantSouth},
		{260, QuadrantWest},
		{350, QuadrantNorth},
		// Exactly between north and east: north is listed first.
		{45, QuadrantNorth},
		{135, QuadrantEast},
	}
	for _, tt := range tests {
		got := Snap[CardinalQuadrant](orientation.FromDegrees(tt.deg))
		assert.Equal(t, tt.want, got, "Snap(%v°)", tt.deg)
	}
}

func TestSnapOtherPartitions(t *testing.T) {
	assert.Equal(t, QuadrantNorthEast, Snap[OffsetQuadrant](orientation.North))
	assert.Equal(t, QuadrantSouthWest, Snap[OffsetQuadrant](orientation.FromDegrees(200)))
	assert.Equal(t, OctantSouthWest, Snap[CardinalOctant](orientation.FromDegrees(230)))
	assert.Equal(t, SextantSouthEast, Snap[CardinalSextant](orientation.FromDegrees(110)))
	assert.Equal(t, SextantOffsetWest, Snap[OffsetSextant](orientation.West))
	assert.Equal(t, OctantEast, Snap[CardinalOctant](orientation.DirectionEast))
}

func TestSnapIsIdempotent(t *testing.T) {
	for _, m := range Members[CardinalOctant]() {
		assert.Equal(t, m, Snap[CardinalOctant](m))
	}
	for _, m := range Members[OffsetSextant]() {
		assert.Equal(t, m, Snap[OffsetSextant](m))
	}
}

func TestSnapRotationAndDirection(t *testing.T) {
	assert.Equal(t, orientation.East, SnapRotation[CardinalQuadrant](orientation.NewRotation(1000)))

	d := SnapDirection[CardinalOctant](orientation.NewDirection(1, 0.9))
	assert.True(t, d.ApproxEqual(orientation.DirectionNorthEast, 1e-9), "got %v", d)
}

func TestSnapVec(t *testing.T) {
	v := SnapVec[CardinalQuadrant](r2.Vec{X: 3, Y: 4})
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 5, v.Y, 1e-9)

	v = SnapVec[CardinalOctant](r2.Vec{X: -2, Y: -2.1})
	assert.InDelta(t, r2.Norm(r2.Vec{X: -2, Y: -2.1}), r2.Norm(v), 1e-9)
	assert.InDelta(t, v.X, v.Y, 1e-9)

	assert.Equal(t, r2.Vec{}, SnapVec[CardinalQuadrant](r2.Vec{}))
}

func TestRotations(t *testing.T) {
	assert.Equal(t, []orientation.Rotation{0, 900, 1800, 2700}, Rotations[CardinalQuadrant]())
	assert.Equal(t, []orientation.Rotation{450, 1350, 2250, 3150}, Rotations[OffsetQuadrant]())
	assert.Equal(t, []orientation.Rotation{0, 600, 1200, 1800, 2400, 3000}, Rotations[CardinalSextant]())
	assert.Equal(t, []orientation.Rotation{300, 900, 1500, 2100, 2700, 3300}, Rotations[OffsetSextant]())
	assert.Len(t, Directions[CardinalOctant](), 8)
}

func TestMembersAreClockwise(t *testing.T) {
	check := func(name string, rs []orientation.Rotation) {
		for i := 1; i < len(rs); i++ {
			assert.Greater(t, rs[i], rs[i-1], "%s member %d", name, i)
		}
	}
	check("CardinalQuadrant", Rotations[CardinalQuadrant]())
	check("OffsetQuadrant", Rotations[OffsetQuadrant]())
	check("CardinalOctant", Rotations[CardinalOctant]())
	check("CardinalSextant", Rotations[CardinalSextant]())
	check("OffsetSextant", Rotations[OffsetSextant]())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "West", QuadrantWest.String())
	assert.Equal(t, "NorthWest", OctantNorthWest.String())
	assert.Equal(t, "SouthWest", SextantOffsetSouthWest.String())
}
