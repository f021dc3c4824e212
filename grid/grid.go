// Package grid provides integer coordinates for square and hex tilings.
//
// Every grid coordinate spans [-2^24, 2^24], the range over which float32
// holds every integer, so converting through the interchange format is exact.
package grid

import (
	"fmt"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
	"github.com/pthm-cable/planar/partition"
)

//go:generate go run ../cmd/coordgen -type Orthogonal -base int32 -min Min -max Max -out orthogonal_generated.go
//go:generate go run ../cmd/coordgen -type Adjacent -base int32 -min Min -max Max -out adjacent_generated.go
//go:generate go run ../cmd/coordgen -type FlatHex -base int32 -min Min -max Max -out flathex_generated.go
//go:generate go run ../cmd/coordgen -type PointyHex -base int32 -min Min -max Max -out pointyhex_generated.go

// Bounds shared by every grid coordinate.
const (
	Min = -1 << 24
	Max = 1 << 24
)

// Orthogonal is a square grid whose cells touch their 4 edge neighbors.
type Orthogonal int32

// Adjacent is a square grid whose cells touch their 8 edge and corner neighbors.
type Adjacent int32

// FlatHex is a hex grid with flat-topped tiles.
type FlatHex int32

// PointyHex is a hex grid with pointy-topped tiles.
type PointyHex int32

// Discrete constrains the grid coordinate types.
type Discrete[C coord.Coordinate[C]] interface {
	coord.Coordinate[C]

	// Next returns the following value, saturating at Max.
	Next() C
	// Prev returns the preceding value, saturating at Min.
	Prev() C
	// NeighborOffsets lists the displacement to each neighbor, clockwise
	// from the first neighbor at or after north.
	NeighborOffsets() []components.Position[C]
	// NeighborRotations lists the partition member each neighbor is
	// reached by, in the same order as NeighborOffsets. Hex offsets are
	// skewed, so these are not the exact bearings of the offsets.
	NeighborRotations() []orientation.Rotation
}

// Neighbors returns the cells around p in clockwise order.
func Neighbors[C Discrete[C]](p components.Position[C]) []components.Position[C] {
	var zero C
	offsets := zero.NeighborOffsets()
	out := make([]components.Position[C], len(offsets))
	for i, o := range offsets {
		out[i] = p.Add(o)
	}
	return out
}

// NeighborDirections returns the direction from the origin toward each
// neighbor, matching the order of Neighbors.
func NeighborDirections[C Discrete[C]]() []orientation.Direction {
	var origin components.Position[C]
	neighbors := Neighbors(origin)
	out := make([]orientation.Direction, len(neighbors))
	for i, n := range neighbors {
		d, err := origin.DirectionTo(n)
		if err != nil {
			// Offsets are never zero
			panic(fmt.Sprintf("grid: neighbor %d of %T: %v", i, origin.X, err))
		}
		out[i] = d
	}
	return out
}

// Step returns the neighbor of p whose partition member lies closest to
// orientation o. Ties go to the neighbor listed first.
func Step[C Discrete[C]](p components.Position[C], o orientation.Orientation) components.Position[C] {
	var zero C
	rs := zero.NeighborRotations()
	best, bestDist := 0, orientation.Distance(rs[0], o)
	for i := 1; i < len(rs); i++ {
		if d := orientation.Distance(rs[i], o); d < bestDist {
			best, bestDist = i, d
		}
	}
	return p.Add(zero.NeighborOffsets()[best])
}

// AssertValuesDistinct checks the edges of C's range: Min, Max and the two
// values inside each must convert to distinct floats and round-trip
// exactly.
func AssertValuesDistinct[C Discrete[C]]() error {
	lo, hi := coord.Bounds[C]()
	values := []C{hi, hi.Prev(), hi.Prev().Prev(), lo, lo.Next(), lo.Next().Next()}

	seen := make(map[float32]C, len(values))
	for _, v := range values {
		f := v.Float32()
		if other, ok := seen[f]; ok {
			return fmt.Errorf("%v and %v both convert to %g", other, v, f)
		}
		seen[f] = v

		diff, err := coord.RoundTripCoordinateError(v)
		if err != nil {
			return fmt.Errorf("round trip of %v: %w", v, err)
		}
		if diff != v.Zero() {
			return fmt.Errorf("round trip of %v is off by %v", v, diff)
		}
	}
	return nil
}

func next[C coord.Coordinate[C]](c, one C) C {
	if c == c.Max() {
		return c
	}
	return c.Add(one)
}

func prev[C coord.Coordinate[C]](c, one C) C {
	if c == c.Min() {
		return c
	}
	return c.Sub(one)
}

func (o Orthogonal) Next() Orthogonal { return next(o, 1) }
func (o Orthogonal) Prev() Orthogonal { return prev(o, 1) }
func (a Adjacent) Next() Adjacent     { return next(a, 1) }
func (a Adjacent) Prev() Adjacent     { return prev(a, 1) }
func (f FlatHex) Next() FlatHex       { return next(f, 1) }
func (f FlatHex) Prev() FlatHex       { return prev(f, 1) }
func (p PointyHex) Next() PointyHex   { return next(p, 1) }
func (p PointyHex) Prev() PointyHex   { return prev(p, 1) }

// NeighborOffsets returns north, east, south and west.
func (Orthogonal) NeighborOffsets() []components.Position[Orthogonal] {
	return []components.Position[Orthogonal]{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
}

func (Orthogonal) NeighborRotations() []orientation.Rotation {
	return partition.Rotations[partition.CardinalQuadrant]()
}

// NeighborOffsets returns all eight compass neighbors starting at north.
func (Adjacent) NeighborOffsets() []components.Position[Adjacent] {
	return []components.Position[Adjacent]{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1},
		{X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	}
}

func (Adjacent) NeighborRotations() []orientation.Rotation {
	return partition.Rotations[partition.CardinalOctant]()
}

// NeighborOffsets returns the six neighbors of a flat-topped hex, starting
// at north.
func (FlatHex) NeighborOffsets() []components.Position[FlatHex] {
	return []components.Position[FlatHex]{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1},
		{X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1},
	}
}

func (FlatHex) NeighborRotations() []orientation.Rotation {
	return partition.Rotations[partition.CardinalSextant]()
}

// NeighborOffsets returns the six neighbors of a pointy-topped hex,
// starting at north-east.
func (PointyHex) NeighborOffsets() []components.Position[PointyHex] {
	return []components.Position[PointyHex]{
		{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1},
		{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
	}
}

func (PointyHex) NeighborRotations() []orientation.Rotation {
	return partition.Rotations[partition.OffsetSextant]()
}
