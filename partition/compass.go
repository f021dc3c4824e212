package partition

import "github.com/pthm-cable/planar/orientation"

// CardinalQuadrant is one of the four cardinal directions.
type CardinalQuadrant uint8

const (
	QuadrantNorth CardinalQuadrant = iota
	QuadrantEast
	QuadrantSouth
	QuadrantWest
)

var cardinalQuadrantRotations = [...]orientation.Rotation{
	orientation.North, orientation.East, orientation.South, orientation.West,
}

var cardinalQuadrantNames = [...]string{"North", "East", "South", "West"}

func (q CardinalQuadrant) AsRotation() orientation.Rotation   { return cardinalQuadrantRotations[q] }
func (q CardinalQuadrant) AsDirection() orientation.Direction { return q.AsRotation().AsDirection() }
func (CardinalQuadrant) Members() []CardinalQuadrant {
	return []CardinalQuadrant{QuadrantNorth, QuadrantEast, QuadrantSouth, QuadrantWest}
}
func (q CardinalQuadrant) String() string { return cardinalQuadrantNames[q] }

// OffsetQuadrant is one of the four diagonal directions.
type OffsetQuadrant uint8

const (
	QuadrantNorthEast OffsetQuadrant = iota
	QuadrantSouthEast
	QuadrantSouthWest
	QuadrantNorthWest
)

var offsetQuadrantRotations = [...]orientation.Rotation{
	orientation.NorthEast, orientation.SouthEast, orientation.SouthWest, orientation.NorthWest,
}

var offsetQuadrantNames = [...]string{"NorthEast", "SouthEast", "SouthWest", "NorthWest"}

func (q OffsetQuadrant) AsRotation() orientation.Rotation   { return offsetQuadrantRotations[q] }
func (q OffsetQuadrant) AsDirection() orientation.Direction { return q.AsRotation().AsDirection() }
func (OffsetQuadrant) Members() []OffsetQuadrant {
	return []OffsetQuadrant{QuadrantNorthEast, QuadrantSouthEast, QuadrantSouthWest, QuadrantNorthWest}
}
func (q OffsetQuadrant) String() string { return offsetQuadrantNames[q] }

// CardinalOctant is one of the eight compass points.
type CardinalOctant uint8

const (
	OctantNorth CardinalOctant = iota
	OctantNorthEast
	OctantEast
	OctantSouthEast
	OctantSouth
	OctantSouthWest
	OctantWest
	OctantNorthWest
)

var octantNames = [...]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}

// AsRotation returns the octant's rotation; octants are 45° apart.
func (o CardinalOctant) AsRotation() orientation.Rotation {
	return orientation.Rotation(uint16(o) * 450)
}
func (o CardinalOctant) AsDirection() orientation.Direction { return o.AsRotation().AsDirection() }
func (CardinalOctant) Members() []CardinalOctant {
	return []CardinalOctant{
		OctantNorth, OctantNorthEast, OctantEast, OctantSouthEast,
		OctantSouth, OctantSouthWest, OctantWest, OctantNorthWest,
	}
}
func (o CardinalOctant) String() string { return octantNames[o] }

// CardinalSextant is one of six directions 60° apart, starting at north.
// These are the neighbors of a flat-topped hex tile.
type CardinalSextant uint8

const (
	SextantNorth CardinalSextant = iota
	SextantNorthEast
	SextantSouthEast
	SextantSouth
	SextantSouthWest
	SextantNorthWest
)

var cardinalSextantNames = [...]string{"North", "NorthEast", "SouthEast", "South", "SouthWest", "NorthWest"}

func (s CardinalSextant) AsRotation() orientation.Rotation {
	return orientation.Rotation(uint16(s) * 600)
}
func (s CardinalSextant) AsDirection() orientation.Direction { return s.AsRotation().AsDirection() }
func (CardinalSextant) Members() []CardinalSextant {
	return []CardinalSextant{
		SextantNorth, SextantNorthEast, SextantSouthEast,
		SextantSouth, SextantSouthWest, SextantNorthWest,
	}
}
func (s CardinalSextant) String() string { return cardinalSextantNames[s] }

// OffsetSextant is one of six directions 60° apart, starting 30° east of
// north. These are the neighbors of a pointy-topped hex tile.
type OffsetSextant uint8

const (
	SextantOffsetNorthEast OffsetSextant = iota
	SextantOffsetEast
	SextantOffsetSouthEast
	SextantOffsetSouthWest
	SextantOffsetWest
	SextantOffsetNorthWest
)

var offsetSextantNames = [...]string{"NorthEast", "East", "SouthEast", "SouthWest", "West", "NorthWest"}

func (s OffsetSextant) AsRotation() orientation.Rotation {
	return orientation.Rotation(300 + uint16(s)*600)
}
func (s OffsetSextant) AsDirection() orientation.Direction { return s.AsRotation().AsDirection() }
func (OffsetSextant) Members() []OffsetSextant {
	return []OffsetSextant{
		SextantOffsetNorthEast, SextantOffsetEast, SextantOffsetSouthEast,
		SextantOffsetSouthWest, SextantOffsetWest, SextantOffsetNorthWest,
	}
}
func (s OffsetSextant) String() string { return offsetSextantNames[s] }
