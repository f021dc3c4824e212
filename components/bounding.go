package components

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/planar/coord"
)

// ErrInvertedBounds is returned for a box whose low edge exceeds its high edge.
var ErrInvertedBounds = errors.New("inverted bounding box")

// AABB is an axis-aligned bounding box. Left <= Right and Bottom <= Top.
type AABB[C coord.Coordinate[C]] struct {
	Left, Right C
	Bottom, Top C
}

// TryNewAABB builds a box, rejecting inverted edges.
func TryNewAABB[C coord.Coordinate[C]](left, right, bottom, top C) (AABB[C], error) {
	if right.Less(left) {
		return AABB[C]{}, fmt.Errorf("left %v > right %v: %w", left, right, ErrInvertedBounds)
	}
	if top.Less(bottom) {
		return AABB[C]{}, fmt.Errorf("bottom %v > top %v: %w", bottom, top, ErrInvertedBounds)
	}
	return AABB[C]{Left: left, Right: right, Bottom: bottom, Top: top}, nil
}

// NewAABB is TryNewAABB for edges known to be ordered. It panics otherwise.
func NewAABB[C coord.Coordinate[C]](left, right, bottom, top C) AABB[C] {
	box, err := TryNewAABB(left, right, bottom, top)
	if err != nil {
		panic(err)
	}
	return box
}

// AABBFromSize builds the box centered on center extending halfWidth and
// halfHeight each way. It panics on negative extents.
func AABBFromSize[C coord.Coordinate[C]](center Position[C], halfWidth, halfHeight C) AABB[C] {
	return NewAABB(
		center.X.Sub(halfWidth), center.X.Add(halfWidth),
		center.Y.Sub(halfHeight), center.Y.Add(halfHeight),
	)
}

// DrawAround returns the smallest box containing every point. It returns
// false when points is empty.
func DrawAround[C coord.Coordinate[C]](points ...Position[C]) (AABB[C], bool) {
	if len(points) == 0 {
		return AABB[C]{}, false
	}
	box := AABB[C]{Left: points[0].X, Right: points[0].X, Bottom: points[0].Y, Top: points[0].Y}
	for _, p := range points[1:] {
		box.Left = coord.MinOf(box.Left, p.X)
		box.Right = coord.MaxOf(box.Right, p.X)
		box.Bottom = coord.MinOf(box.Bottom, p.Y)
		box.Top = coord.MaxOf(box.Top, p.Y)
	}
	return box, true
}

func (b AABB[C]) TopLeft() Position[C]     { return Position[C]{b.Left, b.Top} }
func (b AABB[C]) TopRight() Position[C]    { return Position[C]{b.Right, b.Top} }
func (b AABB[C]) BottomLeft() Position[C]  { return Position[C]{b.Left, b.Bottom} }
func (b AABB[C]) BottomRight() Position[C] { return Position[C]{b.Right, b.Bottom} }

// Vertexes returns the corners clockwise from the top right.
func (b AABB[C]) Vertexes() [4]Position[C] {
	return [4]Position[C]{b.TopRight(), b.BottomRight(), b.BottomLeft(), b.TopLeft()}
}

// Center returns the midpoint of b, rounded toward Left and Bottom for
// integer coordinates.
func (b AABB[C]) Center() Position[C] {
	two, _ := coord.FromFloat32[C](2)
	return Position[C]{
		X: b.Left.Add(b.Width().Div(two)),
		Y: b.Bottom.Add(b.Height().Div(two)),
	}
}

// Width returns Right - Left.
func (b AABB[C]) Width() C { return b.Right.Sub(b.Left) }

// Height returns Top - Bottom.
func (b AABB[C]) Height() C { return b.Top.Sub(b.Bottom) }

// Contains reports whether p lies inside b or on its edge.
func (b AABB[C]) Contains(p Position[C]) bool {
	return !p.X.Less(b.Left) && !b.Right.Less(p.X) &&
		!p.Y.Less(b.Bottom) && !b.Top.Less(p.Y)
}

// Intersects reports whether b and o overlap, including touching edges and
// one box containing the other.
func (b AABB[C]) Intersects(o AABB[C]) bool {
	return !(b.Right.Less(o.Left) || o.Right.Less(b.Left) ||
		b.Top.Less(o.Bottom) || o.Top.Less(b.Bottom))
}

// Clamp returns the point of b nearest to p.
func (b AABB[C]) Clamp(p Position[C]) Position[C] {
	return Position[C]{
		X: coord.Clamp(p.X, b.Left, b.Right),
		Y: coord.Clamp(p.Y, b.Bottom, b.Top),
	}
}
