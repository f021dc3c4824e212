// Package camera maps the y-up world plane onto y-down screen pixels.
package camera

import (
	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

// Point is a world position in continuous coordinates.
type Point = components.Position[coord.F32]

// Camera controls the viewport into a bounded world.
// World y grows upward; screen y grows downward.
type Camera struct {
	// Center is the camera center in world coordinates
	Center Point

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Bounds limits where the center may be panned
	Bounds components.AABB[coord.F32]

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on bounds with 1:1 zoom.
func New(viewportW, viewportH float32, bounds components.AABB[coord.F32]) *Camera {
	c := &Camera{
		Center:    bounds.Center(),
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		Bounds:    bounds,
		MaxZoom:   4.0,
	}
	c.MinZoom = c.fitZoom()
	return c
}

// fitZoom is the zoom at which the whole of Bounds just fits the viewport.
func (c *Camera) fitZoom() float32 {
	w, h := float32(c.Bounds.Width()), float32(c.Bounds.Height())
	if w <= 0 || h <= 0 {
		return 1
	}
	zx := c.ViewportW / w
	zy := c.ViewportH / h
	if zy < zx {
		return zy
	}
	return zx
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p Point) (sx, sy float32) {
	dx := float32(p.X - c.Center.X)
	dy := float32(p.Y - c.Center.Y)
	sx = c.ViewportW/2 + dx*c.Zoom
	sy = c.ViewportH/2 - dy*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen pixels to a world position.
func (c *Camera) ScreenToWorld(sx, sy float32) Point {
	dx := (sx - c.ViewportW/2) / c.Zoom
	dy := (c.ViewportH/2 - sy) / c.Zoom
	return Point{X: c.Center.X + coord.F32(dx), Y: c.Center.Y + coord.F32(dy)}
}

// ScreenDirection returns the screen-space unit vector for o.
func ScreenDirection(o orientation.Orientation) (dx, dy float32) {
	d := o.AsDirection()
	return float32(d.X()), float32(-d.Y())
}

// ScreenAngle returns the clockwise screen rotation in degrees for o, with
// zero pointing up the screen.
func ScreenAngle(o orientation.Orientation) float32 {
	return float32(o.AsRotation().Degrees())
}

// IsVisible returns true if a circle at p with the given radius could be
// visible on screen (conservative check for culling).
func (c *Camera) IsVisible(p Point, radius float32) bool {
	dx := float32(p.X - c.Center.X)
	dy := float32(p.Y - c.Center.Y)
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(dx) <= halfW && absf(dy) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.fitZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by the given delta in screen pixels, keeping the
// center inside Bounds.
func (c *Camera) Pan(dx, dy float32) {
	next := Point{
		X: c.Center.X + coord.F32(dx/c.Zoom),
		Y: c.Center.Y - coord.F32(dy/c.Zoom),
	}
	c.Center = c.Bounds.Clamp(next)
}

// Follow centers the camera on p, kept inside Bounds.
func (c *Camera) Follow(p Point) {
	c.Center = c.Bounds.Clamp(p)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.Center = c.Bounds.Center()
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world area currently on screen.
func (c *Camera) VisibleWorldBounds() components.AABB[coord.F32] {
	halfW := coord.F32(c.ViewportW / (2 * c.Zoom))
	halfH := coord.F32(c.ViewportH / (2 * c.Zoom))
	return components.AABBFromSize(c.Center, halfW, halfH)
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
