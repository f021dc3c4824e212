package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/coord"
	"github.com/pthm-cable/planar/orientation"
)

func playArea() components.AABB[coord.F32] {
	return components.NewAABB[coord.F32](-600, 600, -320, 320)
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, playArea())

	// Should be centered on the origin
	if cam.Center != (Point{}) {
		t.Errorf("expected camera at origin, got %v", cam.Center)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := New(1280, 720, playArea())

	sx, sy := cam.WorldToScreen(Point{})
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}

	// North of the origin is above the screen center
	_, sy = cam.WorldToScreen(Point{X: 0, Y: 100})
	if math.Abs(float64(sy-260)) > 0.01 {
		t.Errorf("expected y 260, got %f", sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, playArea())
	cam.SetZoom(1.5)
	cam.Center = Point{X: 40, Y: -25}

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		p := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(p)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> %v -> (%f,%f)", tc.sx, tc.sy, p, sx, sy)
		}
	}
}

func TestScreenDirection(t *testing.T) {
	dx, dy := ScreenDirection(orientation.North)
	if math.Abs(float64(dx)) > 1e-6 || math.Abs(float64(dy+1)) > 1e-6 {
		t.Errorf("north should point up the screen, got (%f, %f)", dx, dy)
	}
	dx, dy = ScreenDirection(orientation.DirectionEast)
	if math.Abs(float64(dx-1)) > 1e-6 || math.Abs(float64(dy)) > 1e-6 {
		t.Errorf("east should point right, got (%f, %f)", dx, dy)
	}
	if a := ScreenAngle(orientation.SouthWest); a != 225 {
		t.Errorf("expected 225 degrees, got %f", a)
	}
}

func TestPanStaysInBounds(t *testing.T) {
	cam := New(1280, 720, playArea())

	cam.Pan(-2000, 0)
	if cam.Center.X != -600 {
		t.Errorf("expected X clamped to -600, got %v", cam.Center.X)
	}

	// Dragging down the screen moves the view south
	cam.Pan(0, 100)
	if cam.Center.Y != -100 {
		t.Errorf("expected Y -100, got %v", cam.Center.Y)
	}
}

func TestFollow(t *testing.T) {
	cam := New(1280, 720, playArea())
	cam.Follow(Point{X: 50, Y: 900})
	if cam.Center != (Point{X: 50, Y: 320}) {
		t.Errorf("expected (50, 320), got %v", cam.Center)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1200, 320, playArea())

	// MinZoom = min(1200/1200, 320/640) = 0.5
	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestMinZoomFitsWholeArea(t *testing.T) {
	cam := New(800, 600, playArea())
	cam.SetZoom(cam.MinZoom)

	visible := cam.VisibleWorldBounds()
	area := playArea()
	const slack = 0.01
	if visible.Left > area.Left+slack || visible.Right < area.Right-slack ||
		visible.Bottom > area.Bottom+slack || visible.Top < area.Top-slack {
		t.Errorf("visible %+v should contain play area %+v", visible, area)
	}
}

func TestResize(t *testing.T) {
	cam := New(1280, 720, playArea())
	cam.SetZoom(cam.MinZoom)
	cam.Resize(2560, 1440)
	if cam.Zoom < cam.MinZoom {
		t.Errorf("zoom %f below new minimum %f", cam.Zoom, cam.MinZoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, playArea())

	// Visible range in world coords: (-640, -360) to (640, 360)
	if !cam.IsVisible(Point{}, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(Point{X: 900, Y: 500}, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(Point{X: -700, Y: 0}, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, playArea())
	cam.Center = Point{X: 500, Y: 100}
	cam.Zoom = 2.5

	cam.Reset()

	if cam.Center != (Point{}) {
		t.Errorf("expected origin, got %v", cam.Center)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
