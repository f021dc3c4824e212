// Command rotation is a small raylib scene for the spatial plugin: a ship
// steered with WASD or the arrow keys, one enemy that snaps to face it along
// the nearest compass octant, and one that turns toward it at a bounded rate.
package main

import (
	"flag"
	"fmt"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/pthm-cable/planar/camera"
	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/telemetry"
)

var shipColors = map[string]rl.Color{
	"player":  rl.SkyBlue,
	"snapper": rl.Orange,
	"chaser":  rl.Red,
}

func main() {
	configPath := flag.String("config", "", "Path to config YAML (empty = embedded defaults)")
	outputDir := flag.String("output-dir", "", "Directory for trace.csv and perf.csv (overrides config)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		logger.Fatal("opening output", zap.Error(err))
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		logger.Warn("writing config snapshot", zap.Error(err))
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Demo.Screen.Width), int32(cfg.Demo.Screen.Height), "planar: rotation")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Demo.Screen.TargetFPS))

	scene := NewScene(cfg, logger, out)
	cam := camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, scene.Area())
	cam.SetZoom(cam.MinZoom)

	logger.Info("starting",
		zap.Float64("time_step", cfg.Demo.TimeStep),
		zap.String("output_dir", out.Dir()),
	)

	paused := false
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cam.ZoomBy(1 + wheel*0.1)
		}
		if rl.IsKeyPressed(rl.KeyHome) {
			cam.Reset()
		}

		if !paused {
			scene.Step(readInput(), cfg.Derived.TimeStep32)
		}
		scene.Plugin().Perf().RecordFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 18, G: 20, B: 28, A: 255})
		drawArea(cam, scene)
		for _, ship := range scene.Ships() {
			drawShip(cam, ship)
		}
		drawControls(scene)
		drawPerf(scene, paused)
		rl.EndDrawing()
	}

	p := scene.Plugin()
	logger.Info("exiting",
		zap.Uint64("frames", p.Clock().Frame),
		zap.Object("perf", p.Perf().Stats()),
	)
}

// readInput maps WASD and the arrow keys to thrust and turn.
func readInput() Input {
	var in Input
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		in.Thrust++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		in.Thrust--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		in.Turn++
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		in.Turn--
	}
	return in
}

func drawArea(cam *camera.Camera, scene *Scene) {
	area := scene.Area()
	x0, y0 := cam.WorldToScreen(area.TopLeft())
	x1, y1 := cam.WorldToScreen(area.BottomRight())
	rl.DrawRectangleLines(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0), rl.DarkGray)

	cx, cy := cam.WorldToScreen(area.Center())
	rl.DrawLine(int32(cx)-6, int32(cy), int32(cx)+6, int32(cy), rl.DarkGray)
	rl.DrawLine(int32(cx), int32(cy)-6, int32(cx), int32(cy)+6, rl.DarkGray)
}

// drawShip draws a triangle pointing along the ship's heading.
func drawShip(cam *camera.Camera, ship Ship) {
	const size = 18
	x, y := cam.WorldToScreen(ship.Pos)
	if !cam.IsVisible(ship.Pos, size) {
		return
	}
	dx, dy := camera.ScreenDirection(ship.Heading)
	s := size * cam.Zoom

	// (-dy, dx) points to the ship's right on screen
	nose := rl.Vector2{X: x + dx*s, Y: y + dy*s}
	left := rl.Vector2{X: x - dx*s*0.6 + dy*s*0.6, Y: y - dy*s*0.6 - dx*s*0.6}
	right := rl.Vector2{X: x - dx*s*0.6 - dy*s*0.6, Y: y - dy*s*0.6 + dx*s*0.6}

	color, ok := shipColors[ship.Name]
	if !ok {
		color = rl.White
	}
	// DrawTriangle requires counter-clockwise winding
	rl.DrawTriangle(nose, left, right, color)
	rl.DrawTriangleLines(nose, left, right, rl.White)
	rl.DrawText(fmt.Sprintf("%s %s", ship.Name, ship.Heading), int32(x+s), int32(y+s), 12, rl.LightGray)
}

// drawControls renders the tuning sliders in the top-right corner.
func drawControls(scene *Scene) {
	const width = 220
	x := float32(rl.GetScreenWidth()) - width - 70
	y := float32(10)

	slider := func(label string, value *float64, min, max float32) {
		rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
		y += 18
		next := gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: width, Height: 20},
			"", "",
			float32(*value), min, max,
		)
		rl.DrawText(fmt.Sprintf("%.0f", *value), int32(x+width+8), int32(y+2), 16, rl.LightGray)
		if float64(next) != *value {
			*value = float64(next)
		}
		y += 30
	}

	slider("Player speed (units/s)", &scene.PlayerSpeed, 0, 600)
	slider("Player turn rate (deg/s)", &scene.PlayerTurnRate, 0, 360)
	slider("Enemy turn rate (deg/s)", &scene.EnemyTurnRate, 0, 360)
}

// drawPerf shows the per-stage timing breakdown.
func drawPerf(scene *Scene, paused bool) {
	p := scene.Plugin()
	stats := p.Perf().Stats()
	y := int32(10)

	state := ""
	if paused {
		state = "  [paused]"
	}
	rl.DrawText(fmt.Sprintf("Frame %d  FPS %.0f  Tick %v%s", p.Clock().Frame, stats.FPS, stats.AvgTickDuration, state), 10, y, 16, rl.White)
	y += 22
	for _, id := range stats.Phases {
		rl.DrawText(fmt.Sprintf("%-18s %6v %5.1f%%", p.Registry().GetName(id), stats.PhaseAvg[id], stats.PhasePct[id]), 10, y, 14, rl.LightGray)
		y += 18
	}

	sync := p.Stats()
	rl.DrawText(fmt.Sprintf("sync writes %d  skipped %d", sync.Writes(), sync.Skipped), 10, y+4, 14, rl.Gray)
}
