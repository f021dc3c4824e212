// Command life runs Conway's Game of Life in the terminal on an 8-neighbor
// square grid.
//
// Keys: arrows or hjkl move the cursor, yubn move diagonally, enter toggles
// the cell under the cursor, space pauses, . steps once while paused, r
// reseeds, c clears, q or esc quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/orientation"
	"github.com/pthm-cable/planar/partition"
)

func statusLine(generation, population int, state string) string {
	return fmt.Sprintf(" gen %d  pop %d  %s  [space] pause [.] step [enter] toggle [r] seed [c] clear [q] quit",
		generation, population, state)
}

// cursorMoves maps keys to the orientation the cursor steps toward.
var cursorMoves = map[rune]orientation.Orientation{
	'k': partition.QuadrantNorth,
	'l': partition.QuadrantEast,
	'j': partition.QuadrantSouth,
	'h': partition.QuadrantWest,
	'u': partition.QuadrantNorthEast,
	'n': partition.QuadrantSouthEast,
	'b': partition.QuadrantSouthWest,
	'y': partition.QuadrantNorthWest,
}

var arrowMoves = map[tcell.Key]orientation.Orientation{
	tcell.KeyUp:    partition.QuadrantNorth,
	tcell.KeyRight: partition.QuadrantEast,
	tcell.KeyDown:  partition.QuadrantSouth,
	tcell.KeyLeft:  partition.QuadrantWest,
}

// Game holds the board and loop state.
type Game struct {
	screen  tcell.Screen
	board   *Board
	rng     *rand.Rand
	cfg     config.LifeConfig
	paused  bool
	running bool
}

// NewGame sizes a board to the screen, or to the configured size.
func NewGame(screen tcell.Screen, cfg config.LifeConfig, seed int64) *Game {
	w, h := screen.Size()
	h-- // status line
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	g := &Game{
		screen:  screen,
		board:   NewBoard(w, h),
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		running: true,
	}
	g.board.Seed(g.rng, cfg.SeedDensity)
	return g
}

// HandleEvent applies one input event. It returns false once the game
// should exit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			g.running = false
		case tcell.KeyEnter:
			g.board.Toggle()
		case tcell.KeyRune:
			g.handleRune(ev.Rune())
		default:
			if o, ok := arrowMoves[ev.Key()]; ok {
				g.board.MoveCursor(o)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return g.running
}

func (g *Game) handleRune(r rune) {
	if o, ok := cursorMoves[r]; ok {
		g.board.MoveCursor(o)
		return
	}
	switch r {
	case 'q':
		g.running = false
	case ' ':
		g.paused = !g.paused
	case '.':
		if g.paused {
			g.board.Step()
		}
	case 'r':
		g.board.Seed(g.rng, g.cfg.SeedDensity)
	case 'c':
		g.board.Clear()
	}
}

// Tick advances the board unless paused, then redraws.
func (g *Game) Tick() {
	if !g.paused {
		g.board.Step()
	}
	g.board.Draw(g.screen, g.paused)
}

func (g *Game) run() {
	tick := time.Duration(g.cfg.TickMS) * time.Millisecond
	if tick <= 0 {
		tick = 120 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	g.board.Draw(g.screen, g.paused)
	for {
		select {
		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				return
			}
			g.board.Draw(g.screen, g.paused)
		case <-ticker.C:
			g.Tick()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config YAML (empty = embedded defaults)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("creating screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("initializing screen", zap.Error(err))
	}

	g := NewGame(screen, cfg.Demo.Life, *seed)
	g.run()
	screen.Fini()
	logger.Info("exiting",
		zap.Int("generation", g.board.Generation()),
		zap.Int("population", g.board.Population()),
	)
}
