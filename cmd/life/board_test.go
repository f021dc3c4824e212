package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/planar/config"
	"github.com/pthm-cable/planar/grid"
	"github.com/pthm-cable/planar/partition"
)

func at(x, y int) cell {
	return cell{X: grid.Adjacent(x), Y: grid.Adjacent(y)}
}

func setAll(b *Board, cells ...cell) {
	for _, c := range cells {
		b.Set(c, true)
	}
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBlinkerOscillates(t *testing.T) {
	b := NewBoard(5, 5)
	setAll(b, at(1, 2), at(2, 2), at(3, 2))

	b.Step()
	for _, c := range []cell{at(2, 1), at(2, 2), at(2, 3)} {
		assert.True(t, b.Alive(c), "expected %v alive", c)
	}
	assert.False(t, b.Alive(at(1, 2)))
	assert.False(t, b.Alive(at(3, 2)))
	assert.Equal(t, 3, b.Population())

	b.Step()
	assert.True(t, b.Alive(at(1, 2)))
	assert.True(t, b.Alive(at(3, 2)))
	assert.Equal(t, 2, b.Generation())
}

func TestBlockIsStill(t *testing.T) {
	b := NewBoard(4, 4)
	setAll(b, at(1, 1), at(2, 1), at(1, 2), at(2, 2))
	for i := 0; i < 3; i++ {
		b.Step()
	}
	assert.Equal(t, 4, b.Population())
	assert.True(t, b.Alive(at(2, 2)))
}

func TestOffBoardIsDead(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(at(-1, 0), true)
	b.Set(at(3, 3), true)
	assert.Zero(t, b.Population())
	assert.False(t, b.Alive(at(-1, 0)))

	// A corner block is still life: nothing is born past the edge
	setAll(b, at(0, 0), at(1, 0), at(0, 1), at(1, 1))
	b.Step()
	assert.Equal(t, 4, b.Population())
	assert.Equal(t, 1, b.LiveNeighbors(at(2, 2)))
	assert.Equal(t, 2, b.LiveNeighbors(at(2, 0)))
}

func TestSeedAndClear(t *testing.T) {
	b := NewBoard(10, 10)
	b.Seed(rand.New(rand.NewSource(1)), 1)
	assert.Equal(t, 100, b.Population())
	b.Seed(rand.New(rand.NewSource(1)), 0)
	assert.Zero(t, b.Population())

	setAll(b, at(0, 0))
	b.Step()
	b.Clear()
	assert.Zero(t, b.Population())
	assert.Zero(t, b.Generation())
}

func TestMoveCursor(t *testing.T) {
	b := NewBoard(5, 5)
	require.Equal(t, at(2, 2), b.Cursor())

	b.MoveCursor(partition.QuadrantNorthEast)
	assert.Equal(t, at(3, 3), b.Cursor())

	b.MoveCursor(partition.QuadrantWest)
	assert.Equal(t, at(2, 3), b.Cursor())

	b.MoveCursor(partition.QuadrantNorth)
	assert.Equal(t, at(2, 4), b.Cursor())

	// Top edge: stays put
	b.MoveCursor(partition.QuadrantNorth)
	assert.Equal(t, at(2, 4), b.Cursor())

	b.Toggle()
	assert.True(t, b.Alive(at(2, 4)))
	b.Toggle()
	assert.False(t, b.Alive(at(2, 4)))
}

func TestDrawPutsNorthOnTop(t *testing.T) {
	screen := newScreen(t, 10, 5)
	b := NewBoard(4, 3)
	b.Set(at(0, 0), true)
	b.Set(at(3, 2), true)

	b.Draw(screen, true)

	// Board row 0 is the bottom screen row of the board
	r, _, style, _ := screen.GetContent(0, 2)
	assert.Equal(t, '█', r)
	assert.Equal(t, liveStyle, style)

	r, _, _, _ = screen.GetContent(3, 0)
	assert.Equal(t, '█', r)

	r, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, ' ', r)

	// Cursor sits at (2, 1), which is screen row 1
	_, _, style, _ = screen.GetContent(2, 1)
	assert.Equal(t, cursorStyle, style)

	var status strings.Builder
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, 3)
		status.WriteRune(r)
	}
	assert.Equal(t, " gen 0  po", status.String())
}

func TestHandleEvent(t *testing.T) {
	screen := newScreen(t, 20, 10)
	g := NewGame(screen, config.LifeConfig{}, 1)
	require.Equal(t, at(10, 4), g.board.Cursor())

	assert.True(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.True(t, g.paused)

	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone))
	assert.Equal(t, at(11, 5), g.board.Cursor())

	g.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, at(11, 4), g.board.Cursor())

	g.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.True(t, g.board.Alive(at(11, 4)))

	// Paused: a tick leaves the lone cell alone, a manual step kills it
	g.Tick()
	assert.Equal(t, 1, g.board.Population())
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone))
	assert.Zero(t, g.board.Population())

	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestEscapeQuits(t *testing.T) {
	screen := newScreen(t, 20, 10)
	g := NewGame(screen, config.LifeConfig{Width: 8, Height: 6}, 1)
	assert.Equal(t, at(4, 3), g.board.Cursor())
	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
