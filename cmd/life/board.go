package main

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/planar/components"
	"github.com/pthm-cable/planar/grid"
	"github.com/pthm-cable/planar/orientation"
)

type cell = components.Position[grid.Adjacent]

// Board is a bounded Game of Life field. Cells outside it are always dead.
// Row 0 is the bottom of the board.
type Board struct {
	width, height int
	alive         []bool
	scratch       []bool
	cursor        cell
	generation    int
}

// NewBoard returns an empty board with the cursor in the middle.
func NewBoard(width, height int) *Board {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Board{
		width:   width,
		height:  height,
		alive:   make([]bool, width*height),
		scratch: make([]bool, width*height),
		cursor:  cell{X: grid.Adjacent(width / 2), Y: grid.Adjacent(height / 2)},
	}
}

func (b *Board) index(c cell) (int, bool) {
	x, y := int(c.X), int(c.Y)
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// Alive reports whether c is a live cell.
func (b *Board) Alive(c cell) bool {
	i, ok := b.index(c)
	return ok && b.alive[i]
}

// Set marks c alive or dead. Cells off the board are ignored.
func (b *Board) Set(c cell, alive bool) {
	if i, ok := b.index(c); ok {
		b.alive[i] = alive
	}
}

// Toggle flips the cell under the cursor.
func (b *Board) Toggle() {
	b.Set(b.cursor, !b.Alive(b.cursor))
}

// Clear kills every cell.
func (b *Board) Clear() {
	clear(b.alive)
	b.generation = 0
}

// Seed fills the board at the given density.
func (b *Board) Seed(rng *rand.Rand, density float64) {
	for i := range b.alive {
		b.alive[i] = rng.Float64() < density
	}
	b.generation = 0
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, a := range b.alive {
		if a {
			n++
		}
	}
	return n
}

// LiveNeighbors counts the live cells among the eight around c.
func (b *Board) LiveNeighbors(c cell) int {
	n := 0
	for _, nb := range grid.Neighbors(c) {
		if b.Alive(nb) {
			n++
		}
	}
	return n
}

// Step advances one generation.
func (b *Board) Step() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := cell{X: grid.Adjacent(x), Y: grid.Adjacent(y)}
			n := b.LiveNeighbors(c)
			i := y*b.width + x
			b.scratch[i] = n == 3 || (n == 2 && b.alive[i])
		}
	}
	b.alive, b.scratch = b.scratch, b.alive
	b.generation++
}

// MoveCursor steps the cursor to the neighbor nearest o, staying on the board.
func (b *Board) MoveCursor(o orientation.Orientation) {
	next := grid.Step(b.cursor, o)
	if _, ok := b.index(next); ok {
		b.cursor = next
	}
}

// Cursor returns the cursor cell.
func (b *Board) Cursor() cell { return b.cursor }

// Generation returns the number of steps since the last seed or clear.
func (b *Board) Generation() int { return b.generation }

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Draw renders the board with north at the top of the screen. The last
// screen row holds the status line.
func (b *Board) Draw(screen tcell.Screen, paused bool) {
	screen.Clear()
	for y := 0; y < b.height; y++ {
		row := b.height - 1 - y
		for x := 0; x < b.width; x++ {
			c := cell{X: grid.Adjacent(x), Y: grid.Adjacent(y)}
			r, style := ' ', tcell.StyleDefault
			if b.Alive(c) {
				r, style = '█', liveStyle
			}
			if c == b.cursor {
				style = cursorStyle
			}
			screen.SetContent(x, row, r, nil, style)
		}
	}

	state := "running"
	if paused {
		state = "paused"
	}
	status := []rune(statusLine(b.generation, b.Population(), state))
	for i, r := range status {
		screen.SetContent(i, b.height, r, nil, statusStyle)
	}
	screen.Show()
}
