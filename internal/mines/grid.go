package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

type State uint8

const (
	Uninitialized State = iota
	Live
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Live:
		return "live"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Over reports whether s is terminal.
func (s State) Over() bool {
	return s == Lost || s == Won
}

// Grid owns the cells of one game. Mines are placed lazily by the first
// reveal so that the first move is always safe.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width, height, mineCount int
	cells                    []*Cell // y*width + x
	state                    State
	rnd                      *rand.Rand
}

type Option func(*Grid)

// WithRand makes mine placement draw from r instead of a freshly seeded
// source.
func WithRand(r *rand.Rand) Option {
	return func(g *Grid) {
		g.rnd = r
	}
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewGrid(width, height, mineCount int, opts ...Option) (*Grid, error) {
	if err := validate(width, height, mineCount); err != nil {
		return nil, err
	}
	g := &Grid{
		width:     width,
		height:    height,
		mineCount: mineCount,
		cells:     newCells(width, height),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = NewRand()
	}
	return g, nil
}

func validate(width, height, mineCount int) error {
	e := ConfigError{Width: width, Height: height, MineCount: mineCount}
	switch {
	case width <= 0:
		e.message = "width must be positive"
	case height <= 0:
		e.message = "height must be positive"
	case mineCount <= 0:
		e.message = "mine count must be positive"
	case mineCount >= width*height:
		e.message = "mine count must be less than the number of cells"
	case mineCount > width*height-min(2, width)*min(2, height):
		/*
		 * Even a corner start excludes a 2x2 block (or less on thin
		 * grids); if the rest cannot hold every mine, no first move
		 * can be made safe.
		 */
		e.message = "not enough room for mines around any starting cell"
	default:
		return nil
	}
	return e
}

func newCells(width, height int) []*Cell {
	cells := make([]*Cell, width*height)
	for y := range height {
		for x := range width {
			cells[y*width+x] = &Cell{x: x, y: y}
		}
	}
	return cells
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) Height() int { return g.height }

func (g *Grid) MineCount() int { return g.mineCount }

func (g *Grid) State() State { return g.state }

func (g *Grid) IsInitialized() bool { return g.state != Uninitialized }

// IsClean reports whether every cell without a mine is revealed.
func (g *Grid) IsClean() bool {
	for _, c := range g.cells {
		if !c.mine && !c.revealed {
			return false
		}
	}
	return true
}

// MarkedMines is the number of cells currently marked as suspected mines.
func (g *Grid) MarkedMines() (count int) {
	for _, c := range g.cells {
		if c.marked {
			count++
		}
	}
	return
}

// MinesLeft is the mine count minus the marks placed so far; it goes
// negative when the player over-marks.
func (g *Grid) MinesLeft() int {
	if !g.IsInitialized() {
		return g.mineCount
	}
	return g.mineCount - g.MarkedMines()
}

func (g *Grid) InBounds(p Point) bool {
	return 0 <= p.X && p.X < g.width && 0 <= p.Y && p.Y < g.height
}

func (g *Grid) Cell(p Point) (*Cell, error) {
	if !g.InBounds(p) {
		return nil, OutOfBoundsError{Point: p, Width: g.width, Height: g.height}
	}
	return g.cells[p.Y*g.width+p.X], nil
}

// Neighbors returns the in-bounds cells around x,y in row-major order.
func (g *Grid) Neighbors(x, y int) []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < g.width && 0 <= yy && yy < g.height {
				neighbors = append(neighbors, g.cells[yy*g.width+xx])
			}
		}
	}
	return neighbors
}

// Mines returns every mined cell in row-major order.
func (g *Grid) Mines() []*Cell {
	mines := make([]*Cell, 0, g.mineCount)
	for _, c := range g.cells {
		if c.mine {
			mines = append(mines, c)
		}
	}
	return mines
}

// Reset discards all cells and returns the grid to its state before the
// first move. Cells obtained before the reset are detached from the grid.
func (g *Grid) Reset() {
	g.cells = newCells(g.width, g.height)
	g.state = Uninitialized
	Log.WithFields(logrus.Fields{"grid": g.Params()}).Debug("grid reset")
}

// Params formats the grid dimensions as WxH(M).
func (g *Grid) Params() string {
	return fmt.Sprintf("%dx%d(%d)", g.width, g.height, g.mineCount)
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			fmt.Fprint(&b, g.cells[y*g.width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
