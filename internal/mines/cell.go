package mines

import "strconv"

// Result tells whether an operation changed any state.
type Result uint8

const (
	NoOp Result = iota
	Changed
)

func (r Result) String() string {
	switch r {
	case NoOp:
		return "noop"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

type Color uint8

const (
	White Color = iota
	Black
	Slate     // concealed cell
	Scarlet   // marked cell, mine
	LightGray // revealed cell
	Blue
	Green
	Red
	Navy
	Maroon
	Teal
	DarkGray
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Slate:
		return "slate"
	case Scarlet:
		return "scarlet"
	case LightGray:
		return "lightgray"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	case Navy:
		return "navy"
	case Maroon:
		return "maroon"
	case Teal:
		return "teal"
	case DarkGray:
		return "darkgray"
	default:
		return "unknown"
	}
}

type Palette struct {
	Background Color
	Text       Color
}

var (
	ConcealedPalette = Palette{Background: Slate, Text: White}
	MarkedPalette    = Palette{Background: Scarlet, Text: White}
)

// countColors[n] is the text color of a revealed cell with n mined neighbors.
var countColors = [9]Color{
	LightGray, Blue, Green, Red, Navy, Maroon, Teal, Black, DarkGray,
}

// Cell is a single square of a [Grid]. A cell is either concealed, marked as
// a suspected mine or revealed; marked and revealed never hold at once.
type Cell struct {
	x, y             int
	mine             bool
	revealed         bool
	marked           bool
	neighboringMines int
}

func (c *Cell) X() int { return c.x }

func (c *Cell) Y() int { return c.y }

func (c *Cell) Point() Point { return Point{c.x, c.y} }

func (c *Cell) IsMine() bool { return c.mine }

func (c *Cell) IsRevealed() bool { return c.revealed }

func (c *Cell) IsMarked() bool { return c.marked }

func (c *Cell) NeighboringMines() int { return c.neighboringMines }

func (c *Cell) HasNoNeighboringMines() bool {
	return c.neighboringMines == 0 && !c.mine
}

// Mark flags a concealed cell as a suspected mine.
func (c *Cell) Mark() Result {
	if c.revealed || c.marked {
		return NoOp
	}
	c.marked = true
	return Changed
}

func (c *Cell) Unmark() Result {
	if c.revealed || !c.marked {
		return NoOp
	}
	c.marked = false
	return Changed
}

// Reveal opens the cell, dropping its mark if it had one.
func (c *Cell) Reveal() Result {
	if c.revealed {
		return NoOp
	}
	c.revealed = true
	c.marked = false
	return Changed
}

// Label is the text shown on the cell once it is revealed.
func (c *Cell) Label() string {
	switch {
	case c.mine:
		return "*"
	case c.neighboringMines == 0:
		return ""
	default:
		return strconv.Itoa(c.neighboringMines)
	}
}

// Palette is the colors of the cell once it is revealed.
func (c *Cell) Palette() Palette {
	if c.mine {
		return Palette{Background: Scarlet, Text: Black}
	}
	return Palette{Background: LightGray, Text: countColors[c.neighboringMines]}
}

// Appearance is the colors the cell should be drawn with right now.
func (c *Cell) Appearance() Palette {
	switch {
	case c.revealed:
		return c.Palette()
	case c.marked:
		return MarkedPalette
	default:
		return ConcealedPalette
	}
}

// Cell implements [fmt.Stringer]
func (c *Cell) String() string {
	switch {
	case c.marked:
		return "F"
	case !c.revealed:
		return "#"
	}
	if label := c.Label(); label != "" {
		return label
	}
	return "."
}
