package mines

import "github.com/sirupsen/logrus"

// Outcome describes the effect of a single move.
type Outcome struct {
	Result   Result
	State    State
	Revealed []*Cell // cells opened by the move, in order of discovery
}

func (g *Grid) outcome(revealed []*Cell) Outcome {
	res := NoOp
	if len(revealed) > 0 {
		res = Changed
	}
	return Outcome{Result: res, State: g.state, Revealed: revealed}
}

// Reveal opens the cell at p. The first reveal of a game places the mines
// around p. Opening a cell with no mined neighbors opens its neighbors too,
// transitively.
func (g *Grid) Reveal(p Point) (Outcome, error) {
	c, err := g.Cell(p)
	if err != nil {
		return g.outcome(nil), err
	}
	if g.state == Uninitialized {
		if err := g.Generate(p); err != nil {
			return g.outcome(nil), err
		}
	}
	if g.state.Over() || c.revealed || c.marked {
		return g.outcome(nil), nil
	}
	revealed := g.open(c)
	g.settle(c)
	return g.outcome(revealed), nil
}

/*
open reveals c and, when it has no mined neighbors, floods outwards through
other such cells. Every cell is queued at most once: it is revealed as it
enters the queue, and only concealed cells are queued.
*/
func (g *Grid) open(c *Cell) []*Cell {
	c.Reveal()
	if c.mine {
		g.state = Lost
		return []*Cell{c}
	}

	revealed := []*Cell{c}
	todo := newCelltodo(len(g.cells))
	todo.add(c.y*g.width + c.x)
	for !todo.empty() {
		cur := g.cells[todo.pop()]
		if !cur.HasNoNeighboringMines() {
			continue
		}
		for _, n := range g.Neighbors(cur.x, cur.y) {
			if n.revealed || n.marked {
				continue
			}
			n.Reveal()
			revealed = append(revealed, n)
			todo.add(n.y*g.width + n.x)
		}
	}
	return revealed
}

// settle moves a live grid to [Won] once it is clean and logs terminal
// transitions caused by a move at c.
func (g *Grid) settle(c *Cell) {
	if g.state == Live && g.IsClean() {
		g.state = Won
	}
	if g.state.Over() {
		Log.WithFields(logrus.Fields{
			"grid":  g.Params(),
			"cell":  c.Point().String(),
			"state": g.state.String(),
		}).Debug("game over")
	}
}

// ToggleMark marks a concealed cell as a suspected mine, or removes the
// mark. It does nothing before the mines are placed or after the game ends.
func (g *Grid) ToggleMark(p Point) (Outcome, error) {
	c, err := g.Cell(p)
	if err != nil {
		return g.outcome(nil), err
	}
	out := Outcome{Result: NoOp, State: g.state}
	if g.state != Live {
		return out, nil
	}
	if c.marked {
		out.Result = c.Unmark()
	} else {
		out.Result = c.Mark()
	}
	return out, nil
}

// Chord opens every concealed, unmarked neighbor of a revealed cell whose
// mine count is matched by the marks around it.
func (g *Grid) Chord(p Point) (Outcome, error) {
	c, err := g.Cell(p)
	if err != nil {
		return g.outcome(nil), err
	}
	if g.state != Live || !c.revealed || c.mine {
		return g.outcome(nil), nil
	}

	marks := 0
	var pending []*Cell
	for _, n := range g.Neighbors(c.x, c.y) {
		if n.marked {
			marks++
		} else if !n.revealed {
			pending = append(pending, n)
		}
	}
	if marks != c.neighboringMines {
		return g.outcome(nil), nil
	}

	var revealed []*Cell
	for _, n := range pending {
		if n.revealed {
			continue // opened by an earlier flood
		}
		revealed = append(revealed, g.open(n)...)
		if g.state != Live {
			break
		}
	}
	g.settle(c)
	return g.outcome(revealed), nil
}

// Forfeit ends a live game as lost and reveals the whole grid.
func (g *Grid) Forfeit() Outcome {
	if g.state != Live {
		return g.outcome(nil)
	}
	g.state = Lost
	Log.WithFields(logrus.Fields{"grid": g.Params()}).Debug("game forfeited")
	return g.outcome(g.RevealAll())
}

// RevealAll opens every cell of a finished game so the whole board can be
// shown. It does nothing while the game is still on.
func (g *Grid) RevealAll() []*Cell {
	if !g.state.Over() {
		return nil
	}
	var revealed []*Cell
	for _, c := range g.cells {
		if c.Reveal() == Changed {
			revealed = append(revealed, c)
		}
	}
	return revealed
}
