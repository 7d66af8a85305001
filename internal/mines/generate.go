package mines

import "github.com/sirupsen/logrus"

// Generate places the mines, none of which is at safe or within one square
// of it, and computes every cell's neighbor count. It may only be called
// once per game.
func (g *Grid) Generate(safe Point) error {
	if g.state != Uninitialized {
		return AlreadyInitializedError{g.width, g.height, g.mineCount}
	}
	if !g.InBounds(safe) {
		return OutOfBoundsError{Point: safe, Width: g.width, Height: g.height}
	}

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, len(g.cells))
	for y := range g.height {
		for x := range g.width {
			if absDiff(safe.Y, y) > 1 || absDiff(safe.X, x) > 1 {
				candidates = append(candidates, y*g.width+x)
			}
		}
	}
	if len(candidates) < g.mineCount {
		return ConfigError{
			Width: g.width, Height: g.height, MineCount: g.mineCount,
			message: "not enough room for mines around " + safe.String(),
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	mines := make([]int, 0, g.mineCount)
	k := len(candidates)
	for range g.mineCount {
		i := g.rnd.IntN(k)
		mines = append(mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	// drop marks placed before there were any mines
	for _, c := range g.cells {
		c.marked = false
	}
	g.layMines(mines)
	g.state = Live

	Log.WithFields(logrus.Fields{
		"grid": g.Params(),
		"safe": safe.String(),
	}).Debug("mines placed")

	return nil
}

// layMines puts a mine on every listed cell index and recounts neighbors.
func (g *Grid) layMines(mines []int) {
	for _, i := range mines {
		g.cells[i].mine = true
	}
	for _, c := range g.cells {
		n := 0
		for _, neighbor := range g.Neighbors(c.x, c.y) {
			if neighbor.mine {
				n++
			}
		}
		c.neighboringMines = n
	}
}
