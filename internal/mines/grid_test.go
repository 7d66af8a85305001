package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// laidGrid builds a live grid with mines at exactly the given points.
func laidGrid(t *testing.T, width, height int, mines ...Point) *Grid {
	t.Helper()
	g, err := NewGrid(width, height, len(mines), WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	idx := make([]int, 0, len(mines))
	for _, p := range mines {
		require.True(t, g.InBounds(p))
		idx = append(idx, p.Y*width+p.X)
	}
	g.layMines(idx)
	g.state = Live
	return g
}

func TestNewGridRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		width, height, mineCount int
	}{
		{"zero width", 0, 9, 10},
		{"negative height", 9, -1, 10},
		{"no mines", 9, 9, 0},
		{"negative mines", 9, 9, -3},
		{"every cell mined", 9, 9, 81},
		{"more mines than cells", 3, 3, 12},
		{"no room around a corner", 3, 3, 6},
		{"2x2 is all corner", 2, 2, 1},
		{"single row", 5, 1, 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGrid(test.width, test.height, test.mineCount)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrConfig)
			var ce ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, test.mineCount, ce.MineCount)
		})
	}
}

func TestNewGridAcceptsValidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		width, height, mineCount int
	}{
		{"easy", 9, 9, 10},
		{"medium", 16, 16, 40},
		{"hard", 30, 16, 99},
		{"3x3 with one mine", 3, 3, 1},
		{"3x3 fully packed", 3, 3, 5},
		{"single row", 5, 1, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGrid(test.width, test.height, test.mineCount)
			require.NoError(t, err)
			assert.Equal(t, test.width, g.Width())
			assert.Equal(t, test.height, g.Height())
			assert.Equal(t, test.mineCount, g.MineCount())
			assert.Equal(t, Uninitialized, g.State())
			assert.False(t, g.IsInitialized())
			assert.False(t, g.IsClean())
			assert.Zero(t, g.MarkedMines())
			assert.Equal(t, test.mineCount, g.MinesLeft())
		})
	}
}

func TestCellOutOfBounds(t *testing.T) {
	g, err := NewGrid(9, 9, 10)
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {9, 0}, {0, -1}, {0, 9}, {9, 9}} {
		c, err := g.Cell(p)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrOutOfBounds, "point %s", p)
		var oob OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, p, oob.Point)
	}

	c, err := g.Cell(Point{8, 8})
	require.NoError(t, err)
	assert.Equal(t, Point{8, 8}, c.Point())
}

func TestCellCoordinates(t *testing.T) {
	g, err := NewGrid(4, 3, 1)
	require.NoError(t, err)
	for y := range 3 {
		for x := range 4 {
			c, err := g.Cell(Point{x, y})
			require.NoError(t, err)
			assert.Equal(t, x, c.X())
			assert.Equal(t, y, c.Y())
		}
	}
}

func points(cells []*Cell) []Point {
	ps := make([]Point, 0, len(cells))
	for _, c := range cells {
		ps = append(ps, c.Point())
	}
	return ps
}

func TestNeighbors(t *testing.T) {
	g, err := NewGrid(4, 3, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want []Point
	}{
		{"top left corner", 0, 0, []Point{{1, 0}, {0, 1}, {1, 1}}},
		{"bottom right corner", 3, 2, []Point{{2, 1}, {3, 1}, {2, 2}}},
		{"top edge", 1, 0, []Point{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{"inner", 1, 1, []Point{
			{0, 0}, {1, 0}, {2, 0},
			{0, 1}, {2, 1},
			{0, 2}, {1, 2}, {2, 2},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, points(g.Neighbors(test.x, test.y)))
		})
	}
}

func TestReset(t *testing.T) {
	wall := make([]Point, 0, 9)
	for y := range 9 {
		wall = append(wall, Point{4, y})
	}
	g := laidGrid(t, 9, 9, wall...)

	_, err := g.Reveal(Point{0, 0})
	require.NoError(t, err)
	_, err = g.ToggleMark(Point{8, 8})
	require.NoError(t, err)
	require.Equal(t, 1, g.MarkedMines())
	require.Equal(t, Live, g.State())

	old, err := g.Cell(Point{0, 0})
	require.NoError(t, err)

	g.Reset()

	fresh, err := NewGrid(9, 9, 9)
	require.NoError(t, err)

	assert.Equal(t, Uninitialized, g.State())
	assert.False(t, g.IsInitialized())
	assert.Zero(t, g.MarkedMines())
	assert.Equal(t, 9, g.MinesLeft())
	assert.Empty(t, g.Mines())
	assert.Equal(t, fresh.cells, g.cells)
	assert.Equal(t, fresh.String(), g.String())

	c, err := g.Cell(Point{0, 0})
	require.NoError(t, err)
	assert.NotSame(t, old, c)
	assert.True(t, old.IsRevealed(), "detached cells keep their old state")
}

func TestMinesLeft(t *testing.T) {
	g := laidGrid(t, 4, 4, Point{3, 3}, Point{3, 2})

	assert.Equal(t, 2, g.MinesLeft())
	for _, p := range []Point{{3, 3}, {3, 2}, {0, 3}} {
		_, err := g.ToggleMark(p)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, g.MarkedMines())
	assert.Equal(t, -1, g.MinesLeft())
}

func TestMines(t *testing.T) {
	g := laidGrid(t, 4, 4, Point{3, 3}, Point{0, 3})
	assert.Equal(t, []Point{{0, 3}, {3, 3}}, points(g.Mines()))
}
