package mines

import "fmt"

type Point struct {
	X, Y int
}

// Point implements [fmt.Stringer]
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}
