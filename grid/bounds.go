package grid

import "fmt"

// Bounds is the inclusive rectangular region [MinX, MaxX] x [MinY, MaxY]
// within which coordinates are valid.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether (x, y) lies within the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Width returns the number of valid x coordinates.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of valid y coordinates.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Area returns the total number of cells the bounds cover.
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// wellFormed reports whether each minimum is no greater than its maximum.
func (b Bounds) wellFormed() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d] x [%d, %d]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// Coord is a single (x, y) cell position.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
