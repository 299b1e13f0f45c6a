// Package grid provides a dense, bounded, two-dimensional associative
// container. A Grid holds at most one element per integer coordinate pair
// within an inclusive rectangular bound, and can be resized in place as long
// as no occupied cell would fall outside the new bounds.
package grid

import (
	"github.com/rs/xid"

	"github.com/gridlab/cartesian/hooking"
)

// HookPosGridAdd marks when an element is stored into a cell.
var HookPosGridAdd = &hooking.HookPos{Name: "Grid Add"}

// HookPosGridRemove marks when an occupied cell is emptied.
var HookPosGridRemove = &hooking.HookPos{Name: "Grid Remove"}

// HookPosGridClear marks when every cell is emptied at once.
var HookPosGridClear = &hooking.HookPos{Name: "Grid Clear"}

// HookPosGridResize marks when the bounds and storage are replaced.
var HookPosGridResize = &hooking.HookPos{Name: "Grid Resize"}

// cell is a single storage slot. The ok flag distinguishes an empty cell from
// a stored zero value, so element types with no natural null representation
// are supported.
type cell[T any] struct {
	value T
	ok    bool
}

// A Grid is a bounded two-dimensional container holding at most one element
// of type T per integer coordinate pair. Storage is dense: every coordinate
// within the bounds maps to exactly one slot.
//
// A Grid expects an exclusive owner. It performs no internal locking; an
// embedding application that shares a Grid across goroutines must wrap it
// behind external synchronization.
type Grid[T any] struct {
	hooking.HookableBase

	name     string
	id       string
	bounds   Bounds
	cells    []cell[T]
	occupied int
}

// New creates an empty grid covering [minX, maxX] x [minY, maxY] inclusive.
// Bounds are allowed to be negative. New panics if the name does not follow
// the naming convention, and returns an *InvalidBoundsError if a minimum
// exceeds its maximum on either axis.
func New[T any](name string, minX, maxX, minY, maxY int) (*Grid[T], error) {
	NameMustBeValid(name)

	b := Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	if !b.wellFormed() {
		return nil, &InvalidBoundsError{Bounds: b}
	}

	return &Grid[T]{
		name:   name,
		id:     xid.New().String(),
		bounds: b,
		cells:  make([]cell[T], b.Area()),
	}, nil
}

// Name returns the name of the grid.
func (g *Grid[T]) Name() string {
	return g.name
}

// ID returns the unique instance ID of the grid.
func (g *Grid[T]) ID() string {
	return g.id
}

// Bounds returns the current bounds of the grid.
func (g *Grid[T]) Bounds() Bounds {
	return g.bounds
}

// Size returns the number of occupied cells.
func (g *Grid[T]) Size() int {
	return g.occupied
}

// Capacity returns the total number of cells within the current bounds.
func (g *Grid[T]) Capacity() int {
	return g.bounds.Area()
}

// slot maps an in-bounds coordinate to its index in the dense storage.
func (g *Grid[T]) slot(x, y int) int {
	return (y-g.bounds.MinY)*g.bounds.Width() + (x - g.bounds.MinX)
}

// Add stores element at (x, y), overwriting whatever was previously there.
// It returns an *OutOfBoundsError if (x, y) lies outside the current bounds,
// leaving the grid unmodified.
func (g *Grid[T]) Add(x, y int, element T) error {
	if !g.bounds.Contains(x, y) {
		return &OutOfBoundsError{Coord: Coord{X: x, Y: y}, Bounds: g.bounds}
	}

	s := g.slot(x, y)
	if !g.cells[s].ok {
		g.occupied++
	}
	g.cells[s] = cell[T]{value: element, ok: true}

	if g.NumHooks() > 0 {
		g.InvokeHook(hooking.HookCtx{
			Domain: g,
			Pos:    HookPosGridAdd,
			Item:   element,
			Detail: Coord{X: x, Y: y},
		})
	}

	return nil
}

// Get returns the element stored at (x, y). The second return value reports
// whether the cell is occupied; looking up an empty in-bounds cell is a
// successful call, not an error. Get returns an *OutOfBoundsError if (x, y)
// lies outside the current bounds.
func (g *Grid[T]) Get(x, y int) (T, bool, error) {
	if !g.bounds.Contains(x, y) {
		var zero T
		return zero, false,
			&OutOfBoundsError{Coord: Coord{X: x, Y: y}, Bounds: g.bounds}
	}

	c := g.cells[g.slot(x, y)]

	return c.value, c.ok, nil
}

// Remove empties the cell at (x, y). It reports true if the cell was
// occupied, and false, without changing anything, if the cell was already
// empty. Remove returns an *OutOfBoundsError if (x, y) lies outside the
// current bounds.
func (g *Grid[T]) Remove(x, y int) (bool, error) {
	if !g.bounds.Contains(x, y) {
		return false,
			&OutOfBoundsError{Coord: Coord{X: x, Y: y}, Bounds: g.bounds}
	}

	s := g.slot(x, y)
	if !g.cells[s].ok {
		return false, nil
	}

	removed := g.cells[s].value
	g.cells[s] = cell[T]{}
	g.occupied--

	if g.NumHooks() > 0 {
		g.InvokeHook(hooking.HookCtx{
			Domain: g,
			Pos:    HookPosGridRemove,
			Item:   removed,
			Detail: Coord{X: x, Y: y},
		})
	}

	return true, nil
}

// Clear empties every cell by replacing the storage wholesale. The bounds
// are unchanged.
func (g *Grid[T]) Clear() {
	g.cells = make([]cell[T], g.bounds.Area())
	g.occupied = 0

	if g.NumHooks() > 0 {
		g.InvokeHook(hooking.HookCtx{
			Domain: g,
			Pos:    HookPosGridClear,
		})
	}
}

// Resize changes the bounds of the grid, keeping every stored element at its
// (x, y) coordinate. The new bounds may grow or shrink either axis in any
// combination of directions.
//
// Resize is two-phase: it first proves that no occupied cell falls outside
// the new bounds, and only then allocates the replacement storage and commits
// bounds and storage together. It returns an *InvalidBoundsError if a new
// minimum exceeds its maximum, or if an occupied cell would be excluded; a
// failed resize leaves the grid exactly as it was.
func (g *Grid[T]) Resize(minX, maxX, minY, maxY int) error {
	nb := Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	if !nb.wellFormed() {
		return &InvalidBoundsError{Bounds: nb}
	}

	for x := g.bounds.MinX; x <= g.bounds.MaxX; x++ {
		for y := g.bounds.MinY; y <= g.bounds.MaxY; y++ {
			if g.cells[g.slot(x, y)].ok && !nb.Contains(x, y) {
				return &InvalidBoundsError{
					Bounds: nb,
					Lost:   &Coord{X: x, Y: y},
				}
			}
		}
	}

	cells := make([]cell[T], nb.Area())
	for x := g.bounds.MinX; x <= g.bounds.MaxX; x++ {
		for y := g.bounds.MinY; y <= g.bounds.MaxY; y++ {
			if c := g.cells[g.slot(x, y)]; c.ok {
				cells[(y-nb.MinY)*nb.Width()+(x-nb.MinX)] = c
			}
		}
	}

	previous := g.bounds
	g.bounds = nb
	g.cells = cells

	if g.NumHooks() > 0 {
		g.InvokeHook(hooking.HookCtx{
			Domain: g,
			Pos:    HookPosGridResize,
			Item:   nb,
			Detail: previous,
		})
	}

	return nil
}
