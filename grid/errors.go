package grid

import "fmt"

// InvalidBoundsError reports bounds whose minimum exceeds its maximum on
// either axis, or a resize that would drop an occupied cell.
type InvalidBoundsError struct {
	// Bounds is the rejected bounds.
	Bounds Bounds

	// Lost is the first occupied coordinate that the rejected resize would
	// exclude. It is nil when the bounds themselves are malformed.
	Lost *Coord
}

func (e *InvalidBoundsError) Error() string {
	if e.Lost != nil {
		return fmt.Sprintf("grid: resize to %s would lose data at %s",
			e.Bounds, *e.Lost)
	}

	return fmt.Sprintf("grid: invalid bounds %s: min exceeds max", e.Bounds)
}

// OutOfBoundsError reports a coordinate that lies outside the grid's current
// bounds.
type OutOfBoundsError struct {
	Coord  Coord
	Bounds Bounds
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: coordinate %s out of bounds %s",
		e.Coord, e.Bounds)
}
