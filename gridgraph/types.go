// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/vacuum.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)

// CellKind is the static content of a grid cell.
type CellKind uint8

const (
	// Open is walkable floor.
	Open CellKind = iota
	// Wall blocks movement.
	Wall
)

// String returns "open" or "wall".
func (k CellKind) String() string {
	if k == Wall {
		return "wall"
	}

	return "open"
}

// Position is a (row, column) pair. It is comparable and may be used as a map key.
type Position struct {
	Row, Col int
}

// Add returns p shifted by the offset d (row delta, column delta).
func (p Position) Add(d Offset) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Offset is a single orthogonal step.
type Offset struct {
	DRow, DCol int
}

// Offsets holds the four cardinal steps in the fixed order North, East, South, West.
// Callers that need deterministic neighbour order rely on this ordering.
var Offsets = [4]Offset{
	{DRow: -1, DCol: 0}, // North
	{DRow: 0, DCol: 1},  // East
	{DRow: 1, DCol: 0},  // South
	{DRow: 0, DCol: -1}, // West
}

// GridGraph is an immutable rectangular grid of cells.
// Width is the number of columns, Height the number of rows;
// cells[r][c] holds the kind of the cell at row r, column c.
type GridGraph struct {
	Width, Height int
	cells         [][]CellKind
}
