package world

import (
	"errors"

	"github.com/katalvlaran/vacuum/gridgraph"
)

// Sentinel errors returned by Load and Parse.
var (
	// ErrBadExtension indicates the world path does not end in ".txt".
	ErrBadExtension = errors.New("world file must be a .txt file")

	// ErrNotFound indicates the world file does not exist.
	ErrNotFound = errors.New("world: file not found")

	// ErrUnreadable indicates the world file could not be opened or read.
	ErrUnreadable = errors.New("world: file cannot be read")

	// ErrBadDimensions indicates a missing or malformed column/row header.
	ErrBadDimensions = errors.New("world: invalid grid dimensions")

	// ErrRowCount indicates the number of grid rows differs from the header.
	ErrRowCount = errors.New("world: row count does not match header")

	// ErrRowWidth indicates a grid row whose length differs from the header.
	ErrRowWidth = errors.New("world: row width does not match header")

	// ErrNoStart indicates the grid has no '@' marker.
	ErrNoStart = errors.New("world: start marker '@' missing")

	// ErrMultipleStarts indicates the grid has more than one '@' marker.
	ErrMultipleStarts = errors.New("world: more than one start marker '@'")
)

// Cell alphabet of the world file.
const (
	WallRune  = '#'
	StartRune = '@'
	DirtyRune = '*'
)

// Extension is the required suffix of world file paths.
const Extension = ".txt"

// World is a parsed vacuum world. Goals are listed in row-major order.
type World struct {
	Grid  *gridgraph.GridGraph
	Start gridgraph.Position
	Goals []gridgraph.Position
}
