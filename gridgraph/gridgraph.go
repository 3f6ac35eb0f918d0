package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed [row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(cells [][]CellKind) (*GridGraph, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]CellKind, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]CellKind, w)
		copy(cp[r], cells[r])
	}

	return &GridGraph{Width: w, Height: h, cells: cp}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Kind returns the kind of the cell at p. Positions outside the grid are
// reported as Wall so that callers need a single check.
func (gg *GridGraph) Kind(p Position) CellKind {
	if !gg.InBounds(p) {
		return Wall
	}

	return gg.cells[p.Row][p.Col]
}

// IsOpen reports whether p is inside the grid and not a wall.
func (gg *GridGraph) IsOpen(p Position) bool {
	return gg.Kind(p) == Open
}

// Neighbors returns the open orthogonal neighbours of p in N, E, S, W order.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(Offsets))
	for _, d := range Offsets {
		if q := p.Add(d); gg.IsOpen(q) {
			out = append(out, q)
		}
	}

	return out
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(p Position) int {
	return p.Row*gg.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Position {
	return Position{Row: idx / gg.Width, Col: idx % gg.Width}
}
