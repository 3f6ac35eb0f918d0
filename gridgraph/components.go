package gridgraph

// ConnectedComponents finds all 4-connected regions of open cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to a Position, use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			p := Position{Row: r, Col: c}
			if !gg.IsOpen(p) || seen[gg.Index(p)] {
				continue
			}
			comps = append(comps, gg.flood(p, seen))
		}
	}

	return comps
}

// Reachable reports whether an agent standing on from can walk to to
// through open cells. Returns ErrOutOfBounds if either position is outside the grid.
// A wall endpoint is never reachable.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) Reachable(from, to Position) (bool, error) {
	if !gg.InBounds(from) || !gg.InBounds(to) {
		return false, ErrOutOfBounds
	}
	if !gg.IsOpen(from) || !gg.IsOpen(to) {
		return false, nil
	}
	seen := make([]bool, gg.Width*gg.Height)
	target := gg.Index(to)
	for _, idx := range gg.flood(from, seen) {
		if idx == target {
			return true, nil
		}
	}

	return false, nil
}

// flood runs a BFS from the open cell start, marking seen and returning the
// indices of every open cell in its component.
func (gg *GridGraph) flood(start Position, seen []bool) []int {
	i0 := gg.Index(start)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := gg.Coordinate(queue[qi])
		for _, d := range Offsets {
			v := u.Add(d)
			if !gg.IsOpen(v) {
				continue
			}
			vi := gg.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
