package planner

import "github.com/katalvlaran/vacuum/gridgraph"

// Successor is a state reachable in one action.
type Successor struct {
	State  State
	Action Action
}

// Successors returns every legal next state of s, in the fixed order
// North, East, South, West, Vacuum.
//
// A move is legal iff the target cell is inside the grid and not a wall; it
// carries the GoalSet over unchanged. Vacuum is legal iff the agent stands
// on a cell that is still dirty; it keeps the position and drops that goal.
// Successors has no side effects.
func (p *Problem) Successors(s State) []Successor {
	out := make([]Successor, 0, len(gridgraph.Offsets)+1)
	for i, d := range gridgraph.Offsets {
		next := s.Pos.Add(d)
		if !p.grid.IsOpen(next) {
			continue
		}
		out = append(out, Successor{
			State:  State{Pos: next, Goals: s.Goals},
			Action: moves[i],
		})
	}
	if gi, ok := p.goalAt(s.Pos); ok && s.Goals.Has(gi) {
		out = append(out, Successor{
			State:  State{Pos: s.Pos, Goals: s.Goals.Without(gi)},
			Action: Vacuum,
		})
	}

	return out
}
