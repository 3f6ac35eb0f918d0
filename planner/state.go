package planner

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/vacuum/gridgraph"
)

// MaxGoals is the number of dirty cells a GoalSet can index.
const MaxGoals = 256

// GoalSet is a fixed-size bitset of remaining dirty cells. Bit i stands for
// the i-th goal of the owning Problem. The zero value is the empty set.
// GoalSet is comparable, so equality is set equality regardless of the
// order in which goals were removed.
type GoalSet [MaxGoals / 64]uint64

// fullGoalSet returns the set {0, ..., n-1}.
func fullGoalSet(n int) GoalSet {
	var g GoalSet
	for i := 0; i < n; i++ {
		g[i/64] |= 1 << (uint(i) % 64)
	}

	return g
}

// Has reports whether goal i is still dirty.
func (g GoalSet) Has(i int) bool {
	return g[i/64]&(1<<(uint(i)%64)) != 0
}

// Without returns g with goal i removed.
func (g GoalSet) Without(i int) GoalSet {
	g[i/64] &^= 1 << (uint(i) % 64)

	return g
}

// Len returns the number of dirty goals in g.
func (g GoalSet) Len() int {
	n := 0
	for _, w := range g {
		n += bits.OnesCount64(w)
	}

	return n
}

// Empty reports whether no goal remains.
func (g GoalSet) Empty() bool {
	return g == GoalSet{}
}

// Indices lists the goal indices in g in ascending order.
func (g GoalSet) Indices() []int {
	out := make([]int, 0, g.Len())
	for wi, w := range g {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*64+b)
			w &^= 1 << uint(b)
		}
	}

	return out
}

// State is a search state: where the agent stands and what is still dirty.
type State struct {
	Pos   gridgraph.Position
	Goals GoalSet
}

// Terminal reports whether every dirty cell has been cleaned.
func (s State) Terminal() bool {
	return s.Goals.Empty()
}

// String formats s as "(row,col) dirty=n".
func (s State) String() string {
	return fmt.Sprintf("%v dirty=%d", s.Pos, s.Goals.Len())
}

// Problem is an immutable planning instance: a grid, a start cell and a
// stable enumeration of the dirty cells. It is safe for concurrent use.
type Problem struct {
	grid  *gridgraph.GridGraph
	start gridgraph.Position
	goals []gridgraph.Position
	index map[gridgraph.Position]int
}

// NewProblem validates its inputs and enumerates goals in row-major order.
// Duplicate goal positions collapse into one.
//
// Errors:
//   - ErrNilGrid if grid is nil.
//   - ErrStartInvalid if start is out of bounds or on a wall.
//   - ErrGoalInvalid if a goal is out of bounds or on a wall.
//   - ErrTooManyGoals if more than MaxGoals distinct goals are given.
func NewProblem(grid *gridgraph.GridGraph, start gridgraph.Position, goals []gridgraph.Position) (*Problem, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !grid.IsOpen(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartInvalid, start)
	}

	index := make(map[gridgraph.Position]int, len(goals))
	uniq := make([]gridgraph.Position, 0, len(goals))
	for _, g := range goals {
		if !grid.IsOpen(g) {
			return nil, fmt.Errorf("%w: %v", ErrGoalInvalid, g)
		}
		if _, dup := index[g]; dup {
			continue
		}
		index[g] = -1
		uniq = append(uniq, g)
	}
	if len(uniq) > MaxGoals {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyGoals, len(uniq), MaxGoals)
	}

	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].Row != uniq[j].Row {
			return uniq[i].Row < uniq[j].Row
		}

		return uniq[i].Col < uniq[j].Col
	})
	for i, g := range uniq {
		index[g] = i
	}

	return &Problem{grid: grid, start: start, goals: uniq, index: index}, nil
}

// Grid returns the static grid.
func (p *Problem) Grid() *gridgraph.GridGraph { return p.grid }

// Goals returns the goal enumeration; bit i of a GoalSet refers to Goals()[i].
func (p *Problem) Goals() []gridgraph.Position {
	out := make([]gridgraph.Position, len(p.goals))
	copy(out, p.goals)

	return out
}

// Start returns the initial state: the start cell with every goal dirty.
func (p *Problem) Start() State {
	return State{Pos: p.start, Goals: fullGoalSet(len(p.goals))}
}

// Dirty lists the positions still dirty in s, in goal enumeration order.
func (p *Problem) Dirty(s State) []gridgraph.Position {
	idx := s.Goals.Indices()
	out := make([]gridgraph.Position, len(idx))
	for i, gi := range idx {
		out[i] = p.goals[gi]
	}

	return out
}

// goalAt returns the goal index of pos, if pos is a goal cell.
func (p *Problem) goalAt(pos gridgraph.Position) (int, bool) {
	i, ok := p.index[pos]

	return i, ok
}
