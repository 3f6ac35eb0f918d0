package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vacuum/gridgraph"
	"github.com/katalvlaran/vacuum/planner"
)

func actionsOf(succ []planner.Successor) []planner.Action {
	out := make([]planner.Action, len(succ))
	for i, s := range succ {
		out[i] = s.Action
	}

	return out
}

func TestSuccessors_OrderAndVacuum(t *testing.T) {
	// no dirt: only the four moves, in N, E, S, W order
	p := problemFrom(t,
		"...",
		".@.",
		"...",
	)
	start := p.Start()
	assert.Empty(t, p.Goals())
	assert.Equal(t,
		[]planner.Action{planner.North, planner.East, planner.South, planner.West},
		actionsOf(p.Successors(start)))

	p = problemFrom(t,
		"*..",
		"@..",
		"...",
	)
	start = p.Start()
	moved := planner.State{Pos: gridgraph.Position{Row: 0, Col: 0}, Goals: start.Goals}
	succ := p.Successors(moved)
	assert.Equal(t, []planner.Action{planner.East, planner.South, planner.Vacuum}, actionsOf(succ))

	vac := succ[2].State
	assert.Equal(t, moved.Pos, vac.Pos, "vacuum never moves the agent")
	assert.True(t, vac.Terminal())
	for _, s := range succ[:2] {
		assert.Equal(t, start.Goals, s.State.Goals, "moves never change the goal set")
	}
}

func TestSuccessors_WallsAndBounds(t *testing.T) {
	p := problemFrom(t,
		"#.#",
		"#@#",
		"###",
	)
	succ := p.Successors(p.Start())
	assert.Equal(t, []planner.Action{planner.North}, actionsOf(succ))
	assert.Equal(t, gridgraph.Position{Row: 0, Col: 1}, succ[0].State.Pos)
}

func TestSuccessors_NoVacuumOnCleanCell(t *testing.T) {
	p := problemFrom(t, "@*")
	s := p.Start()
	clean := planner.State{Pos: gridgraph.Position{Row: 0, Col: 1}, Goals: s.Goals.Without(0)}
	assert.Equal(t, []planner.Action{planner.West}, actionsOf(p.Successors(clean)))
}

func TestSuccessors_Pure(t *testing.T) {
	p := problemFrom(t, "@*.", "...")
	s := p.Start()
	assert.Equal(t, p.Successors(s), p.Successors(s))
	assert.Equal(t, p.Start(), s)
}
