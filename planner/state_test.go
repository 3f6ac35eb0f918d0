package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vacuum/gridgraph"
	"github.com/katalvlaran/vacuum/planner"
)

func TestGoalSet_OrderIndependentEquality(t *testing.T) {
	p := problemFrom(t, "*@*.*")
	full := p.Start().Goals
	require.Equal(t, 3, full.Len())

	a := full.Without(0).Without(2)
	b := full.Without(2).Without(0)
	assert.Equal(t, a, b)
	assert.True(t, a == b, "GoalSet must compare by content")
	assert.Equal(t, []int{1}, a.Indices())
	assert.False(t, a.Empty())
	assert.True(t, a.Without(1).Empty())
}

func TestGoalSet_HighBits(t *testing.T) {
	var g planner.GoalSet
	assert.True(t, g.Empty())
	assert.False(t, g.Has(200))
	assert.Equal(t, 0, g.Len())
}

func TestState_DistinctByGoals(t *testing.T) {
	p := problemFrom(t, "@*")
	s := p.Start()
	cleaned := planner.State{Pos: s.Pos, Goals: s.Goals.Without(0)}

	visited := map[planner.State]bool{s: true}
	assert.False(t, visited[cleaned], "same cell with fewer goals must be a new state")
	assert.True(t, cleaned.Terminal())
	assert.False(t, s.Terminal())
}

func TestNewProblem_Enumeration(t *testing.T) {
	gg := problemFrom(t, "@...", "....").Grid()
	goals := []gridgraph.Position{{Row: 1, Col: 0}, {Row: 0, Col: 3}, {Row: 1, Col: 0}}

	p, err := planner.NewProblem(gg, gridgraph.Position{}, goals)
	require.NoError(t, err)
	// duplicates collapse, order is row-major
	assert.Equal(t, []gridgraph.Position{{Row: 0, Col: 3}, {Row: 1, Col: 0}}, p.Goals())
	assert.Equal(t, 2, p.Start().Goals.Len())
	assert.Equal(t, p.Goals(), p.Dirty(p.Start()))
}

func TestNewProblem_Errors(t *testing.T) {
	gg := problemFrom(t, "@.#").Grid()
	origin := gridgraph.Position{}

	cases := []struct {
		name  string
		grid  *gridgraph.GridGraph
		start gridgraph.Position
		goals []gridgraph.Position
		err   error
	}{
		{"NilGrid", nil, origin, nil, planner.ErrNilGrid},
		{"StartOutside", gg, gridgraph.Position{Row: 1, Col: 0}, nil, planner.ErrStartInvalid},
		{"StartOnWall", gg, gridgraph.Position{Row: 0, Col: 2}, nil, planner.ErrStartInvalid},
		{"GoalOnWall", gg, origin, []gridgraph.Position{{Row: 0, Col: 2}}, planner.ErrGoalInvalid},
		{"GoalOutside", gg, origin, []gridgraph.Position{{Row: 0, Col: 9}}, planner.ErrGoalInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.NewProblem(tc.grid, tc.start, tc.goals)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewProblem_TooManyGoals(t *testing.T) {
	cells := make([][]gridgraph.CellKind, 1)
	cells[0] = make([]gridgraph.CellKind, planner.MaxGoals+2)
	gg, err := gridgraph.NewGridGraph(cells)
	require.NoError(t, err)

	goals := make([]gridgraph.Position, 0, planner.MaxGoals+1)
	for c := 1; c <= planner.MaxGoals+1; c++ {
		goals = append(goals, gridgraph.Position{Row: 0, Col: c})
	}
	_, err = planner.NewProblem(gg, gridgraph.Position{}, goals)
	require.ErrorIs(t, err, planner.ErrTooManyGoals)

	p, err := planner.NewProblem(gg, gridgraph.Position{}, goals[:planner.MaxGoals])
	require.NoError(t, err)
	assert.Equal(t, planner.MaxGoals, p.Start().Goals.Len())
}

func TestAction_Labels(t *testing.T) {
	all := []planner.Action{planner.North, planner.East, planner.South, planner.West, planner.Vacuum}
	assert.Equal(t, []string{"N", "E", "S", "W", "V"}, planner.Labels(all))

	for _, a := range all {
		got, err := planner.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := planner.ParseAction("X")
	require.ErrorIs(t, err, planner.ErrUnknownAction)
}

func TestParseStrategy(t *testing.T) {
	s, err := planner.ParseStrategy("uniform-cost")
	require.NoError(t, err)
	assert.Equal(t, planner.UniformCost, s)

	s, err = planner.ParseStrategy("depth-first")
	require.NoError(t, err)
	assert.Equal(t, planner.DepthFirst, s)
	assert.Equal(t, "depth-first", s.String())

	_, err = planner.ParseStrategy("breadth-first")
	require.ErrorIs(t, err, planner.ErrUnknownStrategy)
}
