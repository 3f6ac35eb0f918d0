package planner_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vacuum/gridgraph"
	"github.com/katalvlaran/vacuum/planner"
	"github.com/katalvlaran/vacuum/world"
)

// problemFrom builds a Problem from world rows ('@' start, '*' dirty, '#' wall).
func problemFrom(t testing.TB, rows ...string) *planner.Problem {
	t.Helper()
	src := fmt.Sprintf("%d\n%d\n%s\n", len(rows[0]), len(rows), strings.Join(rows, "\n"))
	w, err := world.Parse(strings.NewReader(src))
	require.NoError(t, err)
	p, err := planner.NewProblem(w.Grid, w.Start, w.Goals)
	require.NoError(t, err)

	return p
}

// randomRows returns an h×w world with the start at a random open cell,
// up to maxGoals dirty cells and roughly one wall in four cells.
func randomRows(rng *rand.Rand, h, w, maxGoals int) []string {
	cells := make([][]byte, h)
	for r := range cells {
		cells[r] = make([]byte, w)
		for c := range cells[r] {
			cells[r][c] = '.'
			if rng.Intn(4) == 0 {
				cells[r][c] = '#'
			}
		}
	}
	cells[rng.Intn(h)][rng.Intn(w)] = '@'
	for i := rng.Intn(maxGoals + 1); i > 0; i-- {
		r, c := rng.Intn(h), rng.Intn(w)
		if cells[r][c] != '@' {
			cells[r][c] = '*'
		}
	}
	rows := make([]string, h)
	for r := range cells {
		rows[r] = string(cells[r])
	}

	return rows
}

// minActions is an independent breadth-first reference: the fewest moves and
// vacuums that clean every dirty cell, or -1 if impossible. States are keyed by
// position plus the sorted list of dirty cells.
func minActions(p *planner.Problem) int {
	type node struct {
		pos   gridgraph.Position
		dirty []gridgraph.Position
	}
	key := func(n node) string { return fmt.Sprint(n.pos, n.dirty) }

	start := node{pos: p.Start().Pos, dirty: p.Goals()}
	dist := map[string]int{key(start): 0}
	queue := []node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[key(cur)]
		if len(cur.dirty) == 0 {
			return d
		}
		var next []node
		for _, q := range p.Grid().Neighbors(cur.pos) {
			next = append(next, node{pos: q, dirty: cur.dirty})
		}
		for i, g := range cur.dirty {
			if g == cur.pos {
				rest := append(append([]gridgraph.Position{}, cur.dirty[:i]...), cur.dirty[i+1:]...)
				next = append(next, node{pos: cur.pos, dirty: rest})
			}
		}
		for _, n := range next {
			if _, ok := dist[key(n)]; !ok {
				dist[key(n)] = d + 1
				queue = append(queue, n)
			}
		}
	}

	return -1
}
