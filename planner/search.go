package planner

// Plan searches for an action sequence that cleans every dirty cell of p.
//
// One loop serves both strategies; only the frontier discipline differs:
//
//  1. Push the start state with cost 0 and an empty path.
//  2. While the frontier is non-empty, pop an entry.
//     a. If its state has not been visited, mark it visited and count it as expanded.
//     b. If its state has no dirty cells, return the path (Found == true).
//     c. Otherwise push every successor that has not been visited, with
//     cost+1 under UniformCost, and count each push as generated.
//  3. An exhausted frontier yields Found == false.
//
// A state may sit on the frontier several times before its first pop; later
// pops of the same state skip step (a) but still run (b) and (c).
//
// Plan returns an error only for a nil problem or an unknown strategy.
// The frontier, visited set and counters are local to the call.
func Plan(p *Problem, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if cfg.Strategy != UniformCost && cfg.Strategy != DepthFirst {
		return Result{}, ErrUnknownStrategy
	}

	r := &runner{
		problem: p,
		options: cfg,
		front:   newFrontier(cfg.Strategy),
		visited: make(map[State]struct{}),
	}

	return r.run(), nil
}

// runner holds the mutable state of a single Plan call.
type runner struct {
	problem   *Problem
	options   Options
	front     frontier
	visited   map[State]struct{}
	seq       uint64
	generated int
	expanded  int
}

// run is the frontier loop.
func (r *runner) run() Result {
	r.push(entry{state: r.problem.Start()})

	for r.front.Len() > 0 {
		cur := r.front.pop()

		if _, seen := r.visited[cur.state]; !seen {
			r.visited[cur.state] = struct{}{}
			r.expanded++
			if r.options.OnExpand != nil {
				r.options.OnExpand(cur.state)
			}
		}

		if cur.state.Terminal() {
			return Result{
				Found:     true,
				Actions:   cur.path.actions(),
				Generated: r.generated,
				Expanded:  r.expanded,
			}
		}

		for _, sc := range r.problem.Successors(cur.state) {
			if _, seen := r.visited[sc.State]; seen {
				continue
			}
			cost := cur.cost
			if r.options.Strategy == UniformCost {
				cost++
			}
			r.push(entry{cost: cost, state: sc.State, path: cur.path.extend(sc.Action)})
			r.generated++
			if r.options.OnGenerate != nil {
				r.options.OnGenerate(sc.State, sc.Action)
			}
		}
	}

	return Result{Generated: r.generated, Expanded: r.expanded}
}

// push stamps e with the next sequence number and adds it to the frontier.
func (r *runner) push(e entry) {
	e.seq = r.seq
	r.seq++
	r.front.push(e)
}
