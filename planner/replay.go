package planner

import "fmt"

// Replay applies actions to the start state of p and returns the final state.
// It stops at the first action that is not legal in the state it is applied to
// and reports it as ErrIllegalAction with its zero-based step index.
func Replay(p *Problem, actions []Action) (State, error) {
	if p == nil {
		return State{}, ErrNilProblem
	}
	s := p.Start()
	for i, a := range actions {
		next, ok := p.apply(s, a)
		if !ok {
			return s, fmt.Errorf("%w: step %d %s at %v", ErrIllegalAction, i, a, s.Pos)
		}
		s = next
	}

	return s, nil
}

// Verify replays actions and checks that no dirty cell remains.
func Verify(p *Problem, actions []Action) error {
	end, err := Replay(p, actions)
	if err != nil {
		return err
	}
	if !end.Terminal() {
		return fmt.Errorf("%w: %v", ErrGoalsRemaining, p.Dirty(end))
	}

	return nil
}

// apply returns the successor of s reached by a, if a is legal in s.
func (p *Problem) apply(s State, a Action) (State, bool) {
	for _, sc := range p.Successors(s) {
		if sc.Action == a {
			return sc.State, true
		}
	}

	return s, false
}
