package planner

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates NewProblem received a nil grid.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrStartInvalid indicates the start cell is outside the grid or on a wall.
	ErrStartInvalid = errors.New("planner: start cell must be an open cell inside the grid")

	// ErrGoalInvalid indicates a dirty cell outside the grid or on a wall.
	ErrGoalInvalid = errors.New("planner: goal cell must be an open cell inside the grid")

	// ErrTooManyGoals indicates more dirty cells than a GoalSet can index.
	ErrTooManyGoals = errors.New("planner: too many goal cells")

	// ErrNilProblem indicates Plan received a nil *Problem.
	ErrNilProblem = errors.New("planner: problem is nil")

	// ErrUnknownStrategy indicates an unrecognised search strategy.
	ErrUnknownStrategy = errors.New("algorithm must be 'uniform-cost' or 'depth-first'")

	// ErrUnknownAction indicates an unrecognised action label.
	ErrUnknownAction = errors.New("planner: unknown action")

	// ErrIllegalAction indicates an action that cannot be applied in the current state.
	ErrIllegalAction = errors.New("planner: illegal action")

	// ErrGoalsRemaining indicates a replayed plan left dirty cells behind.
	ErrGoalsRemaining = errors.New("planner: plan leaves dirty cells")
)

// Action is one agent step.
type Action uint8

const (
	// North moves one row up.
	North Action = iota
	// East moves one column right.
	East
	// South moves one row down.
	South
	// West moves one column left.
	West
	// Vacuum cleans the current cell without moving.
	Vacuum
)

// moves maps gridgraph.Offsets indices to their actions.
var moves = [4]Action{North, East, South, West}

var actionLabels = [...]string{North: "N", East: "E", South: "S", West: "W", Vacuum: "V"}

// String returns the single-letter label: "N", "E", "S", "W" or "V".
func (a Action) String() string {
	if int(a) < len(actionLabels) {
		return actionLabels[a]
	}

	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction converts a single-letter label back into an Action.
func ParseAction(s string) (Action, error) {
	for a, label := range actionLabels {
		if label == s {
			return Action(a), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Labels renders actions as their single-letter labels.
func Labels(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}

	return out
}

// Strategy selects the frontier discipline.
type Strategy int

const (
	// UniformCost pops the cheapest entry first; equal costs pop in insertion order.
	UniformCost Strategy = iota
	// DepthFirst pops the most recently pushed entry first.
	DepthFirst
)

// String returns the command-line name of s.
func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "uniform-cost"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "uniform-cost" or "depth-first".
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "uniform-cost":
		return UniformCost, nil
	case "depth-first":
		return DepthFirst, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// Option configures Plan.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// Strategy is the frontier discipline. Default UniformCost.
	Strategy Strategy

	// OnExpand, if non-nil, is called the first time a state is popped.
	OnExpand func(s State)

	// OnGenerate, if non-nil, is called for every successor pushed onto the frontier.
	OnGenerate func(s State, a Action)
}

// DefaultOptions returns UniformCost with no hooks.
func DefaultOptions() Options {
	return Options{Strategy: UniformCost}
}

// WithStrategy selects the frontier discipline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnExpand installs a hook run on first expansion of each state.
func WithOnExpand(fn func(s State)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnGenerate installs a hook run on every push.
func WithOnGenerate(fn func(s State, a Action)) Option {
	return func(o *Options) {
		o.OnGenerate = fn
	}
}

// Result is the outcome of Plan.
//
// When Found is false the frontier was exhausted without reaching a state
// with no dirty cells; Actions is nil. The counters are filled in either way.
type Result struct {
	Found     bool
	Actions   []Action
	Generated int
	Expanded  int
}
