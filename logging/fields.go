package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/vacuum/gridgraph"
	"github.com/katalvlaran/vacuum/planner"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Strategy adds the search strategy.
func Strategy(s planner.Strategy) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("strategy", s.String())
	}
}

// World adds the world file path.
func World(path string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("world", path)
	}
}

// Dimensions adds grid width and height.
func Dimensions(width, height int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("width", width).Int("height", height)
	}
}

// Goals adds the number of dirty cells.
func Goals(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("goals", n)
	}
}

// Regions adds the number of 4-connected open regions.
func Regions(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("regions", n)
	}
}

// Cell adds a grid position.
func Cell(p gridgraph.Position) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("row", p.Row).Int("col", p.Col)
	}
}

// Action adds a single action label.
func Action(a planner.Action) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("action", a.String())
	}
}

// Dirty adds the number of dirty cells left in a state.
func Dirty(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("dirty", n)
	}
}

// Outcome adds the search counters and whether a plan was found.
func Outcome(res planner.Result) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("found", res.Found).
			Int("plan_length", len(res.Actions)).
			Int("generated", res.Generated).
			Int("expanded", res.Expanded)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
