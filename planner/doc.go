// Package planner plans a route for a single vacuum agent that must clean
// every dirty cell of a static grid world, using uninformed graph search.
//
// What:
//
//   - State pairs the agent Position with the GoalSet of cells still dirty.
//     Two states are equal iff both parts are equal; GoalSet is a fixed-size
//     bitset over a stable enumeration of the dirty cells, so State is a
//     comparable value and serves directly as the visited-set key.
//   - Problem binds the grid, the start cell and the goal enumeration, and
//     generates successors in the fixed order North, East, South, West, Vacuum.
//   - Plan runs one frontier-driven loop shared by two strategies:
//     UniformCost (min-heap on step cost, insertion order breaks ties) and
//     DepthFirst (LIFO stack). The loop owns the frontier, the visited set and
//     the generated/expanded counters for the duration of a single call.
//   - Replay and Verify execute an action sequence against the start state.
//
// Why:
//
//   - Positions alone are not enough to deduplicate: reaching a cell with a
//     different set of remaining dirt is a different problem state.
//   - UniformCost is optimal under unit action cost; DepthFirst is not, but
//     the global visited set keeps it from looping on cyclic grids.
//
// Complexity:
//
//   - States:  at most W·H·2^G for G goal cells.
//   - Time:    O(S log S) for UniformCost, O(S) for DepthFirst, S = states pushed.
//   - Memory:  O(S) for the frontier and visited set; paths share prefixes.
//
// Errors:
//
//   - ErrNilGrid, ErrStartInvalid, ErrGoalInvalid, ErrTooManyGoals from NewProblem.
//   - ErrNilProblem, ErrUnknownStrategy from Plan.
//   - ErrUnknownAction from ParseAction, ErrIllegalAction and ErrGoalsRemaining from Replay/Verify.
//
// Exhausting the frontier is not an error: Plan returns a Result with Found == false.
package planner
