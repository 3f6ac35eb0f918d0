// Package gridgraph treats a rectangular 2D grid of open and wall cells as an
// implicit graph whose vertices are the open cells and whose edges join
// orthogonal neighbours.
//
// What:
//
//   - GridGraph wraps an immutable [][]CellKind (Open or Wall).
//   - Position addresses a cell by (Row, Col); row 0 is the top row.
//   - Offsets lists the four cardinal steps in the fixed order N, E, S, W.
//   - ConnectedComponents groups open cells into 4-connected regions.
//   - Reachable reports whether one open cell can be walked to from another.
//
// Why:
//
//   - Agent worlds: legality of a move is "in bounds and not a wall".
//   - Diagnostics: dirty cells sealed off by walls can be flagged before planning.
//
// Complexity:
//
//   - InBounds, Kind, IsOpen, Index, Coordinate: O(1).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - Reachable:           O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a Position lies outside the grid.
package gridgraph
