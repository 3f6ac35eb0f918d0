// Package world loads vacuum-world files into a gridgraph.GridGraph plus the
// agent's start cell and the set of dirty cells.
//
// File format:
//
//	<columns>
//	<rows>
//	<row 0>
//	...
//	<row rows-1>
//
// Every row must hold exactly <columns> characters. Cell alphabet:
//
//	'#'  wall
//	'@'  agent start (exactly one)
//	'*'  dirty cell (zero or more)
//	any other character is open floor
//
// Trailing blank lines and Windows line endings are tolerated.
//
// Errors:
//
//   - ErrBadExtension   path does not end in ".txt" (checked before any file access).
//   - ErrNotFound       the file does not exist.
//   - ErrUnreadable     the file exists but cannot be read.
//   - ErrBadDimensions  header lines are missing, not integers, or not positive.
//   - ErrRowCount       number of rows differs from the header.
//   - ErrRowWidth       a row's length differs from the header.
//   - ErrNoStart        no '@' marker.
//   - ErrMultipleStarts more than one '@' marker.
package world
