// Package cli provides the command-line front end of the vacuum planner.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// ErrUsage indicates the wrong number of positional arguments.
var ErrUsage = errors.New("Usage: planner takes 2 arguments-- <algorithm> <world-file>")

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	opts   *runOptions
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		opts:   &runOptions{},
	}

	app.root = &cobra.Command{
		Use:   "planner <algorithm> <world-file>",
		Short: "Plan a route that cleans every dirty cell of a grid world",
		Long: `planner searches a vacuum world for a sequence of moves (N, E, S, W)
and vacuum actions (V) that leaves no dirty cell behind.

Algorithms:
  uniform-cost   shortest plan, ties broken in N, E, S, W, V order
  depth-first    some valid plan, not necessarily the shortest

World files end in .txt: the column count on line 1, the row count on line 2,
then the rows. '#' is a wall, '@' the start, '*' a dirty cell.

Examples:
  planner uniform-cost worlds/room.txt
  planner depth-first worlds/room.txt --format yaml
  planner uniform-cost worlds/room.txt -c planner.yaml --log-level debug`,
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		Args:          exactArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, args[0], args[1])
		},
	}
	app.root.SetOut(app.stdout)
	app.root.SetErr(app.stderr)
	app.bindFlags()

	return app
}

// exactArgs reports ErrUsage unless exactly two positional arguments are given.
func exactArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	return nil
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
// A nil slice means no arguments, not os.Args.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// Fail prints err for the user. The usage line goes to stdout on its own;
// every other error goes to stderr with an "Error:" prefix.
func (a *App) Fail(err error) {
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(a.stdout, err)
		return
	}
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
}
