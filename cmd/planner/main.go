// Package main provides the entry point for the planner CLI.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/vacuum/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		app.Fail(err)
		os.Exit(1)
	}
}
