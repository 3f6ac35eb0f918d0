// Package vacuum plans routes for a single vacuum agent in a static grid world.
//
// The agent must visit and clean every dirty cell. Planning is uninformed
// graph search over states made of the agent position and the set of cells
// still dirty, with two frontier disciplines:
//
//   - uniform-cost: optimal plan length under unit action cost.
//   - depth-first:  some valid plan, found with global visited tracking.
//
// Packages:
//
//	gridgraph/: immutable open/wall grid, 4-neighbourhood, connectivity
//	world/    : world file loader (.txt, column/row header, '#', '@', '*')
//	planner/  : state model, successor generator, search engine, plan replay
//	report/   : text and YAML plan reporters
//	config/   : YAML configuration file
//	logging/  : structured logging
//	cli/      : command-line front end
//	cmd/planner: binary
//
// Quick ASCII example:
//
//	@.*
//
// uniform-cost plans E, E, V.
package vacuum
