// Package cmd implements the CLI application to run and manage wealth
// projections.
package cmd

import (
	"flag"

	"github.com/etnz/brickfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&seriesCmd{}, "projections")
	c.Register(&stockCmd{}, "projections")

	c.Register(&saveCmd{}, "scenarios")
	c.Register(&listCmd{}, "scenarios")
	c.Register(&showCmd{}, "scenarios")
	c.Register(&renameCmd{}, "scenarios")
	c.Register(&rmCmd{}, "scenarios")

	c.Register(&assistCmd{}, "advisory")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", ".scenarios", "Path to the scenario store folder")
var owner = flag.String("owner", "local", "Owner whose scenarios are read and written")

// OpenStore is the central function to open the scenario store.
func OpenStore() *brickfolio.ScenarioStore {
	return brickfolio.NewScenarioStore(*storePath)
}
