package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the owner's saved scenarios" }
func (*listCmd) Usage() string {
	return `brick list

  Lists the saved scenarios of the current owner, most basic facts
  first: name, property count and last update.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenarios, err := OpenStore().List(*owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing scenarios: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(scenarios) == 0 {
		fmt.Printf("No saved scenarios for owner %q\n", *owner)
		return subcommands.ExitSuccess
	}
	for _, s := range scenarios {
		fmt.Printf("%-20s %2d properties  updated %s\n", s.Name, s.Property.MaxProperties, s.UpdatedAt.Format("2006-01-02"))
	}
	return subcommands.ExitSuccess
}
