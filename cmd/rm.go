package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a saved scenario" }
func (*rmCmd) Usage() string {
	return `brick rm <name>

  Deletes one of the owner's saved scenarios.
`
}

func (*rmCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "rm takes exactly one argument: <name>")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	if err := OpenStore().Delete(*owner, name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting scenario %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully deleted scenario %q\n", name)
	return subcommands.ExitSuccess
}
