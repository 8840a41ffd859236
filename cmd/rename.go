package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// renameCmd holds the flags for the 'rename' subcommand.
type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a saved scenario" }
func (*renameCmd) Usage() string {
	return `brick rename <old-name> <new-name>

  Renames one of the owner's saved scenarios. The new name must not be
  taken.
`
}

func (*renameCmd) SetFlags(_ *flag.FlagSet) {}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "rename takes exactly two arguments: <old-name> <new-name>")
		return subcommands.ExitUsageError
	}
	oldName, newName := f.Arg(0), f.Arg(1)
	if err := OpenStore().Rename(*owner, oldName, newName); err != nil {
		fmt.Fprintf(os.Stderr, "Error renaming scenario %q: %v\n", oldName, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully renamed scenario %q to %q\n", oldName, newName)
	return subcommands.ExitSuccess
}
