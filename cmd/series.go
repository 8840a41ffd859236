package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/brickfolio"
	"github.com/etnz/brickfolio/renderer"
	"github.com/google/subcommands"
)

// seriesCmd holds the flags for the 'series' subcommand.
type seriesCmd struct {
	property propertyFlags
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the full year-by-year projection" }
func (*seriesCmd) Usage() string {
	return `brick series [-price <amount>] [-loan <amount>] [-rate <percent>] [...]

  Displays the year 0..30 projection series, a row per year: properties
  owned, asset value, loan balance, cash flow and net equity.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	c.property.SetFlags(f)
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.property.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	full := brickfolio.Simulate(c.property.Assumptions())
	printMarkdown(renderer.SeriesMarkdown(full))
	return subcommands.ExitSuccess
}
