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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	property propertyFlags
	horizon  int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "run a property portfolio projection" }
func (*projectCmd) Usage() string {
	return `brick project [-price <amount>] [-loan <amount>] [-rate <percent>] [...]

  Runs the deterministic property projection and displays the derived
  scalars and the 10/20/30-year milestones. With -horizon, displays the
  aggregate at that single horizon instead.

Usage Examples:
# Ten 500k properties, one per year, 4% mortgage over 30 years.
$ brick project -price 500000 -loan 500000 -rate 4 -growth 3 -yield 8

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.property.SetFlags(f)
	f.IntVar(&c.horizon, "horizon", 0, "Single horizon in years (0 shows the 10/20/30 milestones)")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.property.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	a := c.property.Assumptions()

	if c.horizon > 0 {
		r := brickfolio.SimulateHorizon(a, c.horizon)
		fmt.Printf("Year %d: %d properties\n", r.Year, r.PropertiesOwned)
		fmt.Printf("  asset value:          %s\n", brickfolio.M(r.TotalAssetValue, a.Currency))
		fmt.Printf("  loan balance:         %s\n", brickfolio.M(r.TotalLoanBalance, a.Currency))
		fmt.Printf("  cumulative cash flow: %s\n", brickfolio.M(r.CumulativeCashFlow, a.Currency))
		fmt.Printf("  net equity:           %s\n", brickfolio.M(r.NetEquity, a.Currency))
		return subcommands.ExitSuccess
	}

	full := brickfolio.Simulate(a)
	printMarkdown(renderer.SummaryMarkdown(full))
	return subcommands.ExitSuccess
}
