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

// saveCmd holds the flags for the 'save' subcommand.
type saveCmd struct {
	property  propertyFlags
	stock     stockFlags
	name      string
	withStock bool
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "run a projection and save it as a named scenario" }
func (*saveCmd) Usage() string {
	return `brick save -name <scenario> [-with-stock] [assumption flags...]

  Runs the projection and persists it as a named scenario for the
  current owner, inputs and results together. Saving an existing name
  updates it in place.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	c.property.SetFlags(f)
	c.stock.SetFlags(f)
	f.StringVar(&c.name, "name", "", "Name of the scenario to create or update")
	f.BoolVar(&c.withStock, "with-stock", false, "Include the stock reinvestment overlay")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "-name is required")
		return subcommands.ExitUsageError
	}
	if err := c.property.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	sc := &brickfolio.Scenario{
		Owner:    *owner,
		Name:     c.name,
		Property: c.property.Assumptions(),
	}
	if c.withStock {
		stock := c.stock.Assumptions()
		sc.Stock = &stock
	}
	sc.Recompute()
	sc.Summary = renderer.ContextSummary(sc)

	if err := OpenStore().Save(sc); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving scenario %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully saved scenario %q for owner %q\n", c.name, *owner)
	return subcommands.ExitSuccess
}
