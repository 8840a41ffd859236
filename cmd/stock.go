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

// stockCmd holds the flags for the 'stock' subcommand.
type stockCmd struct {
	property propertyFlags
	stock    stockFlags
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "run the stock reinvestment overlay" }
func (*stockCmd) Usage() string {
	return `brick stock [-dividend-yield <percent>] [-approved <amount>] [-drip] [...]

  Runs the property projection, then the stock reinvestment overlay on
  top of it: purchase cashback and positive cash flow are invested at a
  discounted price, with optional dividend reinvestment.

Usage Examples:
# 600k approved on 500k purchases: 100k cashback per property goes to stock.
$ brick stock -approved 600000 -dividend-yield 4 -stock-growth 7 -drip

`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	c.property.SetFlags(f)
	c.stock.SetFlags(f)
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.property.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	a := c.property.Assumptions()
	full := brickfolio.Simulate(a)
	res := brickfolio.SimulateStock(c.stock.Assumptions(), a, full)
	printMarkdown(renderer.StockMarkdown(res, a.Currency))
	return subcommands.ExitSuccess
}
