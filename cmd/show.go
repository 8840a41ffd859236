package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/brickfolio/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	name  string
	query string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a saved scenario" }
func (*showCmd) Usage() string {
	return `brick show -name <scenario> [-q <jsonpath>]

  Displays a saved scenario's reports. With -q, extracts a single value
  from the scenario's canonical JSON instead, e.g.:

$ brick show -name ten-units -q '$.results.year30.netEquity'

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the scenario to display")
	f.StringVar(&c.query, "q", "", "JSONPath expression over the scenario's canonical JSON")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "-name is required")
		return subcommands.ExitUsageError
	}
	sc, err := OpenStore().Get(*owner, c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario %q: %v\n", c.name, err)
		return subcommands.ExitFailure
	}

	if c.query != "" {
		raw, err := json.Marshal(sc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding scenario %q: %v\n", c.name, err)
			return subcommands.ExitFailure
		}
		var jobj any
		if err := json.Unmarshal(raw, &jobj); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding scenario %q: %v\n", c.name, err)
			return subcommands.ExitFailure
		}
		jval, err := jsonpath.Get(c.query, jobj)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.query, err)
			return subcommands.ExitFailure
		}
		// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
		// by this call I keep the first one if any
		if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
			jval = jlist[0]
		}
		fmt.Println(jval)
		return subcommands.ExitSuccess
	}

	if sc.Results == nil {
		sc.Recompute()
	}
	printMarkdown(renderer.SummaryMarkdown(sc.Results))
	if sc.StockResults != nil {
		printMarkdown(renderer.StockMarkdown(sc.StockResults, sc.Property.Currency))
	}
	return subcommands.ExitSuccess
}
