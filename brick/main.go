package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/brickfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It must be
// kept in sync with cmd.Register.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"store": predict.Dirs("*"),
		"owner": predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"project": {Flags: propertyPredictors(map[string]complete.Predictor{
			"horizon": predict.Nothing,
		})},
		"series": {Flags: propertyPredictors(nil)},
		"stock": {Flags: propertyPredictors(map[string]complete.Predictor{
			"dividend-yield": predict.Nothing,
			"stock-discount": predict.Nothing,
			"stock-growth":   predict.Nothing,
			"drip":           predict.Set{"true", "false"},
			"approved":       predict.Nothing,
		})},
		"save": {Flags: propertyPredictors(map[string]complete.Predictor{
			"name":           predict.Nothing,
			"with-stock":     predict.Set{"true", "false"},
			"dividend-yield": predict.Nothing,
			"stock-discount": predict.Nothing,
			"stock-growth":   predict.Nothing,
			"drip":           predict.Set{"true", "false"},
			"approved":       predict.Nothing,
		})},
		"list": {},
		"show": {Flags: map[string]complete.Predictor{
			"name": predict.Nothing,
			"q":    predict.Nothing,
		}},
		"rename": {},
		"rm":     {},
		"assist": {},
	},
}

// propertyPredictors returns the completion flags shared by every command
// that accepts property assumptions, merged with extra.
func propertyPredictors(extra map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{
		"price":        predict.Nothing,
		"value":        predict.Nothing,
		"discount":     predict.Nothing,
		"loan":         predict.Nothing,
		"rate":         predict.Nothing,
		"growth":       predict.Nothing,
		"yield":        predict.Nothing,
		"interval":     predict.Nothing,
		"max":          predict.Nothing,
		"tenure":       predict.Nothing,
		"expense":      predict.Nothing,
		"expense-rate": predict.Nothing,
		"start-year":   predict.Nothing,
		"currency":     predict.Set{"USD", "EUR", "GBP"},
	}
	for k, v := range extra {
		flags[k] = v
	}
	return flags
}

func main() {
	completion.Complete("brick")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
