package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbook"
	"github.com/etnz/assetbook/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	local bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the total value per category" }
func (*summaryCmd) Usage() string {
	return `ab summary [-local]

  Displays the total value of all assets, and a breakdown per category.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "Compute the summary from the asset list instead of asking the service")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var s assetbook.Summary
	if c.local {
		assets, err := a.client.List(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		s = assetbook.Summarize(assets)
	} else {
		s, err = a.client.Summary(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	a.print(renderer.SummaryMarkdown(s, a.cfg.currency))
	return subcommands.ExitSuccess
}
