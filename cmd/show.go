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

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the details of one asset" }
func (*showCmd) Usage() string {
	return `ab show <id>

  Fetches the assets and displays all the fields of the one with the given identifier.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: show takes exactly one asset id")
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	asset, err := a.find(ctx, assetbook.ID(f.Arg(0)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.print(renderer.AssetMarkdown(asset, a.cfg.currency))
	return subcommands.ExitSuccess
}
