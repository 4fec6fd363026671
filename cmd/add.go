package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbook"
	"github.com/google/subcommands"
)

type addCmd struct {
	form assetbook.Form
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "register a new asset" }
func (*addCmd) Usage() string {
	return `ab add -name <name> -amount <amount> [-q <quantity>] [-c <category>] [-d <description>]

  Registers a new asset, then displays the refreshed table.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.form = assetbook.DefaultForm()
	f.StringVar(&c.form.Name, "name", "", "Name of the asset")
	f.StringVar(&c.form.Amount, "amount", "", "Unit amount of the asset")
	f.StringVar(&c.form.Quantity, "q", c.form.Quantity, "Quantity held")
	f.StringVar(&c.form.Category, "c", c.form.Category, "Category: cash, deposit, stock, real-estate, fund or any other tag")
	f.StringVar(&c.form.Description, "d", "", "Free text description")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	in, err := c.form.Input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := a.session.Submit(ctx, in); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
