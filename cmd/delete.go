package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbook"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  string
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an asset" }
func (*deleteCmd) Usage() string {
	return `ab delete -id <id> [-y]

  Deletes an asset after confirmation, then displays the refreshed table.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the asset to delete")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ask := func() bool {
		return c.yes || confirm(bufio.NewScanner(os.Stdin), os.Stderr, fmt.Sprintf("Delete asset %s?", c.id))
	}
	done, err := a.session.Remove(ctx, assetbook.ID(c.id), ask)
	if err != nil {
		return subcommands.ExitFailure
	}
	if !done {
		fmt.Fprintln(os.Stderr, "Cancelled.")
	}
	return subcommands.ExitSuccess
}
