package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/assetbook"
	"github.com/google/subcommands"
)

// editFlags maps the edit flags to form fields.
var editFlags = map[string]string{
	"name":   assetbook.FieldName,
	"amount": assetbook.FieldAmount,
	"q":      assetbook.FieldQuantity,
	"c":      assetbook.FieldCategory,
	"d":      assetbook.FieldDescription,
}

type editCmd struct {
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the fields of an asset" }
func (*editCmd) Usage() string {
	return `ab edit -id <id> [-name <name>] [-amount <amount>] [-q <quantity>] [-c <category>] [-d <description>]

  Replaces an asset with its current fields, changed by the given flags.
  Fields that are not given keep their current value.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the asset to edit")
	f.String("name", "", "New name")
	f.String("amount", "", "New unit amount")
	f.String("q", "", "New quantity")
	f.String("c", "", "New category")
	f.String("d", "", "New description")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	asset, err := a.find(ctx, assetbook.ID(c.id))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	editor := a.session.Editor()
	editor.Open(asset)
	f.Visit(func(fl *flag.Flag) {
		if field, ok := editFlags[fl.Name]; ok {
			// fields and flags are statically mapped.
			_ = editor.Set(field, fl.Value.String())
		}
	})
	if err := editor.Submit(ctx); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
