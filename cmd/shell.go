package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/etnz/assetbook"
	"github.com/etnz/assetbook/renderer"
	"github.com/google/subcommands"
)

const shellHelp = `Commands:
  ls                      display the table again
  refresh                 fetch all assets from the service
  show <row>              display the details of a row
  add <field>=<value>...  register a new asset
  edit <row>              start editing a row
  set <field> <value>     change a field of the edited asset
  form                    display the edited asset
  save                    send the edited asset
  cancel                  stop editing
  rm <row>                delete a row, after confirmation
  summary                 display the total value per category
  banner                  display the last message, if still visible
  help                    display this help
  quit                    leave the shell

Fields are: name, amount, quantity, category, description.
Values with spaces must be quoted.
`

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage assets interactively" }
func (*shellCmd) Usage() string {
	return `ab shell

  Starts an interactive session: the table is fetched once, then every
  change is followed by a full refresh. Type 'help' for the commands.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := a.shell(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var errQuit = errors.New("quit")

// shell runs the interactive loop on in until it is exhausted or the user quits.
func (a *app) shell(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	// a failed first fetch is already reported, the user can 'refresh'.
	_ = a.session.FetchAll(ctx)

	for {
		fmt.Fprint(a.errOut, a.prompt())
		if !scanner.Scan() {
			fmt.Fprintln(a.errOut)
			return scanner.Err()
		}
		args, err := splitArgs(scanner.Text())
		if err != nil {
			fmt.Fprintf(a.errOut, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		err = a.exec(ctx, scanner, args[0], args[1:])
		if errors.Is(err, errQuit) {
			return nil
		}
		var apiErr *assetbook.APIError
		var netErr *assetbook.TransportError
		if err != nil && !errors.As(err, &apiErr) && !errors.As(err, &netErr) {
			// service errors are already on the banner.
			fmt.Fprintf(a.errOut, "Error: %v\n", err)
		}
	}
}

func (a *app) prompt() string {
	if e := a.session.Editor(); e.State() == assetbook.Editing {
		return fmt.Sprintf("ab [edit %s]> ", e.ID())
	}
	return "ab> "
}

// exec runs a single shell command.
func (a *app) exec(ctx context.Context, in *bufio.Scanner, name string, args []string) error {
	editor := a.session.Editor()
	switch name {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		fmt.Fprint(a.out, shellHelp)
	case "ls", "list":
		a.session.Render()
	case "refresh":
		return a.session.Refresh(ctx)
	case "show":
		if len(args) != 1 {
			return errors.New("usage: show <row>")
		}
		r, err := a.row(args[0])
		if err != nil {
			return err
		}
		a.print(renderer.AssetMarkdown(r.Asset, a.cfg.currency))
	case "add":
		form := assetbook.DefaultForm()
		for _, arg := range args {
			field, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid argument %q, want <field>=<value>", arg)
			}
			if err := form.Set(field, value); err != nil {
				return err
			}
		}
		input, err := form.Input()
		if err != nil {
			a.session.Notifier().Error(err)
			return nil
		}
		return a.session.Submit(ctx, input)
	case "edit":
		if len(args) != 1 {
			return errors.New("usage: edit <row>")
		}
		r, err := a.row(args[0])
		if err != nil {
			return err
		}
		editor.Open(r.Asset)
		a.print(renderer.FormMarkdown(editor.ID(), editor.Form()))
	case "set":
		if len(args) < 1 {
			return errors.New("usage: set <field> <value>")
		}
		return editor.Set(args[0], strings.Join(args[1:], " "))
	case "form":
		if editor.State() != assetbook.Editing {
			return assetbook.ErrNotEditing
		}
		a.print(renderer.FormMarkdown(editor.ID(), editor.Form()))
	case "save":
		if editor.State() != assetbook.Editing {
			return assetbook.ErrNotEditing
		}
		if err := editor.Submit(ctx); err != nil {
			// the editor stays open, coercion errors are on the banner too.
			return nil
		}
	case "cancel":
		editor.Cancel()
	case "rm", "delete":
		if len(args) != 1 {
			return errors.New("usage: rm <row>")
		}
		r, err := a.row(args[0])
		if err != nil {
			return err
		}
		ask := func() bool {
			return confirm(in, a.errOut, fmt.Sprintf("Delete %q?", r.Asset.Name))
		}
		done, err := a.session.Remove(ctx, r.ID(), ask)
		if err != nil {
			return err
		}
		if !done {
			fmt.Fprintln(a.errOut, "Cancelled.")
		}
	case "summary":
		s := assetbook.Summarize(a.session.Cache().Snapshot())
		a.print(renderer.SummaryMarkdown(s, a.cfg.currency))
	case "banner":
		if n, ok := a.session.Notifier().Current(); ok {
			fmt.Fprintln(a.errOut, renderer.Banner(n))
		}
	default:
		return fmt.Errorf("unknown command %q, type 'help'", name)
	}
	return nil
}

// splitArgs splits line on spaces, keeping double quoted parts together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case unicode.IsSpace(r) && !quoted:
			if pending {
				args = append(args, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if pending {
		args = append(args, current.String())
	}
	return args, nil
}
