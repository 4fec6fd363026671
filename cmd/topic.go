package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/assetbook/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the manual" }
func (*topicCmd) Usage() string {
	return `ab topic [-l] [<topic>...]

  Prints the manual topics given, or the index when none is.
  '*' stands for every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "Print the topic names only, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(os.Stdout, f.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *topicCmd) run(w io.Writer, topics []string) error {
	if c.list {
		names, err := docs.GetAllTopics()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, strings.Join(names, "\n"))
		return nil
	}
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}
	content, err := docs.GetTopics(topics...)
	if err != nil {
		return err
	}
	printMarkdown(w, content, *rawOutput)
	return nil
}
