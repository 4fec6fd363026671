// Package cmd implements the CLI application to manage assets.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Commands lists the subcommands, in help order.
var Commands = []subcommands.Command{
	&listCmd{},
	&showCmd{},
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&summaryCmd{},
	&shellCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, sub := range Commands {
		c.Register(sub, group(sub.Name()))
	}
}

func group(name string) string {
	switch name {
	case "shell", "topic":
		return ""
	}
	return "assets"
}

// Known reports whether name is a subcommand registered on c.
func Known(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api", "", "Base URL of the asset service. Defaults to $"+EnvAPIURL+" or "+DefaultAPIURL)
var currency = flag.String("currency", "", "Currency used to display amounts. Defaults to $"+EnvCurrency+" or JPY")
var Verbose = flag.Bool("v", false, "Log every request to stderr (also $"+EnvVerbose+")")
var rawOutput = flag.Bool("raw", false, "Print the markdown source instead of rendering it for the terminal")
