package rules

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nelhage/rpsls/rpsls"
)

type Command struct{}

func (*Command) Name() string     { return "rules" }
func (*Command) Synopsis() string { return "Print the rules and move abbreviations" }
func (*Command) Usage() string {
	return `rules
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Print(rpsls.RulesText())
	return subcommands.ExitSuccess
}
