package simulate

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nelhage/rpsls/cli"
)

type Command struct {
	matches int
	score   int
	seed    int64
	debug   int
}

func (*Command) Name() string     { return "simulate" }
func (*Command) Synopsis() string { return "Play two random computers against each other and report results" }
func (*Command) Usage() string {
	return `simulate [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.matches, "matches", 100, "number of matches to play")
	flags.IntVar(&c.score, "score", cli.DefaultWinningScore, "points needed to win a match")
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.score <= 0 {
		log.Fatalf("-score must be positive, got %d", c.score)
	}
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	if c.debug > 0 {
		log.Printf("seed=%d matches=%d score=%d", c.seed, c.matches, c.score)
	}
	st, err := Run(Config{
		Matches:      c.matches,
		WinningScore: c.score,
		Seed:         c.seed,
	})
	if err != nil {
		log.Printf("simulate: %v", err)
		return subcommands.ExitFailure
	}
	st.Render(os.Stdout)
	return subcommands.ExitSuccess
}
