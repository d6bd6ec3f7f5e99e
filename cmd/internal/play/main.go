package play

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nelhage/rpsls/ai"
	"github.com/nelhage/rpsls/cli"
)

type Command struct {
	score int
	name  string
	seed  int64
	clear bool
	debug int
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Rock, Paper, Scissors, Lizard, Spock against the computer" }
func (*Command) Usage() string {
	return `play [flags]

Play first-to-N matches against a computer opponent that picks its
moves uniformly at random.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.score, "score", cli.DefaultWinningScore, "points needed to win a match")
	flags.StringVar(&c.name, "name", "", "your name (prompted if empty)")
	flags.Int64Var(&c.seed, "seed", 0, "computer random seed (0 seeds from the clock)")
	flags.BoolVar(&c.clear, "clear", false, "clear the screen between rounds")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.score <= 0 {
		log.Fatalf("-score must be positive, got %d", c.score)
	}
	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}
	if c.debug > 0 {
		log.Printf("seed=%d score=%d", c.seed, c.score)
	}

	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		WinningScore: c.score,
		HumanName:    c.name,
		Out:          os.Stdout,
		In:           in,
		Human:        cli.NewCLIPlayer(os.Stdout, in),
		Computer:     ai.NewRandom(c.seed),
		Clear:        c.clear,
		Debug:        c.debug,
	}
	if err := st.Play(); err != nil {
		if errors.Is(err, cli.ErrInputClosed) {
			return subcommands.ExitSuccess
		}
		log.Printf("play: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
