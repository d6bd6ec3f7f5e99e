package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/nelhage/rpsls/ai"
	"github.com/nelhage/rpsls/rpsls"
)

const DefaultWinningScore = 5

type Player interface {
	GetMove() (rpsls.Move, error)
}

// CLI runs matches between a human at the console and a computer
// opponent until the human declines a rematch.
type CLI struct {
	match *rpsls.Match
	con   *Console

	WinningScore int
	HumanName    string
	Out          io.Writer
	In           *bufio.Reader
	Human        Player
	Computer     ai.Player
	Clear        bool
	Debug        int
}

func (c *CLI) Play() error {
	c.con = &Console{Out: c.Out, In: c.In}
	if c.Human == nil {
		c.Human = NewCLIPlayer(c.Out, c.In)
	}
	score := c.WinningScore
	if score <= 0 {
		score = DefaultWinningScore
	}

	name := c.HumanName
	if name == "" {
		var err error
		if name, err = c.askName(); err != nil {
			return err
		}
	}
	c.match = rpsls.NewMatch(score, name, c.Computer.Name())

	c.con.WriteLine("Hi %s! Welcome to Rock, Paper, Scissors, Lizard, Spock!", name)
	c.con.WriteLine("The first to %d points wins. Type rules at any prompt to see how moves beat each other.", score)
	for {
		for !c.match.Over() {
			if err := c.round(); err != nil {
				return err
			}
		}
		c.renderFinal()
		again, err := c.playAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}
		c.match.Reset()
		if c.Debug > 0 {
			log.Printf("rematch: scores and histories reset")
		}
	}
	c.con.WriteLine("Thanks for playing Rock, Paper, Scissors, Lizard, Spock. Goodbye %s!", name)
	return nil
}

// Match returns the state of the current (or last) match.
func (c *CLI) Match() *rpsls.Match {
	return c.match
}

func (c *CLI) askName() (string, error) {
	line, err := c.con.Ask("What's your name?", "Sorry, must enter a value.",
		func(s string) bool { return strings.TrimSpace(s) != "" })
	return strings.TrimSpace(line), err
}

func (c *CLI) playAgain() (bool, error) {
	line, err := c.con.Ask("Would you like to play again? (y/n)", "Sorry, must be y or n.",
		func(s string) bool {
			s = rpsls.Fold(s)
			return s == "y" || s == "n"
		})
	if err != nil {
		return false, err
	}
	return rpsls.Fold(line) == "y", nil
}

func (c *CLI) round() error {
	h, err := c.Human.GetMove()
	if err != nil {
		return err
	}
	m, err := c.Computer.GetMove()
	if err != nil {
		return fmt.Errorf("computer move: %w", err)
	}
	o := c.match.Record(h, m)
	if c.Debug > 0 {
		log.Printf("round %d: %s vs %s: %s", c.match.Round(), h.Name(), m.Name(), o)
	}
	if c.Clear {
		c.con.Clear()
	}
	c.renderRound(h, m, o)
	return nil
}

func (c *CLI) renderRound(h, m rpsls.Move, o rpsls.Outcome) {
	human, computer := &c.match.Human, &c.match.Computer
	c.con.WriteLine("%s chose %s.", human.Name, h)
	c.con.WriteLine("%s chose %s.", computer.Name, m)
	c.con.WriteLine("%s", rpsls.Summary(h, m))
	switch o {
	case rpsls.Win:
		c.con.WriteLine("%s won!", human.Name)
	case rpsls.Lose:
		c.con.WriteLine("%s won!", computer.Name)
	default:
		c.con.WriteLine("It's a tie!")
	}
	c.con.WriteLine("%s: %d points | %s: %d points",
		human.Name, human.Score, computer.Name, computer.Score)
	RenderHistory(c.Out, c.match)
}

func (c *CLI) renderFinal() {
	if c.match.HumanWon() {
		c.con.WriteLine("Congrats %s, you won RPSLS!", c.match.Human.Name)
	} else {
		c.con.WriteLine("Sorry, %s won RPSLS!", c.match.Computer.Name)
	}
}

// RenderHistory writes one row per round played in m.
func RenderHistory(out io.Writer, m *rpsls.Match) {
	w := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	fmt.Fprintf(w, "round\t%s\t%s\t\n", m.Human.Name, m.Computer.Name)
	for i, h := range m.Human.History {
		c := m.Computer.History[i]
		fmt.Fprintf(w, "%d.\t%s\t%s\t%s\n", i+1, h.Name(), c.Name(), rpsls.Compare(h, c))
	}
	w.Flush()
}
