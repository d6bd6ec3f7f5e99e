package cli

import (
	"bufio"
	"io"

	"github.com/nelhage/rpsls/rpsls"
)

const (
	movePrompt = "Please choose rock (r), paper (p), scissors (sc), lizard (l) or spock (sp), or type rules:"
	badMove    = "Sorry, invalid choice."
	rulesToken = "rules"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{&Console{Out: out, In: in}}
}

type cliPlayer struct {
	c *Console
}

func (p *cliPlayer) GetMove() (rpsls.Move, error) {
	for {
		p.c.WriteLine("%s", movePrompt)
		line, err := p.c.ReadLine()
		if err != nil {
			return rpsls.NoMove, err
		}
		if rpsls.Fold(line) == rulesToken {
			io.WriteString(p.c.Out, rpsls.RulesText())
			continue
		}
		m, err := rpsls.ParseMove(line)
		if err != nil {
			p.c.WriteLine("%s", badMove)
			continue
		}
		return m, nil
	}
}
