package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nelhage/rpsls/rpsls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAI struct {
	moves []rpsls.Move
}

func (s *scriptedAI) Name() string { return "Hal" }

func (s *scriptedAI) GetMove() (rpsls.Move, error) {
	if len(s.moves) == 0 {
		return rpsls.NoMove, errors.New("script exhausted")
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func newTestCLI(input string, score int, moves ...rpsls.Move) (*CLI, *bytes.Buffer) {
	var out bytes.Buffer
	return &CLI{
		WinningScore: score,
		Out:          &out,
		In:           bufio.NewReader(strings.NewReader(input)),
		Computer:     &scriptedAI{moves: moves},
	}, &out
}

func TestHumanWinsRound(t *testing.T) {
	c, out := newTestCLI("alice\nrock\nn\n", 1, rpsls.Scissors)
	require.NoError(t, c.Play())

	m := c.Match()
	assert.Equal(t, 1, m.Human.Score)
	assert.Equal(t, 0, m.Computer.Score)
	assert.Equal(t, 1, m.Round())

	txt := out.String()
	assert.Contains(t, txt, "alice chose Rock.")
	assert.Contains(t, txt, "Hal chose Scissors.")
	assert.Contains(t, txt, "Rock crushes Scissors.")
	assert.Contains(t, txt, "alice won!")
	assert.Contains(t, txt, "alice: 1 points | Hal: 0 points")
	assert.Contains(t, txt, "Congrats alice, you won RPSLS!")
}

func TestHumanSweep(t *testing.T) {
	c, out := newTestCLI("alice\nrock\npaper\nsp\nn\n", 3,
		rpsls.Scissors, rpsls.Rock, rpsls.Rock)
	require.NoError(t, c.Play())

	m := c.Match()
	assert.Equal(t, 3, m.Round())
	assert.True(t, m.HumanWon())
	assert.Equal(t, []rpsls.Move{rpsls.Rock, rpsls.Paper, rpsls.Spock}, m.Human.History)
	assert.Equal(t, 1, strings.Count(out.String(), "Congrats alice"))
}

func TestInvalidMoveReprompts(t *testing.T) {
	c, out := newTestCLI("banana\nrock\nn\n", 1, rpsls.Lizard)
	c.HumanName = "alice"
	require.NoError(t, c.Play())

	txt := out.String()
	assert.Equal(t, 1, strings.Count(txt, badMove))
	assert.Equal(t, 2, strings.Count(txt, movePrompt))
	assert.Equal(t, []rpsls.Move{rpsls.Rock}, c.Match().Human.History)
	assert.NotContains(t, txt, "What's your name?")
}

func TestRulesDoesNotConsumeTurn(t *testing.T) {
	c, out := newTestCLI("alice\nRULES\nrock\nn\n", 1, rpsls.Scissors)
	require.NoError(t, c.Play())

	assert.Contains(t, out.String(), rpsls.RulesText())
	assert.Equal(t, 1, c.Match().Round())
	assert.NotContains(t, out.String(), badMove)
}

func TestDeclineKeepsScores(t *testing.T) {
	c, out := newTestCLI("alice\nrock\nN\n", 1, rpsls.Paper)
	require.NoError(t, c.Play())

	m := c.Match()
	assert.Equal(t, 1, m.Computer.Score)
	assert.Equal(t, []rpsls.Move{rpsls.Paper}, m.Computer.History)

	txt := out.String()
	assert.Contains(t, txt, "Sorry, Hal won RPSLS!")
	assert.Equal(t, 1, strings.Count(txt, movePrompt))
	assert.True(t, strings.HasSuffix(txt, "Goodbye alice!\n"), "output: %s", txt)
}

func TestReplayResets(t *testing.T) {
	c, out := newTestCLI("alice\nrock\nmaybe\nY\npaper\nn\n", 1,
		rpsls.Scissors, rpsls.Scissors)
	require.NoError(t, c.Play())

	m := c.Match()
	assert.Equal(t, 0, m.Human.Score)
	assert.Equal(t, 1, m.Computer.Score)
	assert.Equal(t, []rpsls.Move{rpsls.Paper}, m.Human.History)
	assert.Equal(t, 1, m.Round())

	txt := out.String()
	assert.Equal(t, 1, strings.Count(txt, "Sorry, must be y or n."))
	assert.Equal(t, 1, strings.Count(txt, "Welcome to Rock"))
	assert.Contains(t, txt, "Congrats alice")
	assert.Contains(t, txt, "Sorry, Hal won RPSLS!")
}

func TestEmptyName(t *testing.T) {
	c, out := newTestCLI("\n   \n  alice \nrock\nn\n", 1, rpsls.Scissors)
	require.NoError(t, c.Play())

	assert.Equal(t, 2, strings.Count(out.String(), "Sorry, must enter a value."))
	assert.Equal(t, "alice", c.Match().Human.Name)
}

func TestInputClosed(t *testing.T) {
	c, out := newTestCLI("alice\nro", 1, rpsls.Scissors)
	err := c.Play()
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Play()=%v, want ErrInputClosed", err)
	}
	assert.Equal(t, 1, strings.Count(out.String(), badMove))
}

func TestClearScreen(t *testing.T) {
	c, out := newTestCLI("alice\nrock\nn\n", 1, rpsls.Scissors)
	c.Clear = true
	require.NoError(t, c.Play())
	assert.Contains(t, out.String(), clearScreen)

	c, out = newTestCLI("alice\nrock\nn\n", 1, rpsls.Scissors)
	require.NoError(t, c.Play())
	assert.NotContains(t, out.String(), clearScreen)
}

func TestRenderHistory(t *testing.T) {
	m := rpsls.NewMatch(5, "alice", "Hal")
	m.Record(rpsls.Rock, rpsls.Paper)
	m.Record(rpsls.Lizard, rpsls.Lizard)

	var buf bytes.Buffer
	RenderHistory(&buf, m)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"round", "alice", "Hal"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1.", "rock", "paper", "lose"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2.", "lizard", "lizard", "tie"}, strings.Fields(lines[2]))
}
