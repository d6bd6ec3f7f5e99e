package rpsls

import (
	"fmt"
	"strings"
)

type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		panic(fmt.Sprintf("bad outcome: %d", int(o)))
	}
}

// Flip returns the outcome from the other player's side.
func (o Outcome) Flip() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	}
	return o
}

type edge struct {
	beaten Move
	verb   string
}

// beatsTable lists, for each move, the two moves it defeats.
var beatsTable = [...][2]edge{
	Rock:     {{Scissors, "crushes"}, {Lizard, "crushes"}},
	Paper:    {{Rock, "covers"}, {Spock, "disproves"}},
	Scissors: {{Paper, "cuts"}, {Lizard, "decapitates"}},
	Lizard:   {{Paper, "eats"}, {Spock, "poisons"}},
	Spock:    {{Rock, "vaporizes"}, {Scissors, "smashes"}},
}

// Verb reports how a beats b, if it does.
func Verb(a, b Move) (string, bool) {
	if !a.Valid() {
		return "", false
	}
	for _, e := range beatsTable[a] {
		if e.beaten == b {
			return e.verb, true
		}
	}
	return "", false
}

func Beats(a, b Move) bool {
	_, ok := Verb(a, b)
	return ok
}

// Compare scores a against b.
func Compare(a, b Move) Outcome {
	switch {
	case Beats(a, b):
		return Win
	case Beats(b, a):
		return Lose
	}
	return Tie
}

// Summary describes a pair of moves, e.g. "Paper covers Rock.".
func Summary(a, b Move) string {
	if v, ok := Verb(a, b); ok {
		return fmt.Sprintf("%s %s %s.", a, v, b)
	}
	if v, ok := Verb(b, a); ok {
		return fmt.Sprintf("%s %s %s.", b, v, a)
	}
	return fmt.Sprintf("%s against %s.", a, b)
}

func RulesText() string {
	var b strings.Builder
	b.WriteString("Rules:\n")
	for _, m := range AllMoves() {
		for _, e := range beatsTable[m] {
			fmt.Fprintf(&b, "  %s %s %s\n", m, e.verb, e.beaten)
		}
	}
	b.WriteString("Moves may be abbreviated:")
	for _, m := range AllMoves() {
		fmt.Fprintf(&b, " %s=%s", m.Abbrev(), m.Name())
	}
	b.WriteString("\n")
	return b.String()
}
