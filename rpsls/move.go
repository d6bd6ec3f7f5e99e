package rpsls

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Move byte

const (
	NoMove Move = iota
	Rock
	Paper
	Scissors
	Lizard
	Spock
)

var ErrUnknownMove = errors.New("unknown move")

var moveNames = [...]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
	Lizard:   "lizard",
	Spock:    "spock",
}

var moveAbbrevs = [...]string{
	Rock:     "r",
	Paper:    "p",
	Scissors: "sc",
	Lizard:   "l",
	Spock:    "sp",
}

var title = cases.Title(language.English)

// AllMoves returns the five moves in table order.
func AllMoves() []Move {
	return []Move{Rock, Paper, Scissors, Lizard, Spock}
}

func (m Move) Valid() bool {
	return m >= Rock && m <= Spock
}

// Name returns the lowercase token a player types to choose m.
func (m Move) Name() string {
	if !m.Valid() {
		panic(fmt.Sprintf("bad move: %d", int(m)))
	}
	return moveNames[m]
}

func (m Move) Abbrev() string {
	if !m.Valid() {
		panic(fmt.Sprintf("bad move: %d", int(m)))
	}
	return moveAbbrevs[m]
}

func (m Move) String() string {
	if !m.Valid() {
		return "no move"
	}
	return title.String(moveNames[m])
}

// Fold normalizes a line of user input for token matching.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseMove accepts a full move name or its abbreviation, in any case.
func ParseMove(tok string) (Move, error) {
	tok = Fold(tok)
	for _, m := range AllMoves() {
		if tok == moveNames[m] || tok == moveAbbrevs[m] {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%q: %w", tok, ErrUnknownMove)
}

func FormatMoves(ms []Move) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = m.Name()
	}
	return "[" + strings.Join(bits, ", ") + "]"
}
