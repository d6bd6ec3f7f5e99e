package rpsls

// Side is one player's running state within a match.
type Side struct {
	Name    string
	Score   int
	History []Move
}

func (s *Side) reset() {
	s.Score = 0
	s.History = nil
}

// Match is a first-to-WinningScore series between a human and the
// computer.
type Match struct {
	WinningScore int
	Human        Side
	Computer     Side

	round int
	ties  int
}

func NewMatch(winningScore int, human, computer string) *Match {
	if winningScore <= 0 {
		panic("winning score must be positive")
	}
	return &Match{
		WinningScore: winningScore,
		Human:        Side{Name: human},
		Computer:     Side{Name: computer},
	}
}

// Record plays one round and returns the result from the human's side.
func (m *Match) Record(human, computer Move) Outcome {
	if m.Over() {
		panic("round recorded after match end")
	}
	m.round++
	m.Human.History = append(m.Human.History, human)
	m.Computer.History = append(m.Computer.History, computer)
	o := Compare(human, computer)
	switch o {
	case Win:
		m.Human.Score++
	case Lose:
		m.Computer.Score++
	default:
		m.ties++
	}
	return o
}

func (m *Match) Over() bool {
	return m.Human.Score == m.WinningScore || m.Computer.Score == m.WinningScore
}

func (m *Match) HumanWon() bool {
	return m.Human.Score == m.WinningScore
}

// Round returns the number of rounds recorded since the last reset.
func (m *Match) Round() int {
	return m.round
}

func (m *Match) Ties() int {
	return m.ties
}

func (m *Match) Reset() {
	m.Human.reset()
	m.Computer.reset()
	m.round = 0
	m.ties = 0
}
