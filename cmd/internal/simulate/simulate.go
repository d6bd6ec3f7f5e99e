package simulate

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/rpsls/ai"
	"github.com/nelhage/rpsls/rpsls"
)

type Config struct {
	Matches      int
	WinningScore int
	Seed         int64
}

type Stats struct {
	Names  [2]string
	Wins   [2]int
	Points [2]int

	Matches int
	Rounds  int
	Ties    int
}

// Run plays cfg.Matches matches between two seeded random players. The
// first player stands in the human's seat.
func Run(cfg Config) (*Stats, error) {
	p1, p2 := ai.NewRandom(cfg.Seed), ai.NewRandom(cfg.Seed+1)
	st := &Stats{Names: [2]string{p1.Name(), p2.Name()}}
	m := rpsls.NewMatch(cfg.WinningScore, p1.Name(), p2.Name())
	for i := 0; i < cfg.Matches; i++ {
		m.Reset()
		for !m.Over() {
			a, err := p1.GetMove()
			if err != nil {
				return nil, fmt.Errorf("match %d: %w", i, err)
			}
			b, err := p2.GetMove()
			if err != nil {
				return nil, fmt.Errorf("match %d: %w", i, err)
			}
			m.Record(a, b)
		}
		if m.HumanWon() {
			st.Wins[0]++
		} else {
			st.Wins[1]++
		}
		st.Points[0] += m.Human.Score
		st.Points[1] += m.Computer.Score
		st.Rounds += m.Round()
		st.Ties += m.Ties()
		st.Matches++
	}
	return st, nil
}

func (st *Stats) Render(out io.Writer) {
	w := tabwriter.NewWriter(out, 4, 8, 1, ' ', 0)
	fmt.Fprintf(w, "seat\tname\tmatches\tpoints\t\n")
	for i := range st.Names {
		fmt.Fprintf(w, "p%d\t%s\t%d\t%d\t\n", i+1, st.Names[i], st.Wins[i], st.Points[i])
	}
	w.Flush()
	fmt.Fprintf(out, "matches=%d rounds=%d ties=%d\n", st.Matches, st.Rounds, st.Ties)
}
