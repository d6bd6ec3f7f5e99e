package ai

import (
	"math/rand"

	"github.com/nelhage/rpsls/rpsls"
)

var Names = []string{"R2D2", "Hal", "Chappie", "Bender", "XJ9"}

// RandomAI picks uniformly among the five moves.
type RandomAI struct {
	r    *rand.Rand
	name string
}

func (r *RandomAI) Name() string {
	return r.name
}

func (r *RandomAI) GetMove() (rpsls.Move, error) {
	moves := rpsls.AllMoves()
	return moves[r.r.Intn(len(moves))], nil
}

func NewRandom(seed int64) *RandomAI {
	r := rand.New(rand.NewSource(seed))
	return &RandomAI{
		r:    r,
		name: Names[r.Intn(len(Names))],
	}
}
