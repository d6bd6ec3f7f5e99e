package ai

import "github.com/nelhage/rpsls/rpsls"

type Player interface {
	Name() string
	GetMove() (rpsls.Move, error)
}
