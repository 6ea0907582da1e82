package game

import "errors"

var (
	// ErrNoWinner means the draws ran out before any board completed a line.
	ErrNoWinner = errors.New("no board ever wins")

	ErrNoBoards      = errors.New("no boards")
	ErrNoDraws       = errors.New("no draws")
	ErrShapeMismatch = errors.New("board shape mismatch")
	ErrDuplicateDraw = errors.New("duplicate draw")
)
