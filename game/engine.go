package game

import (
	"github.com/bellapacxx/bingo-scorer/models"
	"go.uber.org/zap"
)

// FirstWinner plays the draws in order and returns the score of the first
// board found winning. Ties within one draw go to the lowest board index.
// boards is not modified.
func FirstWinner(draws []int, boards []models.Board) (int, error) {
	return firstWinner(draws, boards, nil)
}

// LastWinner plays every draw, marking only boards that have not won yet,
// and returns the score of the last board to win. Within a single draw the
// highest board index wins ties. boards is not modified.
func LastWinner(draws []int, boards []models.Board) (int, error) {
	return lastWinner(draws, boards, nil)
}

func firstWinner(draws []int, boards []models.Board, log *zap.SugaredLogger) (int, error) {
	r := NewRound(boards, log)
	for _, d := range draws {
		if wins := r.Apply(d); len(wins) > 0 {
			return wins[0].Score, nil
		}
	}
	return 0, ErrNoWinner
}

func lastWinner(draws []int, boards []models.Board, log *zap.SugaredLogger) (int, error) {
	events := play(draws, boards, log)
	if len(events) == 0 {
		return 0, ErrNoWinner
	}
	return events[len(events)-1].Score, nil
}

func play(draws []int, boards []models.Board, log *zap.SugaredLogger) []models.WinEvent {
	r := NewRound(boards, log)
	for _, d := range draws {
		if r.ActiveCount() == 0 {
			break
		}
		r.Apply(d)
	}
	return r.Events
}

// Engine holds a validated draw sequence and board list. Every query runs
// on its own copy of the boards, so queries never affect each other.
type Engine struct {
	draws  []int
	boards []models.Board
	log    *zap.SugaredLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to report wins.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine validates draws and boards and returns an Engine over copies
// of them.
func NewEngine(draws []int, boards []models.Board, opts ...Option) (*Engine, error) {
	if err := Validate(draws, boards); err != nil {
		return nil, err
	}
	e := &Engine{
		draws:  append([]int(nil), draws...),
		boards: models.CloneBoards(boards),
		log:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Draws returns the draw sequence.
func (e *Engine) Draws() []int {
	return append([]int(nil), e.draws...)
}

// Boards returns copies of the unmarked boards.
func (e *Engine) Boards() []models.Board {
	return models.CloneBoards(e.boards)
}

// FirstWinner is FirstWinner over the engine's draws and boards.
func (e *Engine) FirstWinner() (int, error) {
	return firstWinner(e.draws, e.boards, e.log)
}

// LastWinner is LastWinner over the engine's draws and boards.
func (e *Engine) LastWinner() (int, error) {
	return lastWinner(e.draws, e.boards, e.log)
}

// Play returns every win in the order it happened.
func (e *Engine) Play() []models.WinEvent {
	return play(e.draws, e.boards, e.log)
}
