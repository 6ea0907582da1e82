package game

import (
	"github.com/bellapacxx/bingo-scorer/models"
	"go.uber.org/zap"
)

// Status is the lifecycle state of one board. Active boards move to Won
// once and never back.
type Status int

const (
	Active Status = iota
	Won
)

func (s Status) String() string {
	if s == Won {
		return "won"
	}
	return "active"
}

// Round tracks a single play-through of the draws over its own copy of the
// boards.
type Round struct {
	Boards []models.Board
	Events []models.WinEvent

	status    []Status
	drawIndex int
	log       *zap.SugaredLogger
}

// NewRound deep copies boards so the caller's slice is never marked.
func NewRound(boards []models.Board, log *zap.SugaredLogger) *Round {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Round{
		Boards: models.CloneBoards(boards),
		status: make([]Status, len(boards)),
		log:    log,
	}
}

// Status returns the state of board i.
func (r *Round) Status(i int) Status {
	return r.status[i]
}

// ActiveCount returns how many boards have not won yet.
func (r *Round) ActiveCount() int {
	n := 0
	for _, s := range r.status {
		if s == Active {
			n++
		}
	}
	return n
}

// Apply marks draw on every active board, in list order, and returns the
// wins it triggered in that same order.
func (r *Round) Apply(draw int) []models.WinEvent {
	var wins []models.WinEvent
	for i := range r.Boards {
		if r.status[i] == Won {
			continue
		}
		b := &r.Boards[i]
		Mark(b, draw)
		if !IsWinning(b) {
			continue
		}

		r.status[i] = Won
		sum := UnmarkedSum(b)
		ev := models.WinEvent{
			BoardIndex:  i,
			Draw:        draw,
			DrawIndex:   r.drawIndex,
			UnmarkedSum: sum,
			Score:       Score(b, draw),
		}
		wins = append(wins, ev)
		r.log.Debugf("[Round] board %d won on draw %d (#%d), unmarked=%d score=%d (%d active)",
			i, draw, r.drawIndex, sum, ev.Score, r.ActiveCount())
	}
	r.Events = append(r.Events, wins...)
	r.drawIndex++
	return wins
}
