package game

import (
	"testing"

	"github.com/bellapacxx/bingo-scorer/models"
	"go.uber.org/zap/zaptest"
)

func TestRoundStatusTransitions(t *testing.T) {
	boards := []models.Board{
		models.NewBoard([][]int{{1, 2}, {3, 4}}),
		models.NewBoard([][]int{{5, 6}, {7, 8}}),
	}
	r := NewRound(boards, zaptest.NewLogger(t).Sugar())

	if r.ActiveCount() != 2 {
		t.Fatalf("ActiveCount = %d, want 2", r.ActiveCount())
	}
	if wins := r.Apply(1); len(wins) != 0 {
		t.Fatalf("unexpected wins %+v", wins)
	}
	wins := r.Apply(3)
	if len(wins) != 1 || wins[0].BoardIndex != 0 || wins[0].DrawIndex != 1 || wins[0].Score != 3*(2+4) {
		t.Fatalf("wins = %+v", wins)
	}
	if r.Status(0) != Won || r.Status(1) != Active {
		t.Fatalf("status = %v, %v", r.Status(0), r.Status(1))
	}

	// Won boards are left alone by later draws.
	r.Apply(2)
	if r.Boards[0].Marked[0][1] {
		t.Fatalf("won board was marked again")
	}
	if r.Status(0) != Won {
		t.Fatalf("board left the won state")
	}
	if len(r.Events) != 1 {
		t.Fatalf("events = %+v", r.Events)
	}
}

func TestRoundCopiesBoards(t *testing.T) {
	boards := []models.Board{models.NewBoard([][]int{{1}})}
	r := NewRound(boards, nil)
	r.Apply(1)
	if boards[0].Marked[0][0] {
		t.Fatalf("caller board was marked")
	}
	if r.Status(0) != Won {
		t.Fatalf("1x1 board should win on its only number")
	}
}

func TestStatusString(t *testing.T) {
	if Active.String() != "active" || Won.String() != "won" {
		t.Fatalf("got %q and %q", Active, Won)
	}
}

func TestRoundScoreMatchesScore(t *testing.T) {
	boards := []models.Board{models.NewBoard([][]int{{2, 3}, {5, 7}})}
	r := NewRound(boards, nil)
	r.Apply(2)
	wins := r.Apply(3)
	if len(wins) != 1 {
		t.Fatalf("wins = %+v", wins)
	}
	if want := Score(&r.Boards[0], 3); wins[0].Score != want || want != 36 {
		t.Fatalf("event score = %d, Score = %d, want 36", wins[0].Score, want)
	}
}
