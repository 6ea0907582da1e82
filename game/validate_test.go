package game

import (
	"errors"
	"testing"

	"github.com/bellapacxx/bingo-scorer/models"
)

func TestValidate(t *testing.T) {
	square := models.NewBoard([][]int{{1, 2}, {3, 4}})

	tests := []struct {
		name   string
		draws  []int
		boards []models.Board
		want   error
	}{
		{"ok", []int{1, 2}, []models.Board{square, square}, nil},
		{"no draws", nil, []models.Board{square}, ErrNoDraws},
		{"no boards", []int{1}, nil, ErrNoBoards},
		{"empty board", []int{1}, []models.Board{models.NewBoard(nil)}, ErrShapeMismatch},
		{"ragged row", []int{1}, []models.Board{models.NewBoard([][]int{{1, 2}, {3}})}, ErrShapeMismatch},
		{"row count differs", []int{1}, []models.Board{square, models.NewBoard([][]int{{1, 2}})}, ErrShapeMismatch},
		{"column count differs", []int{1}, []models.Board{square, models.NewBoard([][]int{{1, 2, 5}, {3, 4, 6}})}, ErrShapeMismatch},
		{"bad mark grid", []int{1}, []models.Board{{Numbers: [][]int{{1}}, Marked: nil}}, ErrShapeMismatch},
		{"duplicate draw", []int{1, 2, 1}, []models.Board{square}, ErrDuplicateDraw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.draws, tt.boards)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
