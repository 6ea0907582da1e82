package game

import (
	"fmt"

	"github.com/bellapacxx/bingo-scorer/models"
)

// Validate checks the preconditions the simulation relies on: at least one
// draw and one board, every board rectangular with the shape of the first
// one, and no number drawn twice.
func Validate(draws []int, boards []models.Board) error {
	if len(draws) == 0 {
		return ErrNoDraws
	}
	if len(boards) == 0 {
		return ErrNoBoards
	}

	rows, cols := boards[0].Rows(), boards[0].Cols()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("board 0 is empty: %w", ErrShapeMismatch)
	}
	for i, b := range boards {
		if b.Rows() != rows {
			return fmt.Errorf("board %d has %d rows, want %d: %w", i, b.Rows(), rows, ErrShapeMismatch)
		}
		for r, row := range b.Numbers {
			if len(row) != cols {
				return fmt.Errorf("board %d row %d has %d columns, want %d: %w", i, r, len(row), cols, ErrShapeMismatch)
			}
			if len(b.Marked) != rows || len(b.Marked[r]) != cols {
				return fmt.Errorf("board %d mark grid does not match numbers: %w", i, ErrShapeMismatch)
			}
		}
	}

	seen := make(map[int]bool, len(draws))
	for i, d := range draws {
		if seen[d] {
			return fmt.Errorf("draw %d at position %d: %w", d, i, ErrDuplicateDraw)
		}
		seen[d] = true
	}
	return nil
}
