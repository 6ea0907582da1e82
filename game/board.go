package game

import (
	"github.com/bellapacxx/bingo-scorer/models"
)

// Mark flags every cell holding number. Cells already marked stay marked.
func Mark(b *models.Board, number int) {
	for row, values := range b.Numbers {
		for col, v := range values {
			if v == number {
				b.Marked[row][col] = true
			}
		}
	}
}

// IsWinning reports whether any full row or full column is marked.
// Diagonals don't count. A ragged board is scanned cell by cell: a column
// only wins when every row reaches it.
func IsWinning(b *models.Board) bool {
	rows, cols := b.Rows(), 0
	for _, values := range b.Numbers {
		if len(values) > cols {
			cols = len(values)
		}
	}
	if rows == 0 || cols == 0 {
		return false
	}

	isMarked := func(row, col int) bool {
		return col < len(b.Marked[row]) && b.Marked[row][col]
	}

	checkLine := func(cells [][2]int) bool {
		if len(cells) == 0 {
			return false
		}
		for _, cell := range cells {
			if !isMarked(cell[0], cell[1]) {
				return false
			}
		}
		return true
	}

	// Horizontal lines
	for row := 0; row < rows; row++ {
		width := len(b.Numbers[row])
		cells := make([][2]int, 0, width)
		for col := 0; col < width; col++ {
			cells = append(cells, [2]int{row, col})
		}
		if checkLine(cells) {
			return true
		}
	}

	// Vertical lines
	for col := 0; col < cols; col++ {
		cells := make([][2]int, 0, rows)
		complete := true
		for row := 0; row < rows; row++ {
			if col >= len(b.Numbers[row]) {
				complete = false
				break
			}
			cells = append(cells, [2]int{row, col})
		}
		if complete && checkLine(cells) {
			return true
		}
	}

	return false
}

// UnmarkedSum adds up every number whose cell is not marked.
func UnmarkedSum(b *models.Board) int {
	sum := 0
	for row, values := range b.Numbers {
		for col, v := range values {
			if !b.Marked[row][col] {
				sum += v
			}
		}
	}
	return sum
}

// Score is the unmarked sum multiplied by the draw that triggered the win.
func Score(b *models.Board, last int) int {
	return last * UnmarkedSum(b)
}
