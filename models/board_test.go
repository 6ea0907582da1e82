package models

import "testing"

func TestNewBoardShape(t *testing.T) {
	b := NewBoard([][]int{{1, 2, 3}, {4, 5, 6}})
	if b.Rows() != 2 || b.Cols() != 3 {
		t.Fatalf("shape = %dx%d", b.Rows(), b.Cols())
	}
	if len(b.Marked) != 2 || len(b.Marked[0]) != 3 || len(b.Marked[1]) != 3 {
		t.Fatalf("mark grid shape does not match numbers: %v", b.Marked)
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBoard([][]int{{1, 2}, {3, 4}})
	c := b.Clone()
	c.Numbers[0][0] = 9
	c.Marked[1][1] = true
	if b.Numbers[0][0] != 1 || b.Marked[1][1] {
		t.Fatalf("clone shares storage with the original")
	}

	list := CloneBoards([]Board{b})
	list[0].Marked[0][0] = true
	if b.Marked[0][0] {
		t.Fatalf("CloneBoards shares storage with the original")
	}
}

func TestEmptyBoard(t *testing.T) {
	var b Board
	if b.Rows() != 0 || b.Cols() != 0 {
		t.Fatalf("empty board shape = %dx%d", b.Rows(), b.Cols())
	}
}
