package models

// Board is a grid of numbers with a parallel mark grid of the same shape.
type Board struct {
	Numbers [][]int  `json:"numbers"`
	Marked  [][]bool `json:"marked"`
}

// NewBoard wraps numbers in a Board with nothing marked yet.
func NewBoard(numbers [][]int) Board {
	marked := make([][]bool, len(numbers))
	for i, row := range numbers {
		marked[i] = make([]bool, len(row))
	}
	return Board{Numbers: numbers, Marked: marked}
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b.Numbers)
}

// Cols returns the width of the first row.
func (b Board) Cols() int {
	if len(b.Numbers) == 0 {
		return 0
	}
	return len(b.Numbers[0])
}

// Clone returns a deep copy so marks on the copy never leak back.
func (b Board) Clone() Board {
	out := Board{
		Numbers: make([][]int, len(b.Numbers)),
		Marked:  make([][]bool, len(b.Marked)),
	}
	for i, row := range b.Numbers {
		out.Numbers[i] = append([]int(nil), row...)
	}
	for i, row := range b.Marked {
		out.Marked[i] = append([]bool(nil), row...)
	}
	return out
}

// CloneBoards deep copies every board in the list.
func CloneBoards(in []Board) []Board {
	out := make([]Board, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}
