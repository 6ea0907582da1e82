package models

// WinEvent records a board completing a row or column.
type WinEvent struct {
	BoardIndex  int `json:"board_index"`
	Draw        int `json:"draw"`
	DrawIndex   int `json:"draw_index"`
	UnmarkedSum int `json:"unmarked_sum"`
	Score       int `json:"score"`
}
