package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bellapacxx/bingo-scorer/models"
)

// BingoCard definition. Each letter holds one column, top to bottom.
type BingoCard struct {
	B      []int `json:"B"`
	I      []int `json:"I"`
	N      []int `json:"N"`
	G      []int `json:"G"`
	O      []int `json:"O"`
	CardID int   `json:"card_id"`
}

// ErrDeckNoDraws is returned when a deck without draws is turned into a
// puzzle. The text format needs the draw line first.
var ErrDeckNoDraws = errors.New("deck has no draws")

// Deck is a JSON card collection, optionally with its draw sequence.
type Deck struct {
	Draws []int       `json:"draws"`
	Cards []BingoCard `json:"cards"`
}

// LoadCards loads a deck from a JSON file. The file is either a deck object
// or a bare array of cards.
func LoadCards(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read cards: %w", err)
	}
	return ParseCards(data)
}

func ParseCards(data []byte) (Deck, error) {
	var deck Deck
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		if err := json.Unmarshal(data, &deck.Cards); err != nil {
			return Deck{}, fmt.Errorf("unmarshal cards: %w", err)
		}
		return deck, nil
	}
	if err := json.Unmarshal(data, &deck); err != nil {
		return Deck{}, fmt.Errorf("unmarshal deck: %w", err)
	}
	return deck, nil
}

func (c BingoCard) columns() [][]int {
	return [][]int{c.B, c.I, c.N, c.G, c.O}
}

// Board turns the card's columns into a row-major board.
func (c BingoCard) Board() (models.Board, error) {
	cols := c.columns()
	height := len(cols[0])
	for i, col := range cols {
		if len(col) != height {
			return models.Board{}, fmt.Errorf("card %d column %q has %d numbers, want %d",
				c.CardID, "BINGO"[i], len(col), height)
		}
	}

	numbers := make([][]int, height)
	for r := range numbers {
		numbers[r] = make([]int, len(cols))
		for ci, col := range cols {
			numbers[r][ci] = col[r]
		}
	}
	return models.NewBoard(numbers), nil
}

// Boards converts every card in deck order.
func (d Deck) Boards() ([]models.Board, error) {
	boards := make([]models.Board, 0, len(d.Cards))
	for _, c := range d.Cards {
		b, err := c.Board()
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, nil
}

// Puzzle renders the deck in the text puzzle format read by ParseInput.
func (d Deck) Puzzle() (string, error) {
	if len(d.Draws) == 0 {
		return "", ErrDeckNoDraws
	}
	boards, err := d.Boards()
	if err != nil {
		return "", err
	}
	return FormatPuzzle(d.Draws, boards), nil
}
