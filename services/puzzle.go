package services

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bellapacxx/bingo-scorer/models"
)

// ErrMalformedNumber is returned for any token that is not a non-negative
// integer.
var ErrMalformedNumber = errors.New("malformed number")

var blockSeparator = regexp.MustCompile(`(\r?\n){2,}`)

// LoadPuzzle reads and parses a puzzle file.
func LoadPuzzle(path string) ([]int, []models.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read puzzle: %w", err)
	}
	return ParseInput(string(data))
}

// ParseInput splits the input on blank lines. The first block is the
// comma separated draw sequence, every following block one board.
func ParseInput(contents string) ([]int, []models.Board, error) {
	contents = strings.TrimSpace(contents)
	if contents == "" {
		return nil, nil, errors.New("empty input")
	}
	parts := blockSeparator.Split(contents, -1)

	draws, err := parseDraws(parts[0])
	if err != nil {
		return nil, nil, err
	}

	boards := make([]models.Board, 0, len(parts)-1)
	for i, block := range parts[1:] {
		b, err := ParseBoard(block)
		if err != nil {
			return nil, nil, fmt.Errorf("board %d: %w", i, err)
		}
		boards = append(boards, b)
	}
	return draws, boards, nil
}

func parseDraws(line string) ([]int, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	draws := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := parseNumber(f)
		if err != nil {
			return nil, fmt.Errorf("draws: %w", err)
		}
		draws = append(draws, n)
	}
	return draws, nil
}

// ParseBoard reads one board, one row per line.
func ParseBoard(block string) (models.Board, error) {
	var numbers [][]int
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := parseNumber(f)
			if err != nil {
				return models.Board{}, err
			}
			row = append(row, n)
		}
		numbers = append(numbers, row)
	}
	return models.NewBoard(numbers), nil
}

func parseNumber(token string) (int, error) {
	token = strings.TrimSpace(token)
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q: %w", token, ErrMalformedNumber)
	}
	return n, nil
}

// FormatBoard writes a board back in the input layout, numbers right
// aligned to two columns.
func FormatBoard(b models.Board) string {
	var sb strings.Builder
	for i, row := range b.Numbers {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, n := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", n)
		}
	}
	return sb.String()
}

// FormatPuzzle is the inverse of ParseInput.
func FormatPuzzle(draws []int, boards []models.Board) string {
	tokens := make([]string, len(draws))
	for i, d := range draws {
		tokens[i] = strconv.Itoa(d)
	}
	blocks := []string{strings.Join(tokens, ",")}
	for _, b := range boards {
		blocks = append(blocks, FormatBoard(b))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
