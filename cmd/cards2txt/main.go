package main

import (
	"fmt"
	"os"

	"github.com/bellapacxx/bingo-scorer/services"
	"github.com/bellapacxx/bingo-scorer/utils/logger"
)

// cards2txt converts a JSON card deck into the text puzzle format.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: cards2txt <deck.json>")
		os.Exit(2)
	}

	deck, err := services.LoadCards(os.Args[1])
	if err != nil {
		logger.Fatalf("[FATAL] %v", err)
	}
	logger.Infof("[Init] Loaded %d bingo cards", len(deck.Cards))

	puzzle, err := deck.Puzzle()
	if err != nil {
		logger.Fatalf("[FATAL] %s: %v", os.Args[1], err)
	}
	fmt.Print(puzzle)
}
