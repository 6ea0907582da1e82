package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bellapacxx/bingo-scorer/config"
	"github.com/bellapacxx/bingo-scorer/game"
	"github.com/bellapacxx/bingo-scorer/services"
	"github.com/bellapacxx/bingo-scorer/utils/logger"
)

var errUsage = errors.New("usage: bingo-scorer <input>")

// initEnv loads configuration and sets up the logger from it
func initEnv() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("[FATAL] logger: %v", err)
	}
}

// run scores the puzzle named by the single positional argument
func run(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	path := args[0]
	fmt.Fprintf(out, "Path: %s\n", path)

	draws, boards, err := services.LoadPuzzle(path)
	if err != nil {
		return err
	}
	logger.Debugf("parsed %d draws and %d boards from %s", len(draws), len(boards), path)

	engine, err := game.NewEngine(draws, boards, game.WithLogger(logger.Log))
	if err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}

	first, err := engine.FirstWinner()
	if err != nil {
		return fmt.Errorf("task 1: %w", err)
	}
	last, err := engine.LastWinner()
	if err != nil {
		return fmt.Errorf("task 2: %w", err)
	}

	fmt.Fprintf(out, "Task1: %d\n", first)
	fmt.Fprintf(out, "Task2: %d\n", last)
	return nil
}

func main() {
	initEnv()
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatalf("[FATAL] %v", err)
	}
}
