package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/gridsnake/internal/logging"
	"github.com/plus3/gridsnake/snake"
)

func main() {
	defaults := snake.DefaultConfig()
	width := flag.Int("width", defaults.Arena.Width, "Arena width in cells.")
	height := flag.Int("height", defaults.Arena.Height, "Arena height in cells.")
	move := flag.Duration("move", defaults.MoveInterval, "Time between snake moves.")
	food := flag.Duration("food", defaults.FoodInterval, "Time between food spawns.")
	fps := flag.Int("fps", 30, "Frames per second.")
	logFile := flag.String("log-file", "", "Write logs to this file; the terminal belongs to the game.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "-fps must be positive")
		os.Exit(2)
	}

	cfg := defaults
	cfg.Arena = snake.Arena{Width: *width, Height: *height}
	cfg.MoveInterval = *move
	cfg.FoodInterval = *food

	if err := run(cfg, time.Second/time.Duration(*fps), *logFile, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg snake.Config, frame time.Duration, logFile, logLevel string) error {
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger, err := logging.New(out, logLevel, "text")
	if err != nil {
		return err
	}

	world, err := snake.New(cfg, snake.WithLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialModel(world, frame), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	stats := final.(model).world.Stats()
	logger.Info("session ended", "ticks", stats.Ticks, "resets", stats.Resets, "best", stats.BestLength)
	fmt.Printf("Best length %d over %d ticks and %d resets.\n", stats.BestLength, stats.Ticks, stats.Resets)
	return nil
}
