package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/gridsnake/internal/logging"
	"github.com/plus3/gridsnake/snake"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall time the soak should run for.")
	worldCount := flag.Int("worlds", 64, "The number of worlds to drive side by side.")
	frame := flag.Duration("frame", 50*time.Millisecond, "Simulated time per frame.")
	seed := flag.Uint64("seed", 1, "Seed for key presses and food placement.")
	width := flag.Int("width", 10, "Arena width in cells.")
	height := flag.Int("height", 10, "Arena height in cells.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	logFormat := flag.String("log-format", "text", "Log format: text or json.")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := snake.DefaultConfig()
	cfg.Arena = snake.Arena{Width: *width, Height: *height}

	soak, err := newSoak(cfg, *worldCount, *seed)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	report := &Report{
		Duration: *duration,
		Worlds:   *worldCount,
		Frame:    *frame,
		Seed:     *seed,
		Arena:    cfg.Arena,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running soak", "duration", *duration, "worlds", *worldCount, "frame", *frame)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			soak.step(*frame)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.collect(soak)

	logger.Info("soak finished", "updates", report.TotalUpdates, "resets", report.Totals.Resets)

	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("failed to generate report", "err", err)
		os.Exit(1)
	}
}

// soak drives many worlds with random key presses.
type soak struct {
	worlds []*snake.World
	rng    *rand.Rand
}

func newSoak(cfg snake.Config, count int, seed uint64) (*soak, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: world count must be positive", snake.ErrInvalidConfig)
	}

	s := &soak{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	for range count {
		wcfg := cfg
		wcfg.Seed = s.rng.Uint32
		world, err := snake.New(wcfg)
		if err != nil {
			return nil, err
		}
		s.worlds = append(s.worlds, world)
	}
	return s, nil
}

// step advances every world by one frame. Each world sees no key, one key or
// two keys at once so that priority resolution is exercised too.
func (s *soak) step(frame time.Duration) {
	for _, w := range s.worlds {
		var pressed snake.Keys
		for range s.rng.IntN(3) {
			pressed = pressed.With(snake.Direction(s.rng.IntN(4)))
		}
		w.Update(frame, pressed)
	}
}
