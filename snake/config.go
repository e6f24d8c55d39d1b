package snake

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes a world. Use DefaultConfig and override fields.
type Config struct {
	Arena        Arena
	MoveInterval time.Duration
	FoodInterval time.Duration
	Start        Cell
	StartFacing  Direction
	// Seed is called once per food spawn. nil means math/rand/v2.Uint32.
	Seed func() uint32
}

// DefaultConfig returns a 10x10 arena with the snake at (4,5) facing Up,
// moving every 500ms and spawning food every 3s.
func DefaultConfig() Config {
	return Config{
		Arena:        Arena{Width: 10, Height: 10},
		MoveInterval: 500 * time.Millisecond,
		FoodInterval: 3 * time.Second,
		Start:        Cell{X: 4, Y: 5},
		StartFacing:  Up,
		Seed:         rand.Uint32,
	}
}

// StartTail is the cell directly behind the starting head.
func (c Config) StartTail() Cell {
	dx, dy := c.StartFacing.Delta()
	return c.Start.Add(-dx, -dy)
}

// Validate checks the config for values a world cannot run with.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena %dx%d must be positive", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	}
	if c.MoveInterval <= 0 {
		return fmt.Errorf("%w: move interval %s must be positive", ErrInvalidConfig, c.MoveInterval)
	}
	if c.FoodInterval <= 0 {
		return fmt.Errorf("%w: food interval %s must be positive", ErrInvalidConfig, c.FoodInterval)
	}
	if c.StartFacing > Down {
		return fmt.Errorf("%w: unknown start facing %d", ErrInvalidConfig, c.StartFacing)
	}
	if !c.Arena.InBounds(c.Start) {
		return fmt.Errorf("%w: start %v outside arena", ErrInvalidConfig, c.Start)
	}
	if tail := c.StartTail(); !c.Arena.InBounds(tail) {
		return fmt.Errorf("%w: start tail %v outside arena", ErrInvalidConfig, tail)
	}
	return nil
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for game events. Worlds log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}
