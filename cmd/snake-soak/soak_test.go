package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/gridsnake/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestNewSoakRejectsZeroWorlds(t *testing.T) {
	_, err := newSoak(snake.DefaultConfig(), 0, 1)
	assert.ErrorIs(t, err, snake.ErrInvalidConfig)
}

func TestSoakReport(t *testing.T) {
	s, err := newSoak(snake.DefaultConfig(), 4, 7)
	require.NoError(t, err)

	for range 200 {
		s.step(100 * time.Millisecond)
	}

	report := &Report{Worlds: 4, Frame: 100 * time.Millisecond, Arena: snake.DefaultConfig().Arena}
	report.collect(s)

	// 20s of simulated time at one move per 500ms, per world.
	assert.Equal(t, 4*40, report.Totals.Ticks)
	assert.Equal(t, 4*6, report.Totals.FoodSpawned)
	require.Len(t, report.Systems, 7)
	assert.Equal(t, "InputSystem", report.Systems[0].Name)
	assert.Equal(t, int64(4*200), report.Systems[0].ExecutionCount)
	assert.Equal(t, int64(4*40), report.Systems[1].ExecutionCount)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "| InputSystem | every frame | 800 |")
	assert.Contains(t, out.String(), "- **Moves:** 160")
}
