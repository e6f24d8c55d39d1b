package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/gridsnake/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := snake.DefaultConfig()
	cfg.FoodInterval = time.Hour
	world, err := snake.New(cfg)
	require.NoError(t, err)
	return initialModel(world, 100*time.Millisecond)
}

func press(m model, key tea.KeyType) model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(model)
}

func tick(m model, at time.Time) model {
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		panic("tick did not schedule the next frame")
	}
	return next.(model)
}

func TestModelCollectsPressesUntilTheNextFrame(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyRight)
	assert.True(t, m.pressed.Has(snake.Right))

	start := time.Now()
	m = tick(m, start)
	assert.Equal(t, snake.Right, m.world.Facing())
	assert.Zero(t, m.pressed)
}

func TestModelAdvancesOnElapsedTime(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = tick(m, start)
	m = tick(m, start.Add(250*time.Millisecond))
	m = tick(m, start.Add(500*time.Millisecond))

	assert.Equal(t, snake.Cell{X: 4, Y: 6}, m.world.Snake()[0])
}

func TestModelPauseAndQuit(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(model)
	assert.True(t, m.paused)

	start := time.Now()
	m = tick(m, start)
	m = tick(m, start.Add(time.Second))
	assert.Equal(t, snake.Cell{X: 4, Y: 5}, m.world.Snake()[0])

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestColorBoardKeepsCells(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "H")
	assert.Contains(t, view, "length 2")
}
