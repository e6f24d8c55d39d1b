package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/gridsnake/snake"
)

type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var keyDirections = map[string]snake.Direction{
	"left":  snake.Left,
	"h":     snake.Left,
	"down":  snake.Down,
	"j":     snake.Down,
	"up":    snake.Up,
	"k":     snake.Up,
	"right": snake.Right,
	"l":     snake.Right,
}

var (
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#76C878")).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAE6A0"))
	foodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FA786E")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3F46"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5A5F6B")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9AA0AA"))
)

// model drives a snake world from bubbletea ticks. Terminals report key
// presses rather than held keys, so presses are collected between frames
// and handed to the world as the frame's pressed set.
type model struct {
	world   *snake.World
	frame   time.Duration
	last    time.Time
	pressed snake.Keys
	paused  bool
}

func initialModel(world *snake.World, frame time.Duration) model {
	return model{world: world, frame: frame}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		case "r":
			m.world.Restart()
		default:
			if d, ok := keyDirections[key]; ok {
				m.pressed = m.pressed.With(d)
			}
		}
	case TickMsg:
		now := time.Time(msg)
		dt := m.frame
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now

		if !m.paused {
			m.world.Update(dt, m.pressed)
		}
		m.pressed = 0
		return m, tickCmd(m.frame)
	}
	return m, nil
}

func (m model) View() string {
	board := boardStyle.Render(colorBoard(m.world.Board()))

	stats := m.world.Stats()
	status := fmt.Sprintf("length %d  best %d  resets %d  food %d  facing %s",
		stats.Length, stats.BestLength, stats.Resets, len(m.world.Food()), m.world.Facing())
	if m.paused {
		status += "  [paused]"
	}

	help := "arrows/hjkl move  p pause  r reset  q quit"
	return lipgloss.JoinVertical(lipgloss.Left, board, statusStyle.Render(status), statusStyle.Render(help))
}

// colorBoard styles the text board one cell at a time, doubling each cell
// so the arena looks square in a terminal.
func colorBoard(board string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(board, "\n"), "\n") {
		for _, r := range line {
			var style lipgloss.Style
			switch r {
			case 'H':
				style = headStyle
			case 'o':
				style = bodyStyle
			case '*':
				style = foodStyle
			default:
				style = emptyStyle
			}
			b.WriteString(style.Render(string(r) + " "))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
