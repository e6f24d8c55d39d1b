package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/gridsnake/ecs"
	"github.com/plus3/gridsnake/ecs/debugui"
	debugui_ebiten "github.com/plus3/gridsnake/ecs/debugui/ebiten"
	"github.com/plus3/gridsnake/internal/logging"
	"github.com/plus3/gridsnake/snake"
)

func main() {
	defaults := snake.DefaultConfig()
	width := flag.Int("width", defaults.Arena.Width, "Arena width in cells.")
	height := flag.Int("height", defaults.Arena.Height, "Arena height in cells.")
	move := flag.Duration("move", defaults.MoveInterval, "Time between snake moves.")
	food := flag.Duration("food", defaults.FoodInterval, "Time between food spawns.")
	window := flag.Int("window", 500, "Window size in pixels.")
	debug := flag.Bool("debug", false, "Show the ImGui inspection overlay; F1 hides it.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	logFormat := flag.String("log-format", "text", "Log format: text or json.")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := defaults
	cfg.Arena = snake.Arena{Width: *width, Height: *height}
	cfg.MoveInterval = *move
	cfg.FoodInterval = *food

	world, err := snake.New(cfg, snake.WithLogger(logger))
	if err != nil {
		logger.Error("cannot create world", "err", err)
		os.Exit(1)
	}

	game := &Game{
		world:  world,
		logger: logger,
		dt:     time.Second / time.Duration(ebiten.TPS()),
	}

	if *debug {
		game.attachDebugUI(*window)
	} else {
		ebiten.SetWindowSize(*window, *window)
		ebiten.SetWindowTitle("Snake")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "arena", cfg.Arena, "move", cfg.MoveInterval, "food", cfg.FoodInterval, "debug", *debug)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
	logger.Info("bye", "stats", world.Stats())
}

// Game implements ebiten.Game on top of a snake world and, optionally, a
// second ECS storage that hosts the debug panels.
type Game struct {
	world  *snake.World
	logger *slog.Logger
	dt     time.Duration

	ui           *ecs.Scheduler
	imguiInput   *ecs.Singleton[debugui.ImguiInputState]
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) attachDebugUI(window int) {
	backend := debugui_ebiten.NewImguiBackend("Snake (debug)", window*2, window+200)
	g.imguiBackend = &backend

	registry := ecs.NewComponentRegistry()
	debugui.RegisterDebugUIComponents(registry)
	storage := ecs.NewStorage(registry)

	g.ui = ecs.NewScheduler(storage)
	g.ui.Register(&debugui.ImguiSystem{})
	g.imguiInput = ecs.NewSingleton[debugui.ImguiInputState](storage)

	debugui.SpawnDebugUI(storage, g.world.Storage(), g.world.Scheduler())
	spawnSnakeWindow(storage, g.world)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.ui == nil {
		g.world.Update(g.dt, pressedKeys())
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		state := g.imguiInput.Get()
		state.Hidden = !state.Hidden
	}

	g.imguiBackend.Overlay(func() {
		keys := pressedKeys()
		if g.imguiInput.Get().WantCaptureKeyboard {
			keys = 0
		}
		g.world.Update(g.dt, keys)
		g.ui.Once(g.dt.Seconds())
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world)
	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

var keyBindings = []struct {
	dir  snake.Direction
	keys []ebiten.Key
}{
	{snake.Left, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{snake.Down, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{snake.Up, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{snake.Right, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

func pressedKeys() snake.Keys {
	var pressed snake.Keys
	for _, binding := range keyBindings {
		for _, key := range binding.keys {
			if ebiten.IsKeyPressed(key) {
				pressed = pressed.With(binding.dir)
			}
		}
	}
	return pressed
}
