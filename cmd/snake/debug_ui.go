package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridsnake/ecs"
	"github.com/plus3/gridsnake/ecs/debugui"
	"github.com/plus3/gridsnake/snake"
)

func spawnSnakeWindow(ui *ecs.Storage, world *snake.World) {
	ui.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(770, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 320), imgui.CondOnce)

			if imgui.BeginV("Snake", nil, 0) {
				stats := world.Stats()
				snakeCells := world.Snake()

				imgui.Text(fmt.Sprintf("Facing: %s", world.Facing()))
				imgui.Text(fmt.Sprintf("Head: (%d, %d)", snakeCells[0].X, snakeCells[0].Y))
				imgui.Text(fmt.Sprintf("Length: %d (best %d)", stats.Length, stats.BestLength))
				imgui.Separator()
				imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
				imgui.Text(fmt.Sprintf("Resets: %d", stats.Resets))
				imgui.Text(fmt.Sprintf("Food: %d spawned, %d eaten, %d on board", stats.FoodSpawned, stats.FoodEaten, len(world.Food())))
				imgui.Separator()

				if imgui.Button("Spawn food") {
					world.SpawnFood()
				}
				imgui.SameLine()
				if imgui.Button("Grow") {
					world.Grow(snakeCells[len(snakeCells)-1])
				}
				imgui.SameLine()
				if imgui.Button("Restart") {
					world.Restart()
				}

				if imgui.TreeNodeStr("Board") {
					imgui.Text(world.Board())
					imgui.TreePop()
				}
			}
			imgui.End()
		},
	})
}
