// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Panels are plain values; SpawnDebugUI attaches them to a UI storage as ImguiItem entities that
// inspect another storage and its scheduler.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridsnake/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState is a singleton mirroring Dear ImGui's input capture flags.
// Setting Hidden skips every panel; capture is reported as false while hidden
// so the game keeps its input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
	Hidden              bool
}

// ImguiSystem defers the render function of every ImguiItem to the end of the
// frame, after the storage has settled.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	if state.Hidden {
		state.WantCaptureMouse = false
		state.WantCaptureKeyboard = false
		return
	}

	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.Render)
	}
}
