package debugui

import "github.com/plus3/gridsnake/ecs"

// SpawnDebugUI adds the standard inspection panels to ui. The panels read
// target and scheduler, which normally belong to the game rather than to ui.
func SpawnDebugUI(ui *ecs.Storage, target *ecs.Storage, scheduler *ecs.Scheduler) {
	browser := NewEntityBrowser(100)
	inspector := NewComponentInspector()
	performance := NewPerformanceStats(120)
	systems := NewSystemStatsPanel()
	queries := NewQueryDebugger()
	timer := NewFrameTimer()

	ui.Spawn(ImguiItem{Render: func() {
		browser.Render(target)
		inspector.Render(target, browser.SelectedEntity())
	}})
	ui.Spawn(ImguiItem{Render: func() {
		performance.Render(target, timer.GetDeltaTime())
	}})
	ui.Spawn(ImguiItem{Render: func() {
		systems.Render(scheduler)
	}})
	ui.Spawn(ImguiItem{Render: func() {
		queries.Render(target)
	}})
}

// RegisterDebugUIComponents registers the components SpawnDebugUI needs in the UI storage.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
