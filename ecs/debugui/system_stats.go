package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridsnake/ecs"
)

func NewSystemStatsPanel() *SystemStatsPanel {
	return &SystemStatsPanel{sortAscending: true}
}

func (sp *SystemStatsPanel) Render(scheduler *ecs.Scheduler) {
	stats := scheduler.GetStats()

	imgui.SetNextWindowPosV(imgui.NewVec2(440, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(520, 260), imgui.CondOnce)
	if !imgui.BeginV("System Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Systems: %d  Frames: %d  Executions: %d", stats.SystemCount, stats.Frames, stats.TotalExecutions))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Period")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sp.sortColumn = int(spec.ColumnIndex())
			sp.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		systems := sortSystems(stats.Systems, sp.sortColumn, sp.sortAscending)
		for _, sys := range systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			imgui.Text(formatPeriod(sys.Period))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.AvgDuration)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MinDuration)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MaxDuration)))
		}
		imgui.EndTable()
	}

	imgui.End()
}

// sortSystems returns a sorted copy. Column 0 with ascending order keeps
// registration order, which is also execution order.
func sortSystems(systems []ecs.SystemStats, column int, ascending bool) []ecs.SystemStats {
	sorted := append([]ecs.SystemStats(nil), systems...)
	if column == 0 && ascending {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i], sorted[j]

		var less bool
		switch column {
		case 0:
			less = left.Name < right.Name
		case 1:
			less = left.Period < right.Period
		case 2:
			less = left.ExecutionCount < right.ExecutionCount
		case 3:
			less = left.AvgDuration < right.AvgDuration
		case 4:
			less = left.MinDuration < right.MinDuration
		case 5:
			less = left.MaxDuration < right.MaxDuration
		}

		if !ascending {
			return !less
		}
		return less
	})
	return sorted
}

func formatPeriod(period time.Duration) string {
	if period == 0 {
		return "every frame"
	}
	return period.String()
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
