package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gridsnake/ecs"
)

func NewQueryDebugger() *QueryDebugger {
	return &QueryDebugger{
		selectedComponentTypes: make(map[reflect.Type]bool),
	}
}

func (qd *QueryDebugger) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(770, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[reflect.Type]bool)
	}

	for _, compType := range storage.KnownComponentTypes() {
		selected := qd.selectedComponentTypes[compType]
		if imgui.Checkbox(compType.String(), &selected) {
			if selected {
				qd.selectedComponentTypes[compType] = true
			} else {
				delete(qd.selectedComponentTypes, compType)
			}
		}
	}

	imgui.Separator()

	if len(qd.selectedComponentTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := matchingEntities(storage, qd.selectedComponentTypes)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entities") {
		for _, id := range matching {
			imgui.BulletText(fmt.Sprintf("%d (gen %d)", id.Index(), id.Generation()))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// matchingEntities returns the live entities that carry every required type.
func matchingEntities(storage *ecs.Storage, required map[reflect.Type]bool) []ecs.EntityId {
	var matching []ecs.EntityId
	for id := range storage.Entities() {
		ok := true
		for t := range required {
			if !storage.HasComponent(id, t) {
				ok = false
				break
			}
		}
		if ok {
			matching = append(matching, id)
		}
	}
	return matching
}
