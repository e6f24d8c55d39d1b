package debugui

import (
	"reflect"

	"github.com/plus3/gridsnake/ecs"
)

// EntityBrowser lists the live entities of a storage with their component types.
type EntityBrowser struct {
	cache              *EntityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspector shows and edits the components of the selected entity.
type ComponentInspector struct {
	selectedEntityId ecs.EntityId
	fields           fieldCache
}

// PerformanceStats plots frame times and storage occupancy.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// SystemStatsPanel shows per-system timings from a scheduler.
type SystemStatsPanel struct {
	sortColumn    int
	sortAscending bool
}

// QueryDebugger counts the entities that carry every selected component type.
type QueryDebugger struct {
	selectedComponentTypes map[reflect.Type]bool
}
