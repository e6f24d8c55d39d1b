package ecs_test

import "github.com/plus3/gridsnake/ecs"

// Common test component types
type Tile struct {
	X, Y int
}

type Heading struct {
	DX, DY int
}

type Label struct {
	Value string
}

type Energy struct {
	Current int
	Max     int
}

type Edible struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Weight float64

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Tile](registry)
	ecs.RegisterComponent[Heading](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Energy](registry)
	ecs.RegisterComponent[Edible](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[Weight](registry)
	return registry
}
