package ecs

// System represents a behavior that operates on entities with specific components.
// Exported Query, Singleton and Events fields are bound to the storage when the
// system is registered; other fields keep their state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
