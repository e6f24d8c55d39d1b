package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() iComponentStorage {
		return newGenericComponentStorage[T]()
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of type T in fixed-size blocks.
// Blocks are allocated individually so component pointers stay valid while
// the storage grows. The slot of each entity is tracked in an intmap.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	owners    []EntityId
	slots     *intmap.Map[EntityId, int]
	freeSlots []int
}

func newGenericComponentStorage[T any]() *genericComponentStorage[T] {
	return &genericComponentStorage[T]{
		slots: intmap.New[EntityId, int](genericBlockSize),
	}
}

// Insert stores a component for the entity, replacing any previous value.
// Returns false if item is not a T or *T.
func (cs *genericComponentStorage[T]) Insert(id EntityId, item any) bool {
	var value T
	if ptr, ok := item.(*T); ok {
		value = *ptr
	} else if val, ok := item.(T); ok {
		value = val
	} else {
		return false
	}

	if slot, ok := cs.slots.Get(id); ok {
		*cs.at(slot) = value
		return true
	}

	var slot int
	if n := len(cs.freeSlots); n > 0 {
		slot = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
		cs.owners[slot] = id
	} else {
		slot = len(cs.owners)
		if slot/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		}
		cs.owners = append(cs.owners, id)
	}

	*cs.at(slot) = value
	cs.slots.Put(id, slot)
	return true
}

func (cs *genericComponentStorage[T]) at(slot int) *T {
	return &cs.blocks[slot/genericBlockSize][slot%genericBlockSize]
}

// Get returns a pointer to the entity's component, or nil.
func (cs *genericComponentStorage[T]) Get(id EntityId) any {
	slot, ok := cs.slots.Get(id)
	if !ok {
		return nil
	}
	return cs.at(slot)
}

// Remove clears the entity's slot and makes it available for reuse.
func (cs *genericComponentStorage[T]) Remove(id EntityId) {
	slot, ok := cs.slots.Get(id)
	if !ok {
		return
	}

	var zero T
	*cs.at(slot) = zero
	cs.owners[slot] = 0
	cs.slots.Del(id)
	cs.freeSlots = append(cs.freeSlots, slot)
}

// Has checks if the entity has a component in this storage.
func (cs *genericComponentStorage[T]) Has(id EntityId) bool {
	return cs.slots.Has(id)
}

// Len returns the number of stored components.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.slots.Len()
}

// Ids iterates the owning entities in slot order.
func (cs *genericComponentStorage[T]) Ids() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range cs.owners {
			if id == 0 {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}
