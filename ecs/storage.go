package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"
)

// Storage is the main ECS storage interface
type Storage struct {
	registry   *ComponentRegistry
	entities   entityAllocator
	components map[reflect.Type]iComponentStorage
	singletons map[reflect.Type]*singletonEntry
	events     []eventQueue
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		components: make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	id := s.entities.allocate()
	s.attach(id, components)
	return id
}

// reserve allocates an entity id without components. Used by Commands so a
// deferred spawn can hand out its id before the flush.
func (s *Storage) reserve() EntityId {
	return s.entities.allocate()
}

func (s *Storage) attach(id EntityId, components []any) {
	for _, comp := range components {
		compType := componentType(comp)
		if !s.storageFor(compType).Insert(id, comp) {
			panic("component value does not match its storage: " + compType.String())
		}
	}
}

// Alive reports whether the id refers to a live entity
func (s *Storage) Alive(id EntityId) bool {
	return s.entities.isAlive(id)
}

// Delete removes all data related to the entity ID. Deleting a dead or
// stale id is a no-op and returns false.
func (s *Storage) Delete(id EntityId) bool {
	if !s.entities.release(id) {
		return false
	}
	for _, storage := range s.components {
		storage.Remove(id)
	}
	return true
}

// AddComponent attaches (or replaces) a component on a live entity
func (s *Storage) AddComponent(id EntityId, component any) {
	if !s.Alive(id) {
		panic("AddComponent on dead entity")
	}
	s.attach(id, []any{component})
}

// RemoveComponent detaches a component type from an entity
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	if storage, ok := s.components[compType]; ok {
		storage.Remove(id)
	}
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.Alive(id) {
		return nil
	}
	storage, ok := s.components[compType]
	if !ok {
		return nil
	}
	return storage.Get(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	storage, ok := s.components[compType]
	return ok && storage.Has(id)
}

// EntityCount returns the number of live entities
func (s *Storage) EntityCount() int {
	return s.entities.count
}

// Entities iterates the live entity ids in index order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		a := &s.entities
		for index, alive := range a.alive {
			if !alive {
				continue
			}
			if !yield(NewEntityId(a.generations[index], uint32(index))) {
				return
			}
		}
	}
}

// ComponentTypes returns the component types attached to an entity, sorted by name.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.Alive(id) {
		return nil
	}
	var types []reflect.Type
	for typ, storage := range s.components {
		if storage.Has(id) {
			types = append(types, typ)
		}
	}
	sortTypes(types)
	return types
}

// KnownComponentTypes returns every component type that has been stored at
// least once, sorted by name.
func (s *Storage) KnownComponentTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(s.components))
	for typ := range s.components {
		types = append(types, typ)
	}
	sortTypes(types)
	return types
}

func sortTypes(types []reflect.Type) {
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
}

func (s *Storage) storageFor(compType reflect.Type) iComponentStorage {
	if storage, ok := s.components[compType]; ok {
		return storage
	}

	factory := s.registry.getFactory(compType)
	if factory == nil {
		panic("component type " + compType.String() + " not registered")
	}
	storage := factory()
	s.components[compType] = storage
	return storage
}

// componentType resolves the storage type of a component value
func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType == nil {
		panic("nil component")
	}

	// If it's a pointer, get the underlying type
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	switch compType.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return compType
}

// AddSingleton stores a singleton value keyed by its type, replacing any existing one.
func (s *Storage) AddSingleton(value any) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		panic("nil singleton")
	}

	if entry, ok := s.singletons[valueType]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(valueType)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[valueType] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ReadSingleton fills a **T with a pointer to the singleton of type T.
// Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	entry := s.singletons[targetValue.Elem().Type().Elem()]
	if entry == nil {
		return false
	}
	targetValue.Elem().Set(entry.value)
	return true
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T. It panics if the
// entity is dead or lacks the component.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, ok := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	if !ok {
		panic("entity has no " + reflect.TypeFor[T]().String() + " component")
	}
	return comp
}

// StorageStats is a snapshot of storage occupancy.
type StorageStats struct {
	TotalEntityCount   int
	ComponentTypeCount int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats reports how many entities carry one component type.
type ComponentStats struct {
	Type        string
	EntityCount int
}

// CollectStats returns counts of entities, components and singletons.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.entities.count,
		SingletonCount:   len(s.singletons),
	}

	for typ, storage := range s.components {
		if storage.Len() == 0 {
			continue
		}
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:        typ.String(),
			EntityCount: storage.Len(),
		})
	}
	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		return stats.ComponentBreakdown[i].Type < stats.ComponentBreakdown[j].Type
	})
	stats.ComponentTypeCount = len(stats.ComponentBreakdown)

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
