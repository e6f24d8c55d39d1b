package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components
// The type T should be a struct with embedded pointer fields for each component type.
// An embedded EntityId field receives the id of the matched entity.
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
	isId     bool
}

// NewView creates a new view for the given struct type
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	required := 0
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			fields = append(fields, viewField{offset: field.Offset, isId: true})
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		// Embedded fields are always required
		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}
		if !optional {
			required++
		}

		fields = append(fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}

	if required == 0 {
		panic("View needs at least one required component")
	}

	return &View[T]{storage: storage, fields: fields}
}

// Fill populates the provided struct pointer with component data for the given entity
// Returns false if the entity is dead or missing any required components
// Optional components are set to nil if not present
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.Alive(id) {
		return false
	}

	base := unsafe.Pointer(ptr)
	for _, f := range v.fields {
		fieldPtr := unsafe.Add(base, f.offset)

		if f.isId {
			*(*EntityId)(fieldPtr) = id
			continue
		}

		var componentPtr unsafe.Pointer
		if storage, ok := v.storage.components[f.typ]; ok {
			if comp := storage.Get(id); comp != nil {
				componentPtr = reflect.ValueOf(comp).UnsafePointer()
			}
		}

		if componentPtr == nil && !f.optional {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}
	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// driver picks the smallest storage among the required components; iterating
// it visits every candidate entity once.
func (v *View[T]) driver() iComponentStorage {
	var best iComponentStorage
	for _, f := range v.fields {
		if f.isId || f.optional {
			continue
		}
		storage, ok := v.storage.components[f.typ]
		if !ok {
			return nil
		}
		if best == nil || storage.Len() < best.Len() {
			best = storage
		}
	}
	return best
}

// Iter returns an iterator over all entities that have all the required components for this view
// The iterator yields (EntityId, T) pairs where T is the populated view struct
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		driver := v.driver()
		if driver == nil {
			return
		}

		var result T
		for id := range driver.Ids() {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}
