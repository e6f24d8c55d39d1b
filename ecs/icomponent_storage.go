package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component storage.
type iComponentStorage interface {
	Insert(id EntityId, item any) bool
	Remove(id EntityId)
	Get(id EntityId) any
	Has(id EntityId) bool
	Len() int
	Ids() iter.Seq[EntityId]
}
