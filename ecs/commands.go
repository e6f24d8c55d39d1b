package ecs

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	storage *Storage
	spawns  []spawnCommand
	deletes []EntityId
	defers  []func()
}

func newCommands(storage *Storage) *Commands {
	return &Commands{storage: storage}
}

type spawnCommand struct {
	entity     EntityId
	components []any
}

// Defer queues a function to run after the spawns and deletes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components. The
// returned id is reserved immediately and gains its components on Flush.
func (c *Commands) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}
	id := c.storage.reserve()
	c.spawns = append(c.spawns, spawnCommand{entity: id, components: components})
	return id
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Flush applies deletes, then spawns, then deferred functions, and resets the buffer.
// Deleting an entity twice, or deleting one that is already gone, is a no-op.
func (c *Commands) Flush() {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		c.storage.Delete(id)
		deleted[id] = true
	}

	for _, cmd := range c.spawns {
		if deleted[cmd.entity] || !c.storage.Alive(cmd.entity) {
			continue
		}
		c.storage.attach(cmd.entity, cmd.components)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
