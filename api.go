package ecs

import "iter"

// Entity is an opaque handle identifying one row across all component
// columns. Handles are allocated by the World, start at 0, increase
// monotonically, and are never reused.
type Entity int

// Column is the type-erased surface of per-component-type storage: an
// append-only sequence of optional payloads, one slot per existing entity.
type Column interface {
	// Extend appends one absent slot so the column tracks the entity count.
	Extend()
	Len() int
	Has(Entity) bool
	Key() TypeKey
}

// System is a unit of per-tick update logic. The type key is used purely for
// registry identity (duplicate and removal checks), never for priority.
type System interface {
	Update(*World) error
	TypeKey() TypeKey
}

// ComponentAccessor optionally declares the component types a System reads
// and writes during Update. Systems whose declared access does not conflict
// are dispatched concurrently within a tick; systems without a declaration
// are treated as full-world writers and run exclusively.
type ComponentAccessor interface {
	Reads() []TypeKey
	Writes() []TypeKey
}

// ComponentValue attaches one component value to an entity. Values are built
// with With and consumed by CreateEntityWithComponents and
// EnqueueCreateEntity.
type ComponentValue func(*World, Entity) error

// Registry is an ordered, keyed collection with duplicate detection. The
// World keys its columns by component type and the scheduler keys its
// systems by system type.
type Registry[T any] interface {
	Lookup(TypeKey) (T, bool)
	Register(TypeKey, T) bool
	Remove(TypeKey) bool
	Items() []T
	Len() int
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
}
