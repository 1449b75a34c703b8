package ecs

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// World owns the component columns, the entity counter, and the system
// scheduler. Exactly one logical owner mutates the world at any time: the
// caller between ticks, or the scheduler (and whichever systems it is
// currently running) during a tick.
type World struct {
	schema    table.Schema
	types     *simpleRegistry[*componentType]
	masks     []mask.Mask
	count     int
	version   uint32
	locked    bool
	opQueue   opQueue
	scheduler *scheduler
}

func newWorld() *World {
	return &World{
		schema:    table.Factory.NewSchema(),
		types:     newRegistry[*componentType](),
		masks:     make([]mask.Mask, 0, Config.initialEntityCapacity),
		scheduler: newScheduler(),
	}
}

// CreateEntity appends one absent slot to every registered column, allocates
// the next handle, and returns it. Handles ascend from 0 and are never
// reused.
func (w *World) CreateEntity() (Entity, error) {
	if w.locked {
		return 0, LockedWorldError{}
	}
	for _, ct := range w.types.Items() {
		ct.column.Extend()
	}
	entity := Entity(w.count)
	w.count++
	w.masks = append(w.masks, mask.Mask{})
	w.version++
	return entity, nil
}

// CreateEntityWithComponents creates an entity and attaches each given
// component value in sequence.
func (w *World) CreateEntityWithComponents(values ...ComponentValue) (Entity, error) {
	entity, err := w.CreateEntity()
	if err != nil {
		return 0, err
	}
	for _, value := range values {
		if err := value(w, entity); err != nil {
			return 0, err
		}
	}
	return entity, nil
}

// EnqueueCreateEntity defers entity creation until the world unlocks. Outside
// a locked batch the entity is created immediately. Safe for concurrent use
// by systems running within one batch.
func (w *World) EnqueueCreateEntity(values ...ComponentValue) error {
	if !w.locked {
		_, err := w.CreateEntityWithComponents(values...)
		return err
	}
	w.opQueue.enqueue(operation{typ: opCreate, values: values})
	return nil
}

// EnqueueAttach defers first-time component attachment on an existing entity
// until the world unlocks. Outside a locked batch the values attach
// immediately.
func (w *World) EnqueueAttach(entity Entity, values ...ComponentValue) error {
	if !w.locked {
		return w.attach(entity, values)
	}
	w.opQueue.enqueue(operation{typ: opAttach, entity: entity, values: values})
	return nil
}

func (w *World) attach(entity Entity, values []ComponentValue) error {
	for _, value := range values {
		if err := value(w, entity); err != nil {
			return err
		}
	}
	return nil
}

// HasComponent reports whether the entity's slot for the given component
// type is present. A false result covers both "value absent" and "type never
// registered"; only the typed accessors distinguish the two.
func (w *World) HasComponent(entity Entity, key TypeKey) bool {
	ct, ok := w.types.Lookup(key)
	if !ok {
		return false
	}
	return ct.column.Has(entity)
}

// EntityCount returns the entity counter. Every handle below it is valid.
func (w *World) EntityCount() int {
	return w.count
}

// AddSystem registers a system with the scheduler.
func (w *World) AddSystem(system System) error {
	return w.scheduler.addSystem(system)
}

// RemoveSystem unregisters the system of type T.
func RemoveSystem[T any](w *World) error {
	return w.scheduler.removeSystem(TypeKeyFor[T]())
}

// SystemCount returns the number of registered systems.
func (w *World) SystemCount() int {
	return w.scheduler.systems.Len()
}

// Update runs one tick: every registered system is dispatched in its own
// goroutine and join-barriered before Update returns. A system error or
// panic is fatal to the whole tick. Deferred operations enqueued by systems
// are applied before Update returns.
func (w *World) Update() error {
	return w.scheduler.update(w)
}

// Locked reports whether the world is locked for a concurrent system batch.
func (w *World) Locked() bool {
	return w.locked
}

func (w *World) lock() {
	w.locked = true
}

// unlock releases the batch lock and applies the deferred operation queue.
func (w *World) unlock() error {
	w.locked = false
	return w.processOperationQueue()
}

// markPresence records a first-time attachment in the entity's component
// mask. Mask bits are only ever set: components are replaced or left absent,
// never removed. Overwrites of a present slot must not touch the mask: the
// bit is already set, and systems of one concurrent batch may overwrite
// different components of the same entity, whose mask words they would
// otherwise race on.
func (w *World) markPresence(entity Entity, ct *componentType, firstAttach bool) {
	if !firstAttach {
		return
	}
	w.masks[entity].Mark(ct.bit)
	w.version++
}

// maskFor builds the combined mask for a set of component type keys,
// reporting the first key with no registered column.
func (w *World) maskFor(keys []TypeKey) (mask.Mask, error) {
	var m mask.Mask
	for _, key := range keys {
		ct, ok := w.types.Lookup(key)
		if !ok {
			return m, MissingStorageError{Key: key}
		}
		m.Mark(ct.bit)
	}
	return m, nil
}
