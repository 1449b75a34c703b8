package ecs

var _ Column = &column[int]{}

// slot is one optional payload cell. Absent slots are the normal state of an
// entity that was never given this component.
type slot[T any] struct {
	value   T
	present bool
}

// column stores the values of a single component type, indexed by entity
// handle. Its length equals the world entity count at all times.
type column[T any] struct {
	key   TypeKey
	slots []slot[T]
}

// newColumn builds a column backfilled with one absent slot per existing
// entity, so a lazily-created column starts in lockstep with the counter.
func newColumn[T any](backfill int) *column[T] {
	return &column[T]{
		key:   TypeKeyFor[T](),
		slots: make([]slot[T], backfill, max(backfill, Config.initialEntityCapacity)),
	}
}

func (c *column[T]) Extend() {
	c.slots = append(c.slots, slot[T]{})
}

func (c *column[T]) Len() int {
	return len(c.slots)
}

func (c *column[T]) Key() TypeKey {
	return c.key
}

func (c *column[T]) Has(e Entity) bool {
	return int(e) < len(c.slots) && c.slots[e].present
}

// set overwrites the slot at e with a present payload.
func (c *column[T]) set(e Entity, value T) error {
	if int(e) < 0 || int(e) >= len(c.slots) {
		return OutOfRangeEntityError{Entity: e, Length: len(c.slots)}
	}
	c.slots[e] = slot[T]{value: value, present: true}
	return nil
}

// get returns a pointer into the slot at e, or ok=false when the slot is
// absent. Absence is not an error.
func (c *column[T]) get(e Entity) (*T, bool, error) {
	if int(e) < 0 || int(e) >= len(c.slots) {
		return nil, false, OutOfRangeEntityError{Entity: e, Length: len(c.slots)}
	}
	if !c.slots[e].present {
		return nil, false, nil
	}
	return &c.slots[e].value, true, nil
}
