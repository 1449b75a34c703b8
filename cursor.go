package ecs

import "iter"

var _ iCursor = &Cursor{}

// Cursor iterates a query's matches against one world. Matches resolve
// lazily on the first advance.
type Cursor struct {
	query *Query
	world *World

	matches []Entity
	pos     int
	err     error

	initialized bool
}

func newCursor(query *Query, world *World) *Cursor {
	return &Cursor{
		query: query,
		world: world,
	}
}

// Next advances the cursor, reporting false when the matches are exhausted
// or resolution failed (see Err).
func (c *Cursor) Next() bool {
	c.initialize()
	if c.err != nil || c.pos >= len(c.matches) {
		return false
	}
	c.pos++
	return true
}

// Entity returns the match at the current cursor position.
func (c *Cursor) Entity() Entity {
	return c.matches[c.pos-1]
}

// Err returns the resolution error, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Entities iterates the matches in ascending handle order.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		c.initialize()
		for c.pos < len(c.matches) {
			entity := c.matches[c.pos]
			c.pos++
			if !yield(entity) {
				return
			}
		}
	}
}

// TotalMatched returns the number of matching entities.
func (c *Cursor) TotalMatched() int {
	c.initialize()
	return len(c.matches)
}

// Reset rewinds the cursor and forces re-resolution on the next advance.
func (c *Cursor) Reset() {
	c.pos = 0
	c.matches = nil
	c.err = nil
	c.initialized = false
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.matches, c.err = c.query.resolve(c.world)
	c.initialized = true
}
