package ecs

import (
	iter_util "github.com/TheBitDrifter/util/iter"
)

// Query matches entities carrying every one of a required set of component
// types. The resolved match set is memoized against the world's mutation
// version, so repeated resolution between structural changes is free.
//
// A Query is not safe for concurrent use; systems build their own.
type Query struct {
	keys     []TypeKey
	resolved []Entity
	version  uint32
	valid    bool
}

func newQuery(keys ...TypeKey) *Query {
	return &Query{keys: keys}
}

// Add appends required component types. Order affects only short-circuit
// cost, never results.
func (q *Query) Add(keys ...TypeKey) {
	q.keys = append(q.keys, keys...)
	q.valid = false
}

// Get returns the matching entities in ascending handle order. A required
// type with no registered column yields a MissingStorageError. The returned
// slice is the caller's; later resolutions never write into it.
func (q *Query) Get(w *World) ([]Entity, error) {
	cursor := newCursor(q, w)
	entities := iter_util.Collect(cursor.Entities())
	return entities, cursor.Err()
}

// Cursor returns an iterator over the matching entities.
func (q *Query) Cursor(w *World) *Cursor {
	return newCursor(q, w)
}

func (q *Query) resolve(w *World) ([]Entity, error) {
	if q.valid && q.version == w.version {
		return q.resolved, nil
	}
	required, err := w.maskFor(q.keys)
	if err != nil {
		return nil, err
	}
	// A fresh slice per resolution: the previous match set may still be held
	// by callers or live cursors.
	matches := make([]Entity, 0, len(q.resolved))
	for i := 0; i < w.count; i++ {
		if w.masks[i].ContainsAll(required) {
			matches = append(matches, Entity(i))
		}
	}
	q.resolved = matches
	q.version = w.version
	q.valid = true
	return matches, nil
}
