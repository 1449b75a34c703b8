package ecs

import "fmt"

type DuplicateStorageError struct {
	Key TypeKey
}

func (e DuplicateStorageError) Error() string {
	return fmt.Sprintf("storage already registered for component type: %v", e.Key)
}

type MissingStorageError struct {
	Key TypeKey
}

func (e MissingStorageError) Error() string {
	return fmt.Sprintf("no storage registered for component type: %v", e.Key)
}

type DuplicateSystemError struct {
	Key TypeKey
}

func (e DuplicateSystemError) Error() string {
	return fmt.Sprintf("system already registered: %v", e.Key)
}

type MissingSystemError struct {
	Key TypeKey
}

func (e MissingSystemError) Error() string {
	return fmt.Sprintf("system not registered: %v", e.Key)
}

// ComponentTypeMismatchError reports a column whose stored payload type
// disagrees with the type requested by a reader. A column holds exactly one
// payload type, so this is an internal-consistency failure.
type ComponentTypeMismatchError struct {
	Key       TypeKey
	Requested TypeKey
}

func (e ComponentTypeMismatchError) Error() string {
	return fmt.Sprintf("column for %v cannot serve requested type %v", e.Key, e.Requested)
}

// OutOfRangeEntityError reports indexing a handle at or beyond the column
// length. Correct callers never see it: columns stay in lockstep with the
// entity counter.
type OutOfRangeEntityError struct {
	Entity Entity
	Length int
}

func (e OutOfRangeEntityError) Error() string {
	return fmt.Sprintf("entity %d out of range (column length %d)", e.Entity, e.Length)
}

// LockedWorldError reports a structural mutation (entity creation, column
// registration, first-time component attachment) attempted while the world
// is locked for a concurrent system batch. Use the Enqueue variants instead.
type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked"
}
