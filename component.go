package ecs

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// TypeKey is a stable, comparable identifier distinguishing concrete
// component and system types at run time.
type TypeKey = reflect.Type

// TypeKeyFor returns the type key for T.
func TypeKeyFor[T any]() TypeKey {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// componentType ties a component type key to its schema identity, its mask
// bit, and the column holding its values.
type componentType struct {
	key     TypeKey
	element table.ElementType
	bit     uint32
	column  Column
}

// registerComponentType creates the column for T, backfilled with one absent
// slot per existing entity, and assigns its mask bit through the world
// schema. Callers must have checked that no column for T exists yet.
func registerComponentType[T any](w *World) *componentType {
	element := table.FactoryNewElementType[T]()
	w.schema.Register(element)
	ct := &componentType{
		key:     TypeKeyFor[T](),
		element: element,
		bit:     w.schema.RowIndexFor(element),
		column:  newColumn[T](w.count),
	}
	w.types.Register(ct.key, ct)
	w.version++
	return ct
}

// columnFor resolves the concrete column for T, distinguishing a missing
// registration from a corrupted one.
func columnFor[T any](w *World) (*column[T], *componentType, error) {
	key := TypeKeyFor[T]()
	ct, ok := w.types.Lookup(key)
	if !ok {
		return nil, nil, MissingStorageError{Key: key}
	}
	col, ok := ct.column.(*column[T])
	if !ok {
		return nil, nil, ComponentTypeMismatchError{Key: ct.column.Key(), Requested: key}
	}
	return col, ct, nil
}
