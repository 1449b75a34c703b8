package ecs

// Typed component access. Generic free functions locate the column for T and
// read or write the entity's slot. "Value absent" is an ok=false result;
// "type never registered" is a MissingStorageError.

// InitStorage eagerly registers the column for T.
func InitStorage[T any](w *World) error {
	key := TypeKeyFor[T]()
	if _, exists := w.types.Lookup(key); exists {
		return DuplicateStorageError{Key: key}
	}
	if w.locked {
		return LockedWorldError{}
	}
	registerComponentType[T](w)
	return nil
}

// AddComponent attaches a value of T to the entity, lazily creating the
// column for T when none exists. Re-attachment overwrites the previous
// value. Fails with LockedWorldError during a concurrent batch; use
// EnqueueAttach or SetComponent instead.
func AddComponent[T any](w *World, entity Entity, value T) error {
	if w.locked {
		return LockedWorldError{}
	}
	key := TypeKeyFor[T]()
	ct, ok := w.types.Lookup(key)
	if !ok {
		ct = registerComponentType[T](w)
	}
	col, ok := ct.column.(*column[T])
	if !ok {
		return ComponentTypeMismatchError{Key: ct.column.Key(), Requested: key}
	}
	firstAttach := !col.Has(entity)
	if err := col.set(entity, value); err != nil {
		return err
	}
	w.markPresence(entity, ct, firstAttach)
	return nil
}

// SetComponent overwrites the entity's value of T. Unlike AddComponent it
// never creates the column: a missing registration is a MissingStorageError.
// During a concurrent batch only overwrites of already-present slots are
// allowed, since a first-time attachment changes query membership.
func SetComponent[T any](w *World, entity Entity, value T) error {
	col, ct, err := columnFor[T](w)
	if err != nil {
		return err
	}
	firstAttach := !col.Has(entity)
	if firstAttach && w.locked {
		return LockedWorldError{}
	}
	if err := col.set(entity, value); err != nil {
		return err
	}
	w.markPresence(entity, ct, firstAttach)
	return nil
}

// GetComponent returns a copy of the entity's value of T. ok is false when
// the entity carries no value of T.
func GetComponent[T any](w *World, entity Entity) (T, bool, error) {
	var zero T
	col, _, err := columnFor[T](w)
	if err != nil {
		return zero, false, err
	}
	ptr, ok, err := col.get(entity)
	if err != nil || !ok {
		return zero, false, err
	}
	return *ptr, true, nil
}

// GetComponentMut returns a pointer to the entity's value of T for in-place
// mutation. ok is false when the entity carries no value of T.
func GetComponentMut[T any](w *World, entity Entity) (*T, bool, error) {
	col, _, err := columnFor[T](w)
	if err != nil {
		return nil, false, err
	}
	return col.get(entity)
}

// HasComponent reports whether the entity carries a value of T.
func HasComponent[T any](w *World, entity Entity) bool {
	return w.HasComponent(entity, TypeKeyFor[T]())
}

// With wraps a component value for CreateEntityWithComponents and the
// enqueue variants.
func With[T any](value T) ComponentValue {
	return func(w *World, entity Entity) error {
		return AddComponent(w, entity, value)
	}
}
