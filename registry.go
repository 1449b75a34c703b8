package ecs

var _ Registry[any] = &simpleRegistry[any]{}

// simpleRegistry is an insertion-ordered collection keyed by type key. The
// world uses one for its columns and the scheduler uses one for its systems.
type simpleRegistry[T any] struct {
	items       []T
	keys        []TypeKey
	itemIndices map[TypeKey]int
}

func newRegistry[T any]() *simpleRegistry[T] {
	return &simpleRegistry[T]{
		itemIndices: make(map[TypeKey]int),
	}
}

func (r *simpleRegistry[T]) Lookup(key TypeKey) (T, bool) {
	if idx, ok := r.itemIndices[key]; ok {
		return r.items[idx], true
	}
	var zero T
	return zero, false
}

// Register appends the item under key, reporting false on a duplicate key.
func (r *simpleRegistry[T]) Register(key TypeKey, item T) bool {
	if _, exists := r.itemIndices[key]; exists {
		return false
	}
	r.itemIndices[key] = len(r.items)
	r.items = append(r.items, item)
	r.keys = append(r.keys, key)
	return true
}

// Remove deletes the item under key, preserving the order of the rest.
// Reports false when the key is not registered.
func (r *simpleRegistry[T]) Remove(key TypeKey) bool {
	idx, ok := r.itemIndices[key]
	if !ok {
		return false
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	r.keys = append(r.keys[:idx], r.keys[idx+1:]...)
	delete(r.itemIndices, key)
	for i := idx; i < len(r.keys); i++ {
		r.itemIndices[r.keys[i]] = i
	}
	return true
}

// Items returns the registered items in insertion order. The slice is shared;
// callers must not mutate it.
func (r *simpleRegistry[T]) Items() []T {
	return r.items
}

func (r *simpleRegistry[T]) Len() int {
	return len(r.items)
}
