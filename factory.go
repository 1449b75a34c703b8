package ecs

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld()
}

func (f factory) NewQuery(keys ...TypeKey) *Query {
	return newQuery(keys...)
}

func (f factory) NewCursor(query *Query, world *World) *Cursor {
	return newCursor(query, world)
}
