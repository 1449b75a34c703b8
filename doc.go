/*
Package ecs provides a column-based Entity-Component-System runtime for games
and simulations.

Entities are lightweight integer handles. Each registered component type owns
one column with a single optional slot per entity, and every column stays in
lockstep with the entity count. Queries match entities by the set of component
types they carry, and systems run per-tick update logic over those matches.

Core Concepts:

  - Entity: A unique integer handle that represents a simulation object.
  - Component: A plain data value attached to an entity.
  - Column: Per-component-type storage, one optional slot per entity.
  - Query: A way to find entities carrying a required set of component types.
  - System: Per-tick update logic dispatched by the world's scheduler.

Basic Usage:

	// Create a world and register columns
	world := ecs.Factory.NewWorld()
	ecs.InitStorage[Position](world)
	ecs.InitStorage[Velocity](world)

	// Create entities and attach components
	e, _ := world.CreateEntity()
	ecs.AddComponent(world, e, Position{X: 1, Y: 1})
	ecs.AddComponent(world, e, Velocity{X: 0.5, Y: 0})

	// Query entities and process them
	query := ecs.Factory.NewQuery(ecs.TypeKeyFor[Position](), ecs.TypeKeyFor[Velocity]())
	cursor := query.Cursor(world)
	for cursor.Next() {
		pos, _, _ := ecs.GetComponentMut[Position](world, cursor.Entity())
		vel, _, _ := ecs.GetComponent[Velocity](world, cursor.Entity())
		pos.X += vel.X
		pos.Y += vel.Y
	}

	// Register systems and tick
	world.AddSystem(MoveSystem{})
	world.Update()

Entities and columns only ever grow forward: there is no entity destruction,
no handle reuse, and no component removal. Systems that declare their
component read/write sets are scheduled concurrently when their access does
not conflict; undeclared systems get exclusive access to the world.
*/
package ecs
