/*
Package ecs provides a generic Entity-Component-System core for games and
simulations.

ecs is not archetype-based: components of a given type live together in a
single per-type bucket, and each entity carries a bitset recording which
buckets it participates in. This trades cache-perfect iteration (what an
archetype store gives you) for a simpler storage model and add/remove of
individual components without moving an entity between storage classes.

Core Concepts:

  - Entity: an opaque, non-reusable uint64 identifier.
  - Component: a plain data type registered with a Manager at construction.
  - Manager: owns the component store plus three parallel arrays (ids,
    flags, component masks) and a thread pool used to run systems.
  - System: a function whose parameters declare the components it needs;
    applied to every entity whose component mask matches.

Basic Usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	mgr := ecs.Factory.NewManager(1000, ecs.Types2[Position, Velocity]()...)

	ecs.AddEntity(mgr, 0b11, 0)

	ecs.ApplySystem2(mgr, func(pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

ecs is the storage and dispatch substrate only; wiring it into a game loop,
concrete component payloads, and any presentation layer are left to the
caller.
*/
package ecs
