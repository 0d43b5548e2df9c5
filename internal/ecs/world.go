package ecs

import "fmt"

// World is the central entity registry, component store and resource table.
type World struct {
	entities  []entitySlot
	free      []uint32
	live      int
	columns   map[ComponentType]*column
	resources map[ResourceKey]any
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		// Slot 0 is reserved so NilEntity never refers to a live entity.
		entities:  make([]entitySlot, 1),
		columns:   make(map[ComponentType]*column),
		resources: make(map[ResourceKey]any),
	}
}

// Register creates storage for component type t.
func (w *World) Register(t ComponentType) error {
	if _, ok := w.columns[t]; ok {
		return fmt.Errorf("register %d: %w", t, ErrComponentAlreadyRegistered)
	}
	w.columns[t] = newColumn(t)
	return nil
}

// Registered reports whether t has storage.
func (w *World) Registered(t ComponentType) bool {
	_, ok := w.columns[t]
	return ok
}

// CreateEntity mints a new entity, recycling a freed slot when one exists,
// and attaches the initial components.
func (w *World) CreateEntity(components ...Component) Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.entities))
		w.entities = append(w.entities, entitySlot{})
	}
	slot := &w.entities[idx]
	slot.generation++
	slot.alive = true
	w.live++

	e := Entity{index: idx, generation: slot.generation}
	for _, c := range components {
		w.Insert(e, c)
	}
	return e
}

// Destroy removes the entity and all its components. Destroying a dead or
// stale handle is a no-op.
func (w *World) Destroy(e Entity) {
	if !w.Alive(e) {
		return
	}
	for _, col := range w.columns {
		col.remove(e)
	}
	w.entities[e.index].alive = false
	w.free = append(w.free, e.index)
	w.live--
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	if e.index == 0 || int(e.index) >= len(w.entities) {
		return false
	}
	s := w.entities[e.index]
	return s.alive && s.generation == e.generation
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.live }

// Insert attaches c to e, replacing any component of the same type. It
// returns false without effect when e is dead. Inserting an unregistered
// component type panics.
func (w *World) Insert(e Entity, c Component) bool {
	col := w.mustColumn(c.Type())
	if !w.Alive(e) {
		return false
	}
	col.set(e, c)
	return true
}

// Get returns the component of type t on e. The second result is false
// when e is dead, t is unregistered or e has no such component.
func (w *World) Get(e Entity, t ComponentType) (Component, bool) {
	col, ok := w.columns[t]
	if !ok || !w.Alive(e) {
		return nil, false
	}
	return col.get(e)
}

// Has reports whether e carries a component of type t.
func (w *World) Has(e Entity, t ComponentType) bool {
	_, ok := w.Get(e, t)
	return ok
}

// Remove detaches the component of type t from e. Missing components are ignored.
func (w *World) Remove(e Entity, t ComponentType) {
	if col, ok := w.columns[t]; ok {
		col.remove(e)
	}
}

// Clear drops every component of type t.
func (w *World) Clear(t ComponentType) {
	if col, ok := w.columns[t]; ok {
		col.clear()
	}
}

// Count returns how many entities carry a component of type t.
func (w *World) Count(t ComponentType) int {
	if col, ok := w.columns[t]; ok {
		return col.count
	}
	return 0
}

// Join returns the live entities that carry every listed component type, in
// slot order. The result is a snapshot: inserting or removing components
// while ranging over it does not change which entities it holds.
func (w *World) Join(types ...ComponentType) []Entity {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest column as the candidate set.
	var smallest *column
	for _, t := range types {
		col, ok := w.columns[t]
		if !ok {
			return nil
		}
		if smallest == nil || col.count < smallest.count {
			smallest = col
		}
	}
	var result []Entity
	smallest.each(func(e Entity) {
		if !w.Alive(e) {
			return
		}
		for _, t := range types {
			if t != smallest.typ && !w.columns[t].has(e) {
				return
			}
		}
		result = append(result, e)
	})
	return result
}

func (w *World) mustColumn(t ComponentType) *column {
	col, ok := w.columns[t]
	if !ok {
		panic(fmt.Errorf("component type %d: %w", t, ErrComponentNotRegistered))
	}
	return col
}

// Lookup returns e's component of type T.
func Lookup[T Component](w *World, e Entity) (T, bool) {
	var zero T
	c, ok := w.Get(e, zero.Type())
	if !ok {
		return zero, false
	}
	v, ok := c.(T)
	return v, ok
}
