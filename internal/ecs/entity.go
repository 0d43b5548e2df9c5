package ecs

import "fmt"

// Entity is an opaque handle to an entity. It carries the generation of the
// slot it was issued from, so a handle kept past Destroy never aliases the
// entity that later reuses the slot.
type Entity struct {
	index      uint32
	generation uint32
}

// NilEntity is the zero value; no live entity has this handle.
var NilEntity = Entity{}

// Index returns the slot index backing the handle.
func (e Entity) Index() uint32 { return e.index }

// Generation returns the generation the handle was issued with.
func (e Entity) Generation() uint32 { return e.generation }

// IsNil reports whether e is the zero handle.
func (e Entity) IsNil() bool { return e == NilEntity }

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.index, e.generation)
}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

type entitySlot struct {
	generation uint32
	alive      bool
}
