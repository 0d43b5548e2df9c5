package ecs

import "errors"

var (
	// ErrComponentAlreadyRegistered indicates the same component type was registered twice.
	ErrComponentAlreadyRegistered = errors.New("ecs: component already registered")
	// ErrComponentNotRegistered signals use of a component type with no column.
	ErrComponentNotRegistered = errors.New("ecs: component not registered")
	// ErrResourceMissing signals a fetch of a resource that was never set.
	ErrResourceMissing = errors.New("ecs: resource missing")
	// ErrAccessConflict indicates two systems in one stage claim conflicting access.
	ErrAccessConflict = errors.New("ecs: conflicting access in stage")
)
