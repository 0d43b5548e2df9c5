package ecs

import "fmt"

// ResourceKey names a world singleton.
type ResourceKey string

// SetResource stores v under key, replacing any previous value.
func (w *World) SetResource(key ResourceKey, v any) {
	w.resources[key] = v
}

// Resource returns the value stored under key.
func (w *World) Resource(key ResourceKey) (any, bool) {
	v, ok := w.resources[key]
	return v, ok
}

// FetchResource returns the resource under key as a T. A missing or
// mistyped resource is a wiring bug and panics.
func FetchResource[T any](w *World, key ResourceKey) T {
	v, ok := w.resources[key]
	if !ok {
		panic(fmt.Errorf("fetch %q: %w", key, ErrResourceMissing))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("fetch %q: resource is %T", key, v))
	}
	return t
}
