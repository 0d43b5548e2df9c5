package ecs

import (
	"fmt"
	"slices"
)

// Access declares which component columns and resources a system reads and
// writes. A write implies a read.
type Access struct {
	Reads          []ComponentType
	Writes         []ComponentType
	ResourceReads  []ResourceKey
	ResourceWrites []ResourceKey
}

// System is one pass of the simulation pipeline.
type System interface {
	Name() string
	Access() Access
	Run(w *World)
}

// Conflicts reports the first component or resource that a and b cannot
// share: anything one writes while the other reads or writes it.
func (a Access) Conflicts(b Access) error {
	for _, t := range a.Writes {
		if slices.Contains(b.Writes, t) || slices.Contains(b.Reads, t) {
			return fmt.Errorf("component %d: %w", t, ErrAccessConflict)
		}
	}
	for _, t := range b.Writes {
		if slices.Contains(a.Reads, t) {
			return fmt.Errorf("component %d: %w", t, ErrAccessConflict)
		}
	}
	for _, r := range a.ResourceWrites {
		if slices.Contains(b.ResourceWrites, r) || slices.Contains(b.ResourceReads, r) {
			return fmt.Errorf("resource %q: %w", r, ErrAccessConflict)
		}
	}
	for _, r := range b.ResourceWrites {
		if slices.Contains(a.ResourceReads, r) {
			return fmt.Errorf("resource %q: %w", r, ErrAccessConflict)
		}
	}
	return nil
}
