package ecs

import (
	"fmt"
	"time"

	"dungeon-kernel/internal/logger"

	"github.com/sirupsen/logrus"
)

// Dispatcher runs systems in a fixed sequence of stages. Systems that share
// a stage must have non-conflicting Access; stages run strictly in order, so
// every system observes the effects of all earlier stages.
type Dispatcher struct {
	stages [][]System
}

// NewDispatcher validates the stages and returns a Dispatcher over them.
func NewDispatcher(stages ...[]System) (*Dispatcher, error) {
	for i, stage := range stages {
		for a := 0; a < len(stage); a++ {
			for b := a + 1; b < len(stage); b++ {
				if err := stage[a].Access().Conflicts(stage[b].Access()); err != nil {
					return nil, fmt.Errorf("stage %d: %s and %s: %w",
						i, stage[a].Name(), stage[b].Name(), err)
				}
			}
		}
	}
	return &Dispatcher{stages: stages}, nil
}

// Sequential builds a Dispatcher with one system per stage.
func Sequential(systems ...System) *Dispatcher {
	stages := make([][]System, len(systems))
	for i, s := range systems {
		stages[i] = []System{s}
	}
	// A single-system stage can never conflict.
	d, _ := NewDispatcher(stages...)
	return d
}

// Names lists the systems in execution order.
func (d *Dispatcher) Names() []string {
	var names []string
	for _, stage := range d.stages {
		for _, s := range stage {
			names = append(names, s.Name())
		}
	}
	return names
}

// Run executes every stage against w.
func (d *Dispatcher) Run(w *World) {
	for _, stage := range d.stages {
		for _, s := range stage {
			start := time.Now()
			s.Run(w)
			if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
				logger.ForSystem(s.Name()).WithField("elapsed", time.Since(start)).Trace("system ran")
			}
		}
	}
}
