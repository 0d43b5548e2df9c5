package game

import (
	"context"
	"errors"
	"fmt"

	"dungeon-kernel/internal/resource"

	"github.com/looplab/fsm"
)

// Turn events.
const (
	evStart        = "start"
	evAct          = "act"
	evEndTurn      = "end_turn"
	evMonstersDone = "monsters_done"
)

// turnMachine owns RunState transitions. onEnter fires after every
// successful transition with the new state.
type turnMachine struct {
	fsm *fsm.FSM
}

func newTurnMachine(initial resource.RunState, onEnter func(resource.RunState)) *turnMachine {
	return &turnMachine{
		fsm: fsm.NewFSM(
			initial.String(),
			fsm.Events{
				{Name: evStart, Src: []string{resource.PreRun.String()}, Dst: resource.AwaitingInput.String()},
				{Name: evAct, Src: []string{resource.AwaitingInput.String()}, Dst: resource.PlayerTurn.String()},
				{Name: evEndTurn, Src: []string{resource.PlayerTurn.String()}, Dst: resource.MonsterTurn.String()},
				{Name: evMonstersDone, Src: []string{resource.MonsterTurn.String()}, Dst: resource.AwaitingInput.String()},
			},
			fsm.Callbacks{
				"enter_state": func(_ context.Context, e *fsm.Event) {
					s, err := resource.ParseRunState(e.Dst)
					if err == nil {
						onEnter(s)
					}
				},
			},
		),
	}
}

// State returns the current RunState.
func (m *turnMachine) State() resource.RunState {
	s, err := resource.ParseRunState(m.fsm.Current())
	if err != nil {
		panic(err)
	}
	return s
}

// fire triggers event. A self-transition is not an error.
func (m *turnMachine) fire(ctx context.Context, event string) error {
	err := m.fsm.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return fmt.Errorf("turn %s from %s: %w", event, m.fsm.Current(), err)
	}
	return nil
}
