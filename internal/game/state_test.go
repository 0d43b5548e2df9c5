package game

import (
	"context"
	"testing"

	"dungeon-kernel/internal/resource"
)

func TestTurnMachineCycle(t *testing.T) {
	var entered []resource.RunState
	m := newTurnMachine(resource.PreRun, func(s resource.RunState) { entered = append(entered, s) })
	ctx := context.Background()

	steps := []struct {
		event string
		want  resource.RunState
	}{
		{evStart, resource.AwaitingInput},
		{evAct, resource.PlayerTurn},
		{evEndTurn, resource.MonsterTurn},
		{evMonstersDone, resource.AwaitingInput},
	}
	for _, s := range steps {
		if err := m.fire(ctx, s.event); err != nil {
			t.Fatalf("fire %s: %v", s.event, err)
		}
		if m.State() != s.want {
			t.Fatalf("after %s state = %v; want %v", s.event, m.State(), s.want)
		}
	}
	if len(entered) != len(steps) {
		t.Fatalf("onEnter ran %d times; want %d", len(entered), len(steps))
	}
}

func TestTurnMachineRejectsOutOfOrderEvents(t *testing.T) {
	m := newTurnMachine(resource.AwaitingInput, func(resource.RunState) {})
	if err := m.fire(context.Background(), evEndTurn); err == nil {
		t.Fatal("end_turn from AwaitingInput should fail")
	}
	if m.State() != resource.AwaitingInput {
		t.Fatalf("state changed to %v", m.State())
	}
}
