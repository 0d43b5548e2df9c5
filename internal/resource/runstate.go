package resource

import "fmt"

// RunState gates which part of a turn the next tick performs.
type RunState uint8

const (
	PreRun RunState = iota
	AwaitingInput
	PlayerTurn
	MonsterTurn
)

var runStateNames = [...]string{
	PreRun:        "PreRun",
	AwaitingInput: "AwaitingInput",
	PlayerTurn:    "PlayerTurn",
	MonsterTurn:   "MonsterTurn",
}

func (s RunState) String() string {
	if int(s) < len(runStateNames) {
		return runStateNames[s]
	}
	return fmt.Sprintf("RunState(%d)", s)
}

// ParseRunState is the inverse of String.
func ParseRunState(name string) (RunState, error) {
	for i, n := range runStateNames {
		if n == name {
			return RunState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown run state %q", name)
}
