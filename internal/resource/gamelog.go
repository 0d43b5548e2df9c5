package resource

// GameLog is the player-facing message list, newest first. A positive cap
// bounds it; older entries fall off the end.
type GameLog struct {
	entries []string
	cap     int
}

// NewGameLog returns an empty log holding at most capacity entries
// (unbounded when capacity <= 0).
func NewGameLog(capacity int) *GameLog {
	return &GameLog{cap: capacity}
}

// Add pushes msg to the front.
func (l *GameLog) Add(msg string) {
	l.entries = append([]string{msg}, l.entries...)
	if l.cap > 0 && len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Entries returns every message, newest first.
func (l *GameLog) Entries() []string { return l.entries }

// Recent returns up to n of the newest messages.
func (l *GameLog) Recent(n int) []string {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return l.entries[:n]
}

// Len returns the number of stored messages.
func (l *GameLog) Len() int { return len(l.entries) }

// Head returns the newest message, or "" when the log is empty.
func (l *GameLog) Head() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[0]
}
