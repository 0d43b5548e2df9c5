package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/resource"
)

// RunLog summarizes one finished run. It is a record, not a save game.
type RunLog struct {
	Seed          int64          `json:"seed"`
	EndedAt       time.Time      `json:"ended_at"`
	TurnsPlayed   int            `json:"turns_played"`
	EnemiesKilled map[string]int `json:"enemies_killed"` // kind → count
	CauseOfDeath  string         `json:"cause_of_death,omitempty"`
	Outcome       string         `json:"outcome"` // "died" or "quit"
}

// newRunLog builds the summary of the engine's run so far.
func newRunLog(e *Engine) RunLog {
	log := RunLog{
		Seed:          e.Config().Seed,
		EndedAt:       time.Now().UTC(),
		TurnsPlayed:   e.Turns(),
		EnemiesKilled: e.Kills(),
		Outcome:       "quit",
	}
	if e.PlayerDead() {
		log.Outcome = "died"
		log.CauseOfDeath = causeOfDeath(e.Log())
	}
	return log
}

// causeOfDeath returns the kind of the last monster that hit the player.
func causeOfDeath(gl *resource.GameLog) string {
	const marker = " hits Player for "
	for _, msg := range gl.Entries() {
		if i := strings.Index(msg, marker); i > 0 {
			return monsterKind(msg[:i])
		}
	}
	return ""
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Failures are logged and otherwise ignored so a disk problem never ends a game.
func saveRunLog(log RunLog) {
	dir, err := runLogDir()
	if err != nil {
		logger.Log.WithError(err).Warn("run log: no data dir")
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Log.WithError(err).Warn("run log: mkdir")
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Log.WithError(err).Warn("run log: open")
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Log.WithError(err).Warn("run log: write")
	}
}

// runLogDir returns the directory where run logs are stored:
// $XDG_DATA_HOME/dungeon-kernel, defaulting to ~/.local/share/dungeon-kernel.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeon-kernel"), nil
}
