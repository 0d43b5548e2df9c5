package game

import (
	"math/rand"

	"dungeon-kernel/internal/generate"
)

// Config holds every tunable of one game.
type Config struct {
	Width, Height int
	ViewRange     int
	Seed          int64 // 0 picks a time-based seed
	MaxRooms      int
	RoomMinSize   int
	RoomMaxSize   int
	LogCap        int // GameLog entries kept; 0 keeps everything
	LogVisible    int // GameLog lines shown by the display
	Corridors     generate.CorridorStyle
	Debug         bool
}

// DefaultConfig returns the canonical 80x50 dungeon.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      50,
		ViewRange:   8,
		MaxRooms:    30,
		RoomMinSize: 6,
		RoomMaxSize: 10,
		LogCap:      100,
		LogVisible:  5,
		Corridors:   generate.CorridorLShaped,
	}
}

// levelConfig builds a generate.Config for the configured dungeon.
func (c Config) levelConfig(rng *rand.Rand) *generate.Config {
	return &generate.Config{
		MapWidth:      c.Width,
		MapHeight:     c.Height,
		MaxRooms:      c.MaxRooms,
		MinRoomSize:   c.RoomMinSize,
		MaxRoomSize:   c.RoomMaxSize,
		CorridorStyle: c.Corridors,
		Rand:          rng,
	}
}
