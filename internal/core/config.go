package core

// RuntimeConfig contains the driver settings passed down from the CLI.
// The session itself only sees the grid; the rest belongs to the clock
// and the terminal.
type RuntimeConfig struct {
	ScreenW       int   // Screen width in characters
	ScreenH       int   // Screen height in characters
	TickRate      int   // Driver frames per second
	FramesPerStep int   // Frames between two session ticks
	Seed          int64 // RNG seed, 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig matching the classic cadence:
// 30 frames per second, one step every 5 frames.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      30,
		FramesPerStep: 5,
		Seed:          0,
	}
}
