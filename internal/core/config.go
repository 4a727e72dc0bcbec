package core

// RuntimeConfig contains per-session runtime settings passed down from the
// platform layer: terminal dimensions, tick cadence and the RNG seed used
// for deterministic pipe generation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in the platform layer
}
