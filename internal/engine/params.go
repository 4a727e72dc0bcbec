package engine

// Params holds the world tunables. The simulation runs on a fixed-size
// canvas in continuous coordinates; the renderer scales it to the terminal.
type Params struct {
	CanvasW float64 // Canvas width in world units
	CanvasH float64 // Canvas height in world units

	BirdX    float64 // Fixed horizontal position of the bird (left edge)
	BirdSize float64 // Square hitbox side

	Gravity float64 // Downward acceleration per tick
	Impulse float64 // Velocity set on a flap (negative = up)

	PipeW        float64 // Pipe width
	PipeGap      float64 // Vertical opening between top and bottom segments
	PipeSpeed    float64 // Leftward movement per tick
	SpawnAhead   float64 // A new pipe spawns once the rightmost is this far in
	TopMargin    float64 // Minimum gap-top distance from the ceiling
	BottomMargin float64 // Minimum gap-bottom distance from the ground
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		CanvasW:      400,
		CanvasH:      600,
		BirdX:        50,
		BirdSize:     20,
		Gravity:      0.5,
		Impulse:      -8,
		PipeW:        50,
		PipeGap:      150,
		PipeSpeed:    2,
		SpawnAhead:   200,
		TopMargin:    50,
		BottomMargin: 50,
	}
}
