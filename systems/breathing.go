package systems

// Breathing animation parameters. Purely visual, except that the eating
// check uses the currently displayed radius.
const (
	BreathAmplitude = 0.08
	BreathRate      = 3.0
)

// DisplayRadius returns the breathing radius for a base radius at
// simulation time t, offset by the cell's fixed phase.
func DisplayRadius(base, phase, t float32) float32 {
	return base * (1 + BreathAmplitude*sinf(BreathRate*t+phase))
}
