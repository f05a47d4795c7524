package systems

import "github.com/pthm-cable/petri/components"

// ApplyDecay drains metabolic energy for one tick and applies the upper
// clamp. Energy below zero is left as-is: it is the death signal.
func ApplyDecay(energy *components.Energy, lossPerSec, maxEnergy, dt float32) {
	energy.Value -= lossPerSec * dt
	if energy.Value > maxEnergy {
		energy.Value = maxEnergy
	}
}

// IsDead reports whether a cell should be removed. The radius check is
// defensive; breathing keeps the display radius positive for any positive
// base radius.
func IsDead(energy components.Energy, radius float32) bool {
	return energy.Value <= 0 || radius <= 0
}
