// Package components defines ECS components for the simulation.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Rotation represents a cell's heading.
// Heading accumulates without re-normalization, matching the steering math
// which wraps differences, not absolute angles.
type Rotation struct {
	Heading float32 // radians
}

// Body holds the physical size of a cell.
// Radius is the displayed (breathing) radius recomputed each tick from
// BaseRadius; BaseRadius only changes through reproduction.
type Body struct {
	Radius     float32
	BaseRadius float32
	Phase      float32 // per-cell breathing time offset, fixed at creation
}

// Motion holds movement parameters fixed at construction.
// Speed is a per-tick step length: smaller cells move faster.
type Motion struct {
	Speed float32
}

// Energy holds a cell's energy reserve. Energy is clamped above at the
// configured maximum each tick; dropping to zero or below is the death
// signal and is never clamped away.
type Energy struct {
	Value float32
}

// Tint is a cell's RGB color, inherited with jitter by offspring.
type Tint struct {
	R, G, B uint8
}

// Food tags a passive consumable entity. Food has no state besides its
// Position.
type Food struct{}
