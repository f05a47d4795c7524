package systems

import (
	"math/rand"

	"github.com/pthm-cable/petri/components"
)

// SplitParams holds the reproduction tuning knobs.
type SplitParams struct {
	Cost              float32
	MinViable         float32
	MinRadius         float32
	ChildRadiusFactor float32
	ColorJitter       int
}

// ChildSpec describes a cell to be created in the commit step after the
// per-cell pass. Heading, trail and breathing phase are not inherited; the
// child gets fresh random ones at construction.
type ChildSpec struct {
	X, Y       float32
	BaseRadius float32
	Energy     float32
	Color      components.Tint
}

// CanSplit reports whether a cell qualifies for a split trial: enough
// energy and structurally above the minimum size. The world additionally
// rolls a per-tick probability before calling Split.
func CanSplit(energy, baseRadius, threshold, minRadius float32) bool {
	return energy >= threshold && baseRadius >= minRadius+1
}

// Split halves the parent's energy budget, deducts the split cost shared
// between parent and child, and produces one offspring spec. When the
// post-split energy falls below the viability floor the split aborts and
// the parent's energy is left unchanged.
func Split(pos components.Position, body components.Body, energy *components.Energy, tint components.Tint, p SplitParams, rng *rand.Rand) (ChildSpec, bool) {
	childEnergy := energy.Value/2 - p.Cost/2
	if childEnergy < p.MinViable {
		// Failed attempt: the parent keeps its full energy, cost included.
		return ChildSpec{}, false
	}
	energy.Value = childEnergy

	// Offset placement uses the displayed radius; structural sizing uses
	// the base radius.
	spec := ChildSpec{
		X:          pos.X + uniform(rng, -body.Radius*2, body.Radius*2),
		Y:          pos.Y + uniform(rng, -body.Radius*2, body.Radius*2),
		BaseRadius: maxFloat(p.MinRadius, body.BaseRadius*p.ChildRadiusFactor),
		Color: components.Tint{
			R: jitterChannel(tint.R, p.ColorJitter, rng),
			G: jitterChannel(tint.G, p.ColorJitter, rng),
			B: jitterChannel(tint.B, p.ColorJitter, rng),
		},
	}
	spec.Energy = maxFloat(p.MinViable, childEnergy)
	return spec, true
}

// jitterChannel offsets a color channel by a uniform integer in
// [-jitter, jitter], clamped to the valid range.
func jitterChannel(c uint8, jitter int, rng *rand.Rand) uint8 {
	v := int(c) + rng.Intn(2*jitter+1) - jitter
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// maxFloat returns the larger of two float32 values.
func maxFloat(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
