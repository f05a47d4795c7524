package sim

import (
	"math"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/systems"
)

// seedPopulation creates the starting cells at random positions within the
// spawn margin.
func (w *World) seedPopulation() {
	cfg := w.cfg
	margin := float32(cfg.Population.SpawnMargin)
	for i := 0; i < cfg.Population.Initial; i++ {
		x := margin + w.rng.Float32()*(cfg.Derived.WorldW32-2*margin)
		y := margin + w.rng.Float32()*(cfg.Derived.WorldH32-2*margin)
		w.spawnCell(x, y, w.rollRadius(), w.rollEnergy(), w.rollTint())
	}
}

// spawnCell creates one cell entity. Heading and breathing phase are always
// fresh random draws; speed is derived from the base radius once, here, and
// never recomputed - smaller cells move faster.
func (w *World) spawnCell(x, y, baseRadius, energy float32, tint components.Tint) {
	cfg := w.cfg

	maxR := float32(cfg.Cell.MaxRadius)
	speed := float32(cfg.Cell.BaseSpeed) * (1 + (maxR-baseRadius)/(maxR*2))

	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{Heading: w.rng.Float32() * 2 * math.Pi}
	body := components.Body{
		Radius:     baseRadius,
		BaseRadius: baseRadius,
		Phase:      w.rng.Float32() * 2 * math.Pi,
	}
	motion := components.Motion{Speed: speed}
	en := components.Energy{Value: energy}
	trail := components.Trail{}

	w.cellMapper.NewEntity(&pos, &rot, &body, &motion, &en, &tint, &trail)
	w.population++
}

// spawnChild materializes a child spec produced by a split during the pass.
func (w *World) spawnChild(spec systems.ChildSpec) {
	w.spawnCell(spec.X, spec.Y, spec.BaseRadius, spec.Energy, spec.Color)
}

// Reset clears all cells and food, reseeds the initial population and
// zeroes the birth counter. The simulation clock keeps running.
func (w *World) Reset() {
	w.removeAllCells()
	w.removeAllFood()
	w.births = 0
	w.foodClock = 0
	w.seedPopulation()
}

func (w *World) removeAllCells() {
	w.dead = w.dead[:0]
	query := w.cellFilter.Query()
	for query.Next() {
		w.dead = append(w.dead, query.Entity())
	}
	for _, e := range w.dead {
		w.cellMapper.Remove(e)
	}
	w.dead = w.dead[:0]
	w.population = 0
}

func (w *World) removeAllFood() {
	w.foodPass = w.foodPass[:0]
	query := w.foodFilter.Query()
	for query.Next() {
		w.foodPass = append(w.foodPass, systems.FoodItem{E: query.Entity()})
	}
	for i := range w.foodPass {
		w.foodMapper.Remove(w.foodPass[i].E)
	}
	w.foodPass = w.foodPass[:0]
	w.foodCount = 0
}

// rollRadius draws an integer base radius in [min_radius, max_radius].
func (w *World) rollRadius() float32 {
	lo := int(w.cfg.Cell.MinRadius)
	hi := int(w.cfg.Cell.MaxRadius)
	return float32(lo + w.rng.Intn(hi-lo+1))
}

// rollEnergy draws an initial energy in [min_energy, max_energy).
func (w *World) rollEnergy() float32 {
	lo := float32(w.cfg.Cell.MinEnergy)
	hi := float32(w.cfg.Cell.MaxEnergy)
	return lo + w.rng.Float32()*(hi-lo)
}

// rollTint draws a random color with every channel at or above the floor,
// keeping seeded cells bright against the dark background.
func (w *World) rollTint() components.Tint {
	floor := w.cfg.Cell.ColorFloor
	span := 256 - floor
	return components.Tint{
		R: uint8(floor + w.rng.Intn(span)),
		G: uint8(floor + w.rng.Intn(span)),
		B: uint8(floor + w.rng.Intn(span)),
	}
}
