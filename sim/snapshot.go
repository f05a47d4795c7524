package sim

import "github.com/pthm-cable/petri/components"

// CellState is a read-only view of one cell for rendering and stats.
type CellState struct {
	X, Y       float32
	Heading    float32
	Radius     float32 // displayed (breathing) radius
	BaseRadius float32
	Energy     float32
	EnergyFrac float32 // energy / max, clamped to [0, 1], for the bar
	Color      components.Tint
	Trail      []components.Position // oldest first
}

// FoodState is a read-only view of one food item.
type FoodState struct {
	X, Y float32
}

// Snapshot is the queryable world state handed to the driver each frame.
type Snapshot struct {
	Cells []CellState
	Food  []FoodState

	Population int
	FoodCount  int
	Births     int
	Tick       int32
	Elapsed    float32

	Paused          bool
	SpeedMultiplier float32
}

// Snapshot captures the current world state. The cell order is the
// iteration order of the store; the renderer sorts by radius so large cells
// draw on top.
func (w *World) Snapshot() Snapshot {
	maxEnergy := float32(w.cfg.Energy.Max)

	s := Snapshot{
		Cells:           make([]CellState, 0, w.population),
		Food:            make([]FoodState, 0, w.foodCount),
		Population:      w.population,
		FoodCount:       w.foodCount,
		Births:          w.births,
		Tick:            w.tick,
		Elapsed:         w.elapsed,
		Paused:          w.paused,
		SpeedMultiplier: w.speed,
	}

	query := w.cellFilter.Query()
	for query.Next() {
		pos, rot, body, _, energy, tint, trail := query.Get()

		frac := energy.Value / maxEnergy
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}

		s.Cells = append(s.Cells, CellState{
			X:          pos.X,
			Y:          pos.Y,
			Heading:    rot.Heading,
			Radius:     body.Radius,
			BaseRadius: body.BaseRadius,
			Energy:     energy.Value,
			EnergyFrac: frac,
			Color:      *tint,
			Trail:      trail.Snapshot(nil),
		})
	}

	foodQuery := w.foodFilter.Query()
	for foodQuery.Next() {
		pos, _ := foodQuery.Get()
		s.Food = append(s.Food, FoodState{X: pos.X, Y: pos.Y})
	}

	return s
}

// CellEnergies appends the energy of every live cell to dst and returns the
// slice. Used by the telemetry window flush.
func (w *World) CellEnergies(dst []float64) []float64 {
	query := w.cellFilter.Query()
	for query.Next() {
		_, _, _, _, energy, _, _ := query.Get()
		dst = append(dst, float64(energy.Value))
	}
	return dst
}
