package sim

import "github.com/pthm-cable/petri/components"

// SpawnFood adds one food item at the given coordinate. Requests beyond the
// configured maximum are silently ignored - a bounded-resource policy, not
// an error.
func (w *World) SpawnFood(x, y float32) {
	if w.foodCount >= w.cfg.Food.Max {
		return
	}
	pos := components.Position{X: x, Y: y}
	food := components.Food{}
	w.foodMapper.NewEntity(&pos, &food)
	w.foodCount++
}

// SpawnFoodBatch adds n food items at random positions within the food
// spawn margin, stopping early at the food cap.
func (w *World) SpawnFoodBatch(n int) {
	margin := float32(w.cfg.Food.SpawnMargin)
	for i := 0; i < n; i++ {
		x := margin + w.rng.Float32()*(w.cfg.Derived.WorldW32-2*margin)
		y := margin + w.rng.Float32()*(w.cfg.Derived.WorldH32-2*margin)
		w.SpawnFood(x, y)
	}
}

// autoSpawnFood drips food into the world on a simulation-time interval
// when enabled. The batch size is a uniform draw in [batch_min, batch_max].
func (w *World) autoSpawnFood(dt float32) {
	auto := w.cfg.Food.AutoSpawn
	if !auto.Enabled {
		return
	}
	w.foodClock += dt
	if w.foodClock < float32(auto.Interval) {
		return
	}
	w.foodClock = 0
	if w.foodCount >= w.cfg.Food.Max {
		return
	}
	batch := auto.BatchMin
	if auto.BatchMax > auto.BatchMin {
		batch += w.rng.Intn(auto.BatchMax - auto.BatchMin + 1)
	}
	w.SpawnFoodBatch(batch)
}
