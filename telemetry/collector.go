package telemetry

// Collector accumulates events within time windows and produces
// WindowStats. It implements the simulation's lifecycle hooks.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for the current window
	births int
	deaths int
	meals  int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: nominal seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordBirth records a successful split.
func (c *Collector) RecordBirth() { c.births++ }

// RecordDeath records a cell removal.
func (c *Collector) RecordDeath() { c.deaths++ }

// RecordMeal records a consumed food item.
func (c *Collector) RecordMeal() { c.meals++ }

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats for the closing window and resets the event
// counters. population, foodCount and energies are sampled by the caller at
// window end.
func (c *Collector) Flush(currentTick int32, population, foodCount int, energies []float64) WindowStats {
	mean, std, p10, p50, p90 := SummarizeEnergy(energies)

	stats := WindowStats{
		WindowEndTick: currentTick,
		SimTimeSec:    float64(currentTick) * float64(c.dt),
		Population:    population,
		FoodCount:     foodCount,
		Births:        c.births,
		Deaths:        c.deaths,
		Meals:         c.meals,
		EnergyMean:    mean,
		EnergyStd:     std,
		EnergyP10:     p10,
		EnergyP50:     p50,
		EnergyP90:     p90,
	}

	c.windowStartTick = currentTick
	c.births = 0
	c.deaths = 0
	c.meals = 0

	return stats
}
