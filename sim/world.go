// Package sim implements the cell colony simulation core. The World owns
// all entity state and advances it tick by tick; rendering and input live
// in the game package and only read snapshots.
package sim

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/systems"
)

// Hooks receives simulation lifecycle events, typically implemented by the
// telemetry collector. A nil hook field disables event reporting.
type Hooks interface {
	RecordBirth()
	RecordDeath()
	RecordMeal()
}

// World holds the complete simulation state.
type World struct {
	cfg *config.Config
	ecs *ecs.World
	rng *rand.Rand

	// Entity mappers - the 7 cell components plus the food pair
	cellMapper *ecs.Map7[
		components.Position,
		components.Rotation,
		components.Body,
		components.Motion,
		components.Energy,
		components.Tint,
		components.Trail,
	]
	cellFilter *ecs.Filter7[
		components.Position,
		components.Rotation,
		components.Body,
		components.Motion,
		components.Energy,
		components.Tint,
		components.Trail,
	]
	foodMapper *ecs.Map2[components.Position, components.Food]
	foodFilter *ecs.Filter2[components.Position, components.Food]

	// State
	tick       int32
	elapsed    float32 // scaled simulation seconds
	paused     bool
	speed      float32 // time-scale multiplier applied to Step's dt
	births     int
	population int
	foodCount  int
	foodClock  float32 // auto-spawn accumulator

	hooks Hooks

	// Scratch buffers reused across ticks
	foodPass []systems.FoodItem
	children []systems.ChildSpec
	dead     []ecs.Entity
}

// NewWorld creates a simulation world and seeds the initial population.
// The RNG stream is owned by the world and seeded explicitly so runs are
// reproducible.
func NewWorld(cfg *config.Config, seed int64) *World {
	world := ecs.NewWorld()

	w := &World{
		cfg:   cfg,
		ecs:   world,
		rng:   rand.New(rand.NewSource(seed)),
		speed: 1.0,
		cellMapper: ecs.NewMap7[
			components.Position,
			components.Rotation,
			components.Body,
			components.Motion,
			components.Energy,
			components.Tint,
			components.Trail,
		](world),
		cellFilter: ecs.NewFilter7[
			components.Position,
			components.Rotation,
			components.Body,
			components.Motion,
			components.Energy,
			components.Tint,
			components.Trail,
		](world),
		foodMapper: ecs.NewMap2[components.Position, components.Food](world),
		foodFilter: ecs.NewFilter2[components.Position, components.Food](world),
	}

	w.seedPopulation()

	return w
}

// SetHooks installs the lifecycle event receiver.
func (w *World) SetHooks(h Hooks) {
	w.hooks = h
}

// Step advances the simulation by one tick of frameDT seconds, scaled by
// the speed multiplier. A paused world is a strict no-op: gameplay time,
// the breathing clock and the auto-spawn timer all freeze.
func (w *World) Step(frameDT float32) {
	if w.paused {
		return
	}
	dt := frameDT * w.speed
	w.elapsed += dt

	w.autoSpawnFood(dt)

	// Two-phase update: the pass mutates per-cell state in place and
	// collects structural changes; commit applies them once iteration is
	// done. Children are never updated in their birth tick and dead cells
	// never survive into the next one.
	w.runPass(dt)
	w.commit()

	w.tick++
}

// runPass executes the per-cell update over a food snapshot taken at the
// start of the tick. Food claimed by a cell is flagged in the snapshot so
// later cells in the same pass see it as gone.
func (w *World) runPass(dt float32) {
	cfg := w.cfg

	// Food snapshot for this pass
	w.foodPass = w.foodPass[:0]
	foodQuery := w.foodFilter.Query()
	for foodQuery.Next() {
		pos, _ := foodQuery.Get()
		w.foodPass = append(w.foodPass, systems.FoodItem{
			E: foodQuery.Entity(),
			X: pos.X,
			Y: pos.Y,
		})
	}

	w.children = w.children[:0]
	w.dead = w.dead[:0]

	splitParams := systems.SplitParams{
		Cost:              float32(cfg.Reproduction.SplitCost),
		MinViable:         float32(cfg.Reproduction.MinViable),
		MinRadius:         float32(cfg.Cell.MinRadius),
		ChildRadiusFactor: float32(cfg.Reproduction.ChildRadiusFactor),
		ColorJitter:       cfg.Reproduction.ColorJitter,
	}

	query := w.cellFilter.Query()
	for query.Next() {
		pos, rot, body, motion, energy, tint, trail := query.Get()

		// 1. Energy decay and upper clamp
		systems.ApplyDecay(energy, float32(cfg.Energy.LossPerSec), float32(cfg.Energy.Max), dt)

		// 2. Breathing: displayed radius follows the simulation clock
		body.Radius = systems.DisplayRadius(body.BaseRadius, body.Phase, w.elapsed)

		// 3. Sensing and steering
		if target := systems.NearestFood(pos.X, pos.Y, w.foodPass, cfg.Derived.SenseRadiusSq); target >= 0 {
			f := &w.foodPass[target]
			rot.Heading = systems.SteerToward(rot.Heading, pos.X, pos.Y, f.X, f.Y, float32(cfg.Cell.MaxTurn))
		} else {
			rot.Heading = systems.RandomWalk(rot.Heading, float32(cfg.Cell.WalkJitter), w.rng)
		}

		// 4. Motion and boundary scatter
		systems.Advance(pos, rot.Heading, motion.Speed)
		systems.ConfineToBounds(pos, rot, cfg.Derived.WorldW32, cfg.Derived.WorldH32, float32(cfg.Cell.WallMargin), w.rng)

		// 5. Trail
		trail.Push(*pos)

		// 6. Eating: first overlapping un-eaten item wins
		if idx := systems.TryEat(pos.X, pos.Y, body.Radius, w.foodPass, cfg.Derived.FoodRadius32); idx >= 0 {
			w.foodPass[idx].Eaten = true
			energy.Value += float32(cfg.Energy.FromFood)
			if w.hooks != nil {
				w.hooks.RecordMeal()
			}
		}

		// 7. Split trial
		if systems.CanSplit(energy.Value, body.BaseRadius, float32(cfg.Reproduction.SplitThreshold), float32(cfg.Cell.MinRadius)) &&
			w.rng.Float64() < cfg.Reproduction.Chance {
			if spec, ok := systems.Split(*pos, *body, energy, *tint, splitParams, w.rng); ok {
				w.children = append(w.children, spec)
			}
		}

		// 8. Death check
		if systems.IsDead(*energy, body.Radius) {
			w.dead = append(w.dead, query.Entity())
		}
	}
}

// commit applies the structural changes collected by the pass: consumed
// food and dead cells are removed, then children are added.
func (w *World) commit() {
	for i := range w.foodPass {
		if w.foodPass[i].Eaten {
			w.foodMapper.Remove(w.foodPass[i].E)
			w.foodCount--
		}
	}

	for _, e := range w.dead {
		w.cellMapper.Remove(e)
		w.population--
		if w.hooks != nil {
			w.hooks.RecordDeath()
		}
	}

	for i := range w.children {
		w.spawnChild(w.children[i])
		w.births++
		if w.hooks != nil {
			w.hooks.RecordBirth()
		}
	}
}

// Tick returns the number of completed simulation steps.
func (w *World) Tick() int32 { return w.tick }

// Elapsed returns the scaled simulation time in seconds.
func (w *World) Elapsed() float32 { return w.elapsed }

// Births returns the total number of successful splits since the last reset.
func (w *World) Births() int { return w.births }

// Population returns the live cell count.
func (w *World) Population() int { return w.population }

// FoodCount returns the live food count.
func (w *World) FoodCount() int { return w.foodCount }

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool { return w.paused }

// SetPaused sets the pause flag.
func (w *World) SetPaused(p bool) { w.paused = p }

// TogglePause flips the pause flag and returns the new state.
func (w *World) TogglePause() bool {
	w.paused = !w.paused
	return w.paused
}

// SpeedMultiplier returns the current time-scale multiplier.
func (w *World) SpeedMultiplier() float32 { return w.speed }

// SetSpeedMultiplier sets the time-scale multiplier. Non-positive values
// are ignored.
func (w *World) SetSpeedMultiplier(s float32) {
	if s > 0 {
		w.speed = s
	}
}
