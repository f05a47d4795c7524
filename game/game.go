// Package game is the interactive driver: it pumps the simulation once per
// rendered frame, handles input and draws the world.
package game

import (
	"log/slog"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/renderer"
	"github.com/pthm-cable/petri/sim"
	"github.com/pthm-cable/petri/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game wires the simulation core to rendering, input and telemetry.
type Game struct {
	cfg   *config.Config
	world *sim.World
	opts  Options

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	background *renderer.Background

	// Scratch buffers reused across frames
	energies []float64
	sorted   []sim.CellState
}

// NewGame creates a game instance. The graphical pieces are skipped in
// headless mode so the core runs without raylib.
func NewGame(cfg *config.Config, opts Options) *Game {
	g := &Game{
		cfg:   cfg,
		world: sim.NewWorld(cfg, opts.Seed),
		opts:  opts,
	}

	windowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		windowSec = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(windowSec, 1/float32(cfg.Screen.TargetFPS))
	g.world.SetHooks(g.collector)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.background = renderer.NewBackground(&cfg.Screen)
	}

	return g
}

// World exposes the simulation core.
func (g *Game) World() *sim.World { return g.world }

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.world.Tick() }

// Update runs one interactive frame: input, one simulation step scaled by
// the frame time, then telemetry.
func (g *Game) Update(frameDT float32) {
	g.handleInput()
	g.world.Step(frameDT)
	g.flushTelemetry()
}

// UpdateHeadless runs one fixed-step simulation tick without any input or
// rendering.
func (g *Game) UpdateHeadless() {
	g.world.Step(1 / float32(g.cfg.Screen.TargetFPS))
	g.flushTelemetry()
}

// flushTelemetry closes the stats window when due and forwards the record
// to the log and the CSV output.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.world.Tick()) {
		return
	}

	g.energies = g.world.CellEnergies(g.energies[:0])
	stats := g.collector.Flush(g.world.Tick(), g.world.Population(), g.world.FoodCount(), g.energies)

	if g.opts.LogStats {
		slog.Info("window stats",
			"tick", stats.WindowEndTick,
			"sim_time", stats.SimTimeSec,
			"population", stats.Population,
			"food", stats.FoodCount,
			"births", stats.Births,
			"deaths", stats.Deaths,
			"meals", stats.Meals,
			"energy_mean", stats.EnergyMean,
			"energy_p50", stats.EnergyP50,
		)
	}
	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Warn("failed to write telemetry", "error", err)
	}
}

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close telemetry output", "error", err)
	}
}
