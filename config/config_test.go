package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Screen.Width != 900 || cfg.Screen.Height != 600 {
		t.Errorf("unexpected screen size %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Population.Initial != 8 {
		t.Errorf("initial population = %d, want 8", cfg.Population.Initial)
	}
	if cfg.Energy.Max != 100 {
		t.Errorf("max energy = %v, want 100", cfg.Energy.Max)
	}
	if cfg.Reproduction.SplitThreshold != 60 || cfg.Reproduction.SplitCost != 30 {
		t.Errorf("split threshold/cost = %v/%v, want 60/30",
			cfg.Reproduction.SplitThreshold, cfg.Reproduction.SplitCost)
	}
	if cfg.Food.Max != 200 {
		t.Errorf("food max = %d, want 200", cfg.Food.Max)
	}
}

func TestLoadDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Derived.WorldW32 != 900 || cfg.Derived.WorldH32 != 600 {
		t.Errorf("derived world size = %vx%v", cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}
	wantSenseSq := float32(120 * 120)
	if cfg.Derived.SenseRadiusSq != wantSenseSq {
		t.Errorf("derived sense radius sq = %v, want %v", cfg.Derived.SenseRadiusSq, wantSenseSq)
	}
}

func TestLoadMergesUserConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	userYAML := []byte("population:\n  initial: 20\nenergy:\n  from_food: 35\n")
	if err := os.WriteFile(path, userYAML, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}

	// Overridden fields
	if cfg.Population.Initial != 20 {
		t.Errorf("initial population = %d, want 20", cfg.Population.Initial)
	}
	if cfg.Energy.FromFood != 35 {
		t.Errorf("energy from food = %v, want 35", cfg.Energy.FromFood)
	}

	// Untouched fields keep defaults
	if cfg.Energy.Max != 100 {
		t.Errorf("max energy = %v, want default 100", cfg.Energy.Max)
	}
	if cfg.Cell.SenseRadius != 120 {
		t.Errorf("sense radius = %v, want default 120", cfg.Cell.SenseRadius)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Population.Initial = 13

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading yaml: %v", err)
	}
	if loaded.Population.Initial != 13 {
		t.Errorf("round-tripped initial population = %d, want 13", loaded.Population.Initial)
	}
}
