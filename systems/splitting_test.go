package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/petri/components"
)

func testSplitParams() SplitParams {
	return SplitParams{
		Cost:              30,
		MinViable:         5,
		MinRadius:         8,
		ChildRadiusFactor: 0.9,
		ColorJitter:       20,
	}
}

func TestCanSplit(t *testing.T) {
	tests := []struct {
		name       string
		energy     float32
		baseRadius float32
		want       bool
	}{
		{"qualified", 60, 10, true},
		{"energy below threshold", 59.9, 10, false},
		{"radius below floor", 60, 8.5, false},
		{"radius exactly at floor", 60, 9, true},
		{"both low", 10, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanSplit(tt.energy, tt.baseRadius, 60, 8)
			if got != tt.want {
				t.Errorf("CanSplit(%v, %v) = %v, want %v", tt.energy, tt.baseRadius, got, tt.want)
			}
		})
	}
}

func TestSplitAtThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	energy := components.Energy{Value: 60}
	body := components.Body{Radius: 10, BaseRadius: 10}

	spec, ok := Split(components.Position{X: 100, Y: 100}, body, &energy, components.Tint{R: 120, G: 140, B: 160}, testSplitParams(), rng)
	if !ok {
		t.Fatal("split at threshold should succeed")
	}
	if energy.Value != 15 {
		t.Errorf("parent energy = %v, want 15", energy.Value)
	}
	if spec.Energy != 15 {
		t.Errorf("child energy = %v, want 15", spec.Energy)
	}
}

func TestSplitScenario(t *testing.T) {
	// Seed cell at energy 65: child_energy = 65/2 - 30/2 = 17.5 for both.
	rng := rand.New(rand.NewSource(2))
	energy := components.Energy{Value: 65}
	body := components.Body{Radius: 10, BaseRadius: 10}

	if !CanSplit(energy.Value, body.BaseRadius, 60, 8) {
		t.Fatal("cell at 65 energy, radius 10 should qualify")
	}

	spec, ok := Split(components.Position{}, body, &energy, components.Tint{R: 100, G: 100, B: 100}, testSplitParams(), rng)
	if !ok {
		t.Fatal("split should produce a child")
	}
	if math.Abs(float64(energy.Value-17.5)) > 1e-5 {
		t.Errorf("parent energy = %v, want 17.5", energy.Value)
	}
	if math.Abs(float64(spec.Energy-17.5)) > 1e-5 {
		t.Errorf("child energy = %v, want 17.5", spec.Energy)
	}
}

func TestSplitRefundWhenNotViable(t *testing.T) {
	// child_energy = 38/2 - 15 = 4 < 5: abort with the parent untouched.
	rng := rand.New(rand.NewSource(3))
	energy := components.Energy{Value: 38}
	body := components.Body{Radius: 10, BaseRadius: 10}

	spec, ok := Split(components.Position{}, body, &energy, components.Tint{}, testSplitParams(), rng)
	if ok {
		t.Fatal("non-viable split should fail")
	}
	if energy.Value != 38 {
		t.Errorf("parent energy = %v, want unchanged 38", energy.Value)
	}
	if spec != (ChildSpec{}) {
		t.Errorf("failed split produced a non-zero spec: %+v", spec)
	}
}

func TestSplitChildRadiusFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	energy := components.Energy{Value: 80}
	// 8.5 * 0.9 = 7.65, below the floor of 8
	body := components.Body{Radius: 8.5, BaseRadius: 8.5}

	spec, ok := Split(components.Position{}, body, &energy, components.Tint{}, testSplitParams(), rng)
	if !ok {
		t.Fatal("split should succeed")
	}
	if spec.BaseRadius != 8 {
		t.Errorf("child base radius = %v, want floor 8", spec.BaseRadius)
	}
}

func TestSplitChildRadiusShrinks(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	energy := components.Energy{Value: 80}
	body := components.Body{Radius: 16, BaseRadius: 16}

	spec, _ := Split(components.Position{}, body, &energy, components.Tint{}, testSplitParams(), rng)
	if math.Abs(float64(spec.BaseRadius-14.4)) > 1e-5 {
		t.Errorf("child base radius = %v, want 14.4", spec.BaseRadius)
	}
}

func TestSplitOffsetBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	p := testSplitParams()

	for i := 0; i < 200; i++ {
		energy := components.Energy{Value: 80}
		body := components.Body{Radius: 12, BaseRadius: 12}
		spec, ok := Split(components.Position{X: 400, Y: 300}, body, &energy, components.Tint{}, p, rng)
		if !ok {
			t.Fatal("split should succeed")
		}
		if math.Abs(float64(spec.X-400)) > 24 || math.Abs(float64(spec.Y-300)) > 24 {
			t.Fatalf("child offset (%v, %v) exceeds 2x parent radius", spec.X-400, spec.Y-300)
		}
	}
}

func TestSplitColorJitterClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := testSplitParams()

	for i := 0; i < 200; i++ {
		energy := components.Energy{Value: 80}
		body := components.Body{Radius: 12, BaseRadius: 12}
		tint := components.Tint{R: 250, G: 5, B: 128}
		spec, _ := Split(components.Position{}, body, &energy, tint, p, rng)

		if int(spec.Color.R) < 230 {
			t.Fatalf("R channel %d drifted more than jitter allows", spec.Color.R)
		}
		if int(spec.Color.G) > 25 {
			t.Fatalf("G channel %d drifted more than jitter allows", spec.Color.G)
		}
		if int(spec.Color.B) < 108 || int(spec.Color.B) > 148 {
			t.Fatalf("B channel %d outside jitter band", spec.Color.B)
		}
	}
}
