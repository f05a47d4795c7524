package systems

import "testing"

func TestTryEatFirstMatch(t *testing.T) {
	foods := []FoodItem{
		{X: 100, Y: 100}, // out of reach
		{X: 5, Y: 0},     // in reach
		{X: 2, Y: 0},     // also in reach, but scan stops at first match
	}
	idx := TryEat(0, 0, 10, foods, 4)
	if idx != 1 {
		t.Errorf("claimed index = %d, want 1", idx)
	}
}

func TestTryEatReachBoundary(t *testing.T) {
	// Overlap at exactly (radius + foodRadius) counts.
	foods := []FoodItem{{X: 14, Y: 0}}
	if idx := TryEat(0, 0, 10, foods, 4); idx != 0 {
		t.Errorf("boundary overlap not claimed, got %d", idx)
	}
	foods = []FoodItem{{X: 14.01, Y: 0}}
	if idx := TryEat(0, 0, 10, foods, 4); idx != -1 {
		t.Errorf("out-of-reach food claimed, got %d", idx)
	}
}

func TestTryEatSkipsEaten(t *testing.T) {
	foods := []FoodItem{
		{X: 5, Y: 0, Eaten: true},
		{X: 6, Y: 0},
	}
	if idx := TryEat(0, 0, 10, foods, 4); idx != 1 {
		t.Errorf("claimed index = %d, want 1", idx)
	}
}

// Two cells in range of the same single food item: the first claims it, the
// second's check fails because the item is already marked eaten.
func TestEatingExclusivity(t *testing.T) {
	foods := []FoodItem{{X: 0, Y: 0}}

	first := TryEat(-5, 0, 10, foods, 4)
	if first != 0 {
		t.Fatalf("first cell failed to claim, got %d", first)
	}
	foods[first].Eaten = true

	second := TryEat(5, 0, 10, foods, 4)
	if second != -1 {
		t.Errorf("second cell claimed already-eaten food, got %d", second)
	}
}

func TestTryEatNoFood(t *testing.T) {
	if idx := TryEat(0, 0, 10, nil, 4); idx != -1 {
		t.Errorf("claimed from empty food list, got %d", idx)
	}
}
