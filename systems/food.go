// Package systems provides the per-tick update logic for the simulation.
package systems

import "github.com/mlange-42/ark/ecs"

// FoodItem is a per-pass view of one food entity. The Eaten flag is set
// when a cell claims the item during the pass; later cells skip it, and the
// world removes the entity in the commit step. This keeps first-claimant
// semantics without mutating the ECS mid-iteration.
type FoodItem struct {
	E     ecs.Entity
	X, Y  float32
	Eaten bool
}
