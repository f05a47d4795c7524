package systems

import "math/rand"

// NearestFood returns the index of the nearest un-eaten food item within
// the sense radius, or -1 when none is in range. Comparison is on squared
// distance; ties resolve to the first item encountered in slice order.
func NearestFood(x, y float32, foods []FoodItem, senseRadiusSq float32) int {
	best := -1
	var bestDistSq float32
	for i := range foods {
		if foods[i].Eaten {
			continue
		}
		d := distanceSq(x, y, foods[i].X, foods[i].Y)
		if d > senseRadiusSq {
			continue
		}
		if best == -1 || d < bestDistSq {
			best = i
			bestDistSq = d
		}
	}
	return best
}

// SteerToward turns the heading toward the target by at most maxTurn
// radians and returns the new heading. The angular difference is wrapped to
// [-Pi, Pi] before clamping so the turn always takes the short way around.
func SteerToward(heading, x, y, targetX, targetY, maxTurn float32) float32 {
	desired := atan2f(targetY-y, targetX-x)
	diff := normalizeAngle(desired - heading)
	return heading + clampFloat(diff, -maxTurn, maxTurn)
}

// RandomWalk perturbs the heading by a uniform value in [-jitter, jitter].
func RandomWalk(heading, jitter float32, rng *rand.Rand) float32 {
	return heading + (rng.Float32()*2-1)*jitter
}
