package systems

// TryEat scans foods in order and returns the index of the first un-eaten
// item overlapping the cell, or -1. Overlap is a squared-distance check
// against (cellRadius + foodRadius)^2; cellRadius is the displayed
// (breathing) radius. One food per cell per tick: the scan stops at the
// first match. The caller marks the item eaten and credits the energy.
func TryEat(x, y, cellRadius float32, foods []FoodItem, foodRadius float32) int {
	reach := cellRadius + foodRadius
	reachSq := reach * reach
	for i := range foods {
		if foods[i].Eaten {
			continue
		}
		if distanceSq(x, y, foods[i].X, foods[i].Y) <= reachSq {
			return i
		}
	}
	return -1
}
