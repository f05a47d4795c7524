package components

// TrailCap is the fixed capacity of a cell's position trail.
const TrailCap = 8

// Trail holds the most recent positions of a cell for visual trailing.
// It is a fixed-capacity ring buffer: once full, pushing evicts the oldest
// entry.
type Trail struct {
	Points [TrailCap]Position
	Head   uint8 // index of the oldest entry
	Count  uint8
}

// Push appends a position, evicting the oldest entry when full.
func (t *Trail) Push(p Position) {
	if t.Count < TrailCap {
		t.Points[(t.Head+t.Count)%TrailCap] = p
		t.Count++
		return
	}
	t.Points[t.Head] = p
	t.Head = (t.Head + 1) % TrailCap
}

// At returns the i-th entry, oldest first. i must be < Count.
func (t *Trail) At(i uint8) Position {
	return t.Points[(t.Head+i)%TrailCap]
}

// Snapshot appends all entries to dst, oldest first, and returns the slice.
func (t *Trail) Snapshot(dst []Position) []Position {
	for i := uint8(0); i < t.Count; i++ {
		dst = append(dst, t.At(i))
	}
	return dst
}
