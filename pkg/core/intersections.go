package core

// MaxHits is the capacity of an Intersections buffer. A ray can cross at most
// two surfaces per closed shape, so this bounds the scenes a single buffer
// can resolve.
const MaxHits = 32

// Intersection is a distance along a ray and the index of the shape it hit
type Intersection struct {
	T     float32
	Shape uint32
}

// Intersections is a fixed-capacity list of intersections kept in ascending T
// order. It never allocates; adding more than MaxHits entries is a contract
// violation.
type Intersections struct {
	hits  [MaxHits]Intersection
	count uint32
	isHit bool
}

// Add inserts a hit keeping the buffer sorted by T
func (xs *Intersections) Add(t float32, shape uint32) {
	if DebugChecks && xs.count >= MaxHits {
		Violation("intersections overflow: capacity %d", MaxHits)
	}

	hit := Intersection{T: t, Shape: shape}
	if hit.T >= 0 {
		xs.isHit = true
	}

	// Bubble the new hit into place, carrying the displaced entry forward
	for i := uint32(0); i < xs.count; i++ {
		if hit.T < xs.hits[i].T {
			xs.hits[i], hit = hit, xs.hits[i]
		}
	}

	xs.hits[xs.count] = hit
	xs.count++
}

// HasHit reports whether any intersection with T >= 0 has been added
func (xs *Intersections) HasHit() bool {
	return xs.isHit
}

// Hit returns the intersection with the lowest non-negative T.
// Precondition: HasHit() is true.
func (xs *Intersections) Hit() Intersection {
	for i := uint32(0); i < xs.count; i++ {
		if xs.hits[i].T >= 0 {
			return xs.hits[i]
		}
	}

	if DebugChecks {
		Violation("Hit called without a hit")
	}
	return Intersection{T: -1}
}

// Len returns the number of stored intersections
func (xs *Intersections) Len() int {
	return int(xs.count)
}

// At returns the i-th intersection in ascending T order.
// Precondition: 0 <= i < Len().
func (xs *Intersections) At(i int) Intersection {
	if DebugChecks && (i < 0 || uint32(i) >= xs.count) {
		Violation("intersection index %d out of range [0, %d)", i, xs.count)
	}
	return xs.hits[i]
}

// Last returns the intersection with the highest T.
// Precondition: Len() > 0.
func (xs *Intersections) Last() Intersection {
	return xs.At(int(xs.count) - 1)
}

// IsEmpty reports whether the buffer holds no intersections
func (xs *Intersections) IsEmpty() bool {
	return xs.count == 0
}

// IndexOfShape returns the position of the first entry for shape, or -1
// when absent
func (xs *Intersections) IndexOfShape(shape uint32) int {
	for i := uint32(0); i < xs.count; i++ {
		if xs.hits[i].Shape == shape {
			return int(i)
		}
	}
	return -1
}

// Remove deletes the intersection at position i, keeping the order
func (xs *Intersections) Remove(i int) {
	if DebugChecks && (i < 0 || uint32(i) >= xs.count) {
		Violation("intersection index %d out of range [0, %d)", i, xs.count)
	}
	copy(xs.hits[i:xs.count], xs.hits[i+1:xs.count])
	xs.count--
}

// Clear empties the buffer without touching its storage
func (xs *Intersections) Clear() {
	xs.count = 0
	xs.isHit = false
}
