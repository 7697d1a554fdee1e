package core

import (
	"math/rand"
	"testing"
)

func TestIntersections_AddKeepsOrder(t *testing.T) {
	values := []float32{5, -3, 2, 7, -1, 0, 4.5, 1}
	random := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		perm := random.Perm(len(values))
		var xs Intersections
		for _, i := range perm {
			xs.Add(values[i], uint32(i))
		}

		if xs.Len() != len(values) {
			t.Fatalf("Expected %d intersections, got %d", len(values), xs.Len())
		}
		for i := 1; i < xs.Len(); i++ {
			if xs.At(i-1).T > xs.At(i).T {
				t.Fatalf("Trial %d: buffer not sorted at %d: %v > %v (perm %v)", trial, i, xs.At(i-1).T, xs.At(i).T, perm)
			}
		}
	}
}

func TestIntersections_AddKeepsShapeIndex(t *testing.T) {
	var xs Intersections
	xs.Add(2, 7)
	xs.Add(1, 3)

	if xs.At(0) != (Intersection{T: 1, Shape: 3}) {
		t.Errorf("Expected {1 3} first, got %v", xs.At(0))
	}
	if xs.At(1) != (Intersection{T: 2, Shape: 7}) {
		t.Errorf("Expected {2 7} second, got %v", xs.At(1))
	}
}

func TestIntersections_Hit(t *testing.T) {
	tests := []struct {
		name      string
		ts        []float32
		hasHit    bool
		expectedT float32
	}{
		{"all positive", []float32{1, 2}, true, 1},
		{"some negative", []float32{-1, 1}, true, 1},
		{"all negative", []float32{-2, -1}, false, 0},
		{"lowest non-negative", []float32{5, 7, -3, 2}, true, 2},
		{"zero counts as hit", []float32{-1, 0}, true, 0},
		{"empty", nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			for i, v := range tt.ts {
				xs.Add(v, uint32(i))
			}

			if xs.HasHit() != tt.hasHit {
				t.Fatalf("Expected HasHit=%t, got %t", tt.hasHit, xs.HasHit())
			}
			if tt.hasHit && xs.Hit().T != tt.expectedT {
				t.Errorf("Expected hit at t=%f, got %f", tt.expectedT, xs.Hit().T)
			}
		})
	}
}

func TestIntersections_HitWithoutHitPanicsInDebug(t *testing.T) {
	if !DebugChecks {
		t.Skip("contract checks compiled out")
	}
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when calling Hit without a hit")
		}
	}()

	var xs Intersections
	xs.Add(-1, 0)
	xs.Hit()
}

func TestIntersections_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on overflow")
		}
	}()

	var xs Intersections
	for i := 0; i <= MaxHits; i++ {
		xs.Add(float32(i), 0)
	}
}

func TestIntersections_RemoveAndIndexOfShape(t *testing.T) {
	var xs Intersections
	xs.Add(1, 0)
	xs.Add(2, 1)
	xs.Add(3, 2)

	i := xs.IndexOfShape(1)
	if i != 1 {
		t.Fatalf("Expected index 1, got %d", i)
	}
	xs.Remove(i)

	if xs.Len() != 2 {
		t.Fatalf("Expected 2 entries after remove, got %d", xs.Len())
	}
	if xs.Last() != (Intersection{T: 3, Shape: 2}) {
		t.Errorf("Expected last {3 2}, got %v", xs.Last())
	}
	if xs.IndexOfShape(1) != -1 {
		t.Error("Removed intersection should not be found")
	}
}

func TestIntersections_Clear(t *testing.T) {
	var xs Intersections
	xs.Add(1, 0)
	xs.Clear()

	if !xs.IsEmpty() || xs.HasHit() {
		t.Errorf("Expected empty buffer without hit, got len=%d hasHit=%t", xs.Len(), xs.HasHit())
	}
}

func TestIntersections_AddDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		var xs Intersections
		for i := 0; i < MaxHits; i++ {
			xs.Add(float32(MaxHits-i), uint32(i))
		}
		_ = xs.Hit()
	})
	if allocs != 0 {
		t.Errorf("Expected no allocations, got %f", allocs)
	}
}
