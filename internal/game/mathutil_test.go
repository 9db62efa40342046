package game

import (
	"math"
	"testing"
)

func TestSanitizeF(t *testing.T) {
	if got := sanitizeF(math.NaN(), 7); got != 7 {
		t.Errorf("sanitize(NaN) = %v, want 7", got)
	}
	if got := sanitizeF(math.Inf(-1), 7); got != 7 {
		t.Errorf("sanitize(-Inf) = %v, want 7", got)
	}
	if got := sanitizeF(3.5, 7); got != 3.5 {
		t.Errorf("sanitize(3.5) = %v, want 3.5", got)
	}
}

func TestEasingEndpoints(t *testing.T) {
	if easeOutCubic(0) != 0 || easeOutCubic(1) != 1 {
		t.Error("easeOutCubic endpoints off")
	}
	if math.Abs(easeOutBack(1)-1) > 1e-9 {
		t.Errorf("easeOutBack(1) = %v, want 1", easeOutBack(1))
	}
	// The back curve overshoots past the target mid-flight.
	over := false
	for p := 0.5; p < 1; p += 0.01 {
		if easeOutBack(p) > 1 {
			over = true
			break
		}
	}
	if !over {
		t.Error("easeOutBack never overshoots")
	}
}

func TestRandBounds(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d", v)
		}
		if v := r.Range(2, 4); v < 2 || v > 4 {
			t.Fatalf("Range(2,4) = %d", v)
		}
		if v := r.RangeF(-1, 1); v < -1 || v >= 1 {
			t.Fatalf("RangeF(-1,1) = %v", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v", v)
		}
	}
}

func TestRandDeterministicPerSeed(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("same seed diverged")
		}
	}
	if NewRand(1).NextU64() == NewRand(2).NextU64() {
		t.Error("different seeds produced the same first value")
	}
}
