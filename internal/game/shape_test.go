package game

import (
	"math"
	"testing"
)

func TestShapeKindMapping(t *testing.T) {
	rng := NewRand(1)

	letter := func(c rune) Stimulus {
		return Stimulus{Category: StimLetter, Char: c}
	}

	// Uppercase letters always produce the star.
	for _, c := range "AMZ" {
		if k := shapeKindFor(letter(c), rng); k != ShapeStar {
			t.Errorf("kind(%q) = %v, want star", c, k)
		}
	}

	// Lowercase letters a kind-stride apart share a subtype.
	ka := shapeKindFor(letter('a'), rng)
	kk := shapeKindFor(letter('k'), rng)
	if ka != kk {
		t.Errorf("kind('a') = %v, kind('k') = %v, want equal", ka, kk)
	}
	if kb := shapeKindFor(letter('b'), rng); kb == ka {
		t.Errorf("kind('b') = kind('a') = %v, want distinct", kb)
	}

	cases := []struct {
		stim Stimulus
		want ShapeKind
	}{
		{Stimulus{Category: StimDigit, Char: '7'}, ShapeKind(2)},
		{Stimulus{Category: StimSpace}, ShapeCircle},
		{Stimulus{Category: StimConfirm}, ShapeHeart},
		{Stimulus{Category: StimDirectional}, ShapeTriangle},
	}
	for _, c := range cases {
		if got := shapeKindFor(c.stim, rng); got != c.want {
			t.Errorf("kind(%v %q) = %v, want %v", c.stim.Category, c.stim.Char, got, c.want)
		}
	}
}

func TestShapeBounceForcesStar(t *testing.T) {
	m := NewShapeManager(5, 800, 600, 42)
	s := m.Spawn(Stimulus{Category: StimSpace, Effect: EffectBounce})
	if s.Kind != ShapeStar {
		t.Errorf("bounce shape kind = %v, want star", s.Kind)
	}
}

func TestShapeExplosionLifespan(t *testing.T) {
	m := NewShapeManager(5, 800, 600, 7)
	s := m.Spawn(Stimulus{Category: StimSpace, Effect: EffectExplosion})
	if s.Lifespan != 4500 {
		t.Fatalf("explosion lifespan = %v, want 4500", s.Lifespan)
	}

	if !s.Update(4499) {
		t.Fatal("shape expired at 4499 ms, want alive")
	}
	if s.Update(2) {
		t.Fatal("shape alive at 4501 ms, want expired")
	}
	if s.Phase() != PhaseExpired {
		t.Errorf("phase = %v, want expired", s.Phase())
	}
}

func TestShapeGrowthMonotonicUntilHeld(t *testing.T) {
	m := NewShapeManager(5, 800, 600, 11)
	s := m.Spawn(Stimulus{Category: StimLetter, Char: 'c'})

	prev := 0.0
	growDur := s.Lifespan * ShapeGrowFraction
	for s.Age < growDur {
		s.Update(10)
		if s.Size < prev {
			t.Fatalf("size shrank during growth: %v -> %v at age %v", prev, s.Size, s.Age)
		}
		prev = s.Size
	}
	if math.Abs(s.Size-s.MaxSize) > 1e-9 {
		t.Errorf("held size = %v, want MaxSize %v", s.Size, s.MaxSize)
	}
}

func TestShapeAlphaFadesOut(t *testing.T) {
	m := NewShapeManager(5, 800, 600, 3)
	s := m.Spawn(Stimulus{Category: StimLetter, Char: 'x'})

	s.Update(s.Lifespan - ShapeFadeWindow + 1)
	if s.Alpha >= 1 {
		t.Errorf("alpha = %v inside fade window, want < 1", s.Alpha)
	}
	mid := s.Alpha
	s.Update(ShapeFadeWindow / 2)
	if !(s.Alpha < mid) {
		t.Errorf("alpha did not decrease across fade window: %v -> %v", mid, s.Alpha)
	}
}

func TestShapeSpawnClampsBadPositions(t *testing.T) {
	m := NewShapeManager(5, 800, 600, 9)

	s := m.Spawn(Stimulus{Category: StimSpace, HasPos: true, X: math.NaN(), Y: math.Inf(1)})
	if math.IsNaN(s.X) || math.IsInf(s.Y, 0) {
		t.Fatalf("spawn kept non-finite position (%v, %v)", s.X, s.Y)
	}
	if s.X < 0 || s.X > 800 || s.Y < 0 || s.Y > 600 {
		t.Errorf("spawn position (%v, %v) outside bounds", s.X, s.Y)
	}

	s = m.Spawn(Stimulus{Category: StimSpace, HasPos: true, X: -5000, Y: 5000})
	if s.X < ShapeMaxSize || s.Y > 600-ShapeMaxSize {
		t.Errorf("spawn position (%v, %v) not clamped to inset bounds", s.X, s.Y)
	}
}

func TestShapeManagerEvictsOldestAtCapacity(t *testing.T) {
	m := NewShapeManager(MaxShapes, 800, 600, 5)

	for i := 0; i < MaxShapes; i++ {
		m.Spawn(Stimulus{Category: StimLetter, Char: rune('a' + i%26)})
	}
	if m.Len() != MaxShapes {
		t.Fatalf("len = %d, want %d", m.Len(), MaxShapes)
	}

	oldest := m.live[0]
	second := m.live[1]
	m.Spawn(Stimulus{Category: StimSpace})
	if m.Len() != MaxShapes {
		t.Fatalf("len after overflow spawn = %d, want %d", m.Len(), MaxShapes)
	}
	if m.live[0] != second {
		t.Errorf("live[0] = %d after overflow, want previous second %d", m.live[0], second)
	}
	// The evicted slot is reused for the newcomer at the back of the list.
	if got := m.live[m.Len()-1]; got != oldest {
		t.Errorf("newest occupies slot %d, want reused slot %d", got, oldest)
	}
}

func TestShapeManagerUpdateReleasesExpired(t *testing.T) {
	m := NewShapeManager(10, 800, 600, 8)
	m.Spawn(Stimulus{Category: StimLetter, Char: 'q'})
	m.Spawn(Stimulus{Category: StimSpace, Effect: EffectExplosion})

	// The plain shape expires first; the explosion outlives it.
	m.Update(ShapeLifespan + 1)
	if m.Len() != 1 {
		t.Fatalf("len = %d after short lifespan elapsed, want 1", m.Len())
	}
	m.Update(ShapeLifespan * (ExplosionLifeScale - 1))
	if m.Len() != 0 {
		t.Fatalf("len = %d after both lifespans elapsed, want 0", m.Len())
	}
	if m.pool.Live() != 0 {
		t.Errorf("pool live = %d after update, want 0", m.pool.Live())
	}
}

func TestShapeManagerClearIdempotent(t *testing.T) {
	m := NewShapeManager(10, 800, 600, 13)
	for i := 0; i < 6; i++ {
		m.Spawn(Stimulus{Category: StimSpace})
	}
	m.Clear()
	m.Clear()
	if m.Len() != 0 || m.pool.Live() != 0 {
		t.Errorf("after double clear: len=%d poolLive=%d, want 0/0", m.Len(), m.pool.Live())
	}
	// The manager still spawns normally afterwards.
	m.Spawn(Stimulus{Category: StimSpace})
	if m.Len() != 1 {
		t.Errorf("len after respawn = %d, want 1", m.Len())
	}
}

func TestShapeRenderDataEffectOverlays(t *testing.T) {
	m := NewShapeManager(10, 800, 600, 21)
	plain := m.Spawn(Stimulus{Category: StimSpace})
	plain.Update(500)
	base := len(plain.RenderData(nil))

	sparkle := m.Spawn(Stimulus{Category: StimSpace, Effect: EffectSparkle})
	sparkle.Update(500)
	if got := len(sparkle.RenderData(nil)); got <= base {
		t.Errorf("sparkle render data %d floats, want more than plain %d", got, base)
	}
}
