package game

import "testing"

func TestPoolAcquireReleaseCycle(t *testing.T) {
	p := NewPool[Shape](4)
	if p.Cap() != 4 {
		t.Fatalf("prewarm cap = %d, want 4", p.Cap())
	}
	if p.Live() != 0 {
		t.Fatalf("live = %d, want 0", p.Live())
	}

	a := p.Acquire()
	b := p.Acquire()
	if a == b {
		t.Fatalf("acquire returned the same index twice: %d", a)
	}
	if p.Live() != 2 {
		t.Fatalf("live = %d, want 2", p.Live())
	}

	p.Release(a)
	if p.Live() != 1 {
		t.Fatalf("live after release = %d, want 1", p.Live())
	}

	// The freed slot is reused before the arena grows.
	c := p.Acquire()
	if c != a {
		t.Errorf("acquire after release = %d, want reused index %d", c, a)
	}
}

func TestPoolGrowsWhenEmpty(t *testing.T) {
	p := NewPool[Particle](2)
	for i := 0; i < 10; i++ {
		p.Acquire()
	}
	if p.Live() != 10 {
		t.Fatalf("live = %d, want 10", p.Live())
	}
	if p.Cap() < 10 {
		t.Fatalf("cap = %d, want >= 10", p.Cap())
	}
}

func TestPoolZeroesReusedSlots(t *testing.T) {
	p := NewPool[Shape](1)
	idx := p.Acquire()
	s := p.Get(idx)
	s.Alive = true
	s.Age = 1234
	p.Release(idx)

	idx2 := p.Acquire()
	s2 := p.Get(idx2)
	if s2.Alive || s2.Age != 0 {
		t.Errorf("reacquired slot not reset: alive=%v age=%v", s2.Alive, s2.Age)
	}
}

func TestPoolZeroPrewarm(t *testing.T) {
	p := NewPool[Particle](0)
	idx := p.Acquire()
	if p.Live() != 1 {
		t.Fatalf("live = %d, want 1", p.Live())
	}
	p.Release(idx)
	if p.Live() != 0 {
		t.Fatalf("live = %d, want 0", p.Live())
	}
}
