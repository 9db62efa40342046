package game

import (
	"math"
	"testing"
)

func trailParticle(x, y float64) Particle {
	return Particle{
		X: x, Y: y,
		Friction: ParticleFriction,
		Lifespan: 1000,
		MaxSize:  4,
	}
}

func TestParticleCapacityEvictsOldest(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 800, 600, 1)

	for i := 0; i < MaxParticles; i++ {
		ps.add(trailParticle(float64(i), 0))
	}
	if ps.Len() != MaxParticles {
		t.Fatalf("len = %d, want %d", ps.Len(), MaxParticles)
	}

	// One more insert drops the first particle, keeping #2..#101.
	ps.add(trailParticle(9999, 0))
	if ps.Len() != MaxParticles {
		t.Fatalf("len after overflow = %d, want %d", ps.Len(), MaxParticles)
	}
	if got := ps.pool.Get(ps.live[0]).X; got != 1 {
		t.Errorf("oldest survivor at x=%v, want 1", got)
	}
	if got := ps.pool.Get(ps.live[ps.Len()-1]).X; got != 800+ParticleBoundsPad {
		t.Errorf("newest at x=%v, want clamped %v", got, 800+ParticleBoundsPad)
	}
}

func TestParticleGravityAndFriction(t *testing.T) {
	p := Particle{
		Alive:    true,
		X:        100,
		Y:        100,
		VX:       0.2,
		VY:       0,
		Gravity:  ParticleGravity,
		Friction: ParticleFriction,
		Lifespan: 5000,
		MaxSize:  4,
	}

	vx0 := p.VX
	for i := 0; i < 10; i++ {
		p.step(16)
	}
	if p.VY <= 0 {
		t.Errorf("vy = %v after gravity, want > 0 (downward)", p.VY)
	}
	if p.VX >= vx0 {
		t.Errorf("vx = %v, want damped below %v", p.VX, vx0)
	}
	if p.X <= 100 || p.Y <= 100 {
		t.Errorf("position (%v, %v) did not advance", p.X, p.Y)
	}
}

func TestParticleSizeAndAlphaProfile(t *testing.T) {
	p := Particle{Alive: true, Friction: 1, Lifespan: 1000, MaxSize: 10}

	p.step(75) // mid-growth
	if p.Size <= 0 || p.Size >= p.MaxSize {
		t.Errorf("size = %v at mid-growth, want in (0, %v)", p.Size, p.MaxSize)
	}
	p.step(425) // hold plateau
	if p.Size != p.MaxSize {
		t.Errorf("size = %v on plateau, want %v", p.Size, p.MaxSize)
	}
	p.step(425) // shrinking tail
	if p.Size >= p.MaxSize {
		t.Errorf("size = %v in tail, want < %v", p.Size, p.MaxSize)
	}
	if want := 1.0 - p.Age/p.Lifespan; math.Abs(p.Alpha-want) > 1e-9 {
		t.Errorf("alpha = %v, want %v", p.Alpha, want)
	}

	if p.step(100) {
		t.Error("particle alive past its lifespan")
	}
}

func TestParticleOutOfBoundsCulled(t *testing.T) {
	ps := NewParticleSystem(10, 800, 600, 2)
	ps.add(Particle{X: 400, Y: 300, VX: 2, Friction: 1, Lifespan: 100000, MaxSize: 4})

	// 2 px/ms rightward crosses the padded edge well within the lifespan.
	for i := 0; i < 40 && ps.Len() > 0; i++ {
		ps.Update(16)
	}
	if ps.Len() != 0 {
		t.Fatalf("len = %d, want 0 after leaving padded bounds", ps.Len())
	}
	if ps.pool.Live() != 0 {
		t.Errorf("pool live = %d, want 0", ps.pool.Live())
	}
}

func TestParticleBurstScalesWithIntensity(t *testing.T) {
	ps := NewParticleSystem(500, 800, 600, 3)
	ps.Burst(400, 300, 1, EffectNormal)
	low := ps.Len()
	ps.Clear()
	ps.Burst(400, 300, 2.2, EffectNormal)
	high := ps.Len()

	if low != BurstBaseCount {
		t.Errorf("burst count at intensity 1 = %d, want %d", low, BurstBaseCount)
	}
	if high <= low {
		t.Errorf("burst count at intensity 2.2 = %d, want > %d", high, low)
	}
}

func TestParticleSpawnDefaultsToCentre(t *testing.T) {
	ps := NewParticleSystem(200, 800, 600, 4)
	ps.Spawn(Stimulus{Category: StimPointer})
	if ps.Len() == 0 {
		t.Fatal("spawn emitted nothing")
	}
	for _, idx := range ps.live {
		p := ps.pool.Get(idx)
		if math.Abs(p.X-400) > 10 || math.Abs(p.Y-300) > 10 {
			t.Fatalf("particle at (%v, %v), want near canvas centre", p.X, p.Y)
		}
	}
}

func TestParticleEmitContinuousCadence(t *testing.T) {
	ps := NewParticleSystem(500, 800, 600, 5)

	// Inactive pointer emits nothing and holds the timer at zero.
	ps.EmitContinuous(EmitInterval*3, false, 100, 100)
	if ps.Len() != 0 {
		t.Fatalf("emitted %d particles while inactive, want 0", ps.Len())
	}

	ps.EmitContinuous(EmitInterval-1, true, 100, 100)
	if ps.Len() != 0 {
		t.Fatalf("emitted %d particles before the interval elapsed, want 0", ps.Len())
	}
	ps.EmitContinuous(2, true, 100, 100)
	n := ps.Len()
	if n < 1 || n > 3 {
		t.Fatalf("emitted %d particles per interval, want 1..3", n)
	}
	for _, idx := range ps.live {
		p := ps.pool.Get(idx)
		if math.Hypot(p.X-100, p.Y-100) > EmitRadius+1e-9 {
			t.Errorf("trail particle at (%v, %v), want within %v px of pointer", p.X, p.Y, EmitRadius)
		}
	}
}

func TestParticleClearIdempotent(t *testing.T) {
	ps := NewParticleSystem(200, 800, 600, 6)
	ps.Burst(400, 300, 1, EffectNormal)
	ps.Clear()
	ps.Clear()
	if ps.Len() != 0 || ps.pool.Live() != 0 {
		t.Errorf("after double clear: len=%d poolLive=%d, want 0/0", ps.Len(), ps.pool.Live())
	}
	ps.Burst(400, 300, 1, EffectNormal)
	if ps.Len() != BurstBaseCount {
		t.Errorf("len after respawn = %d, want %d", ps.Len(), BurstBaseCount)
	}
}

func TestParticleRenderDataLayout(t *testing.T) {
	ps := NewParticleSystem(10, 800, 600, 7)
	ps.add(Particle{X: 10, Y: 20, Size: 4, Alpha: 0.5, Col: RGB{255, 0, 0}, Kind: ParticleRing, Lifespan: 1000, MaxSize: 4})

	buf := ps.RenderData(nil)
	if len(buf) != 8 {
		t.Fatalf("render data = %d floats, want 8", len(buf))
	}
	if buf[0] != 10 || buf[1] != 20 || buf[2] != 4 {
		t.Errorf("pos/size = %v %v %v, want 10 20 4", buf[0], buf[1], buf[2])
	}
	if buf[7] != float32(ParticleRing) {
		t.Errorf("glyph = %v, want %v", buf[7], float32(ParticleRing))
	}
}
