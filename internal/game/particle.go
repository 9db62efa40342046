package game

type ParticleKind uint8

const (
	ParticleDot ParticleKind = iota
	ParticleSpark
	ParticleStreak
	ParticleRing
)

const particleKindCount = 4

type Particle struct {
	Alive bool

	X, Y   float64
	VX, VY float64 // px/ms

	Gravity  float64 // px/ms^2, pulls +y
	Friction float64 // damping factor per reference frame

	Age      float64 // ms since birth
	Lifespan float64 // ms

	Size    float64
	MaxSize float64
	Alpha   float64

	Col    RGB
	Hue    float64
	Kind   ParticleKind
	Effect EffectTag
}

// ParticleSystem owns the live particle collection: pooled slots plus an
// oldest-first index list, same ownership discipline as ShapeManager.
type ParticleSystem struct {
	pool *Pool[Particle]
	live []int32

	capacity  int
	w, h      float64
	rng       *Rand
	emitTimer float64
}

func NewParticleSystem(capacity, w, h int, seed uint64) *ParticleSystem {
	if capacity <= 0 {
		capacity = MaxParticles
	}
	return &ParticleSystem{
		pool:     NewPool[Particle](capacity),
		live:     make([]int32, 0, capacity),
		capacity: capacity,
		w:        float64(w),
		h:        float64(h),
		rng:      NewRand(seed),
	}
}

func (ps *ParticleSystem) Resize(w, h int) {
	ps.w = float64(w)
	ps.h = float64(h)
}

func (ps *ParticleSystem) Len() int { return len(ps.live) }

// add inserts one particle, evicting the oldest when at capacity.
func (ps *ParticleSystem) add(init Particle) {
	if len(ps.live) >= ps.capacity {
		ps.pool.Release(ps.live[0])
		ps.live = append(ps.live[:0], ps.live[1:]...)
	}
	idx := ps.pool.Acquire()
	p := ps.pool.Get(idx)
	*p = init
	p.Alive = true
	p.X = clampF(sanitizeF(p.X, ps.w/2), -ParticleBoundsPad, ps.w+ParticleBoundsPad)
	p.Y = clampF(sanitizeF(p.Y, ps.h/2), -ParticleBoundsPad, ps.h+ParticleBoundsPad)
	ps.live = append(ps.live, idx)
}

// Clear releases every live particle. Safe to call repeatedly.
func (ps *ParticleSystem) Clear() {
	for _, idx := range ps.live {
		ps.pool.Release(idx)
	}
	ps.live = ps.live[:0]
	ps.emitTimer = 0
}

// RenderData appends live particles oldest-first as point sprites:
// [x, y, size, r, g, b, a, glyph] per particle. The glyph slot selects the
// fragment shape (dot/spark/streak/ring) in the sprite shader.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	for _, idx := range ps.live {
		p := ps.pool.Get(idx)
		if p.Size <= 0 || p.Alpha <= 0 {
			continue
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255.0, float32(p.Col.G)/255.0, float32(p.Col.B)/255.0,
			float32(clampF(p.Alpha, 0, 1)),
			float32(p.Kind),
		)
	}
	return buf
}
