package game

// ShapeManager owns the live shape collection. Shapes live in pool slots;
// the live list holds their indices oldest-first, which is also the
// back-to-front render order.
type ShapeManager struct {
	pool *Pool[Shape]
	live []int32

	capacity int
	w, h     float64
	rng      *Rand
}

func NewShapeManager(capacity, w, h int, seed uint64) *ShapeManager {
	if capacity <= 0 {
		capacity = MaxShapes
	}
	return &ShapeManager{
		pool:     NewPool[Shape](capacity),
		live:     make([]int32, 0, capacity),
		capacity: capacity,
		w:        float64(w),
		h:        float64(h),
		rng:      NewRand(seed),
	}
}

// Resize updates spawn bounds. Live shapes keep their positions.
func (m *ShapeManager) Resize(w, h int) {
	m.w = float64(w)
	m.h = float64(h)
}

func (m *ShapeManager) Len() int { return len(m.live) }

// shapeKindFor resolves the stimulus category to a shape subtype.
// Uppercase letters always map to the star; lowercase letters map by
// alphabetic index modulo the kind count, so repeated typing walks the
// full set and letters a kind-stride apart share a subtype.
func shapeKindFor(stim Stimulus, r *Rand) ShapeKind {
	switch stim.Category {
	case StimLetter:
		c := stim.Char
		if c >= 'A' && c <= 'Z' {
			return ShapeStar
		}
		if c >= 'a' && c <= 'z' {
			return ShapeKind(int(c-'a') % shapeKindCount)
		}
		return ShapeKind(r.Intn(shapeKindCount))
	case StimDigit:
		if c := stim.Char; c >= '0' && c <= '9' {
			return ShapeKind(int(c-'0') % shapeKindCount)
		}
		return ShapeKind(r.Intn(shapeKindCount))
	case StimSpace:
		return ShapeCircle
	case StimConfirm:
		return ShapeHeart
	case StimDirectional:
		return ShapeTriangle
	default:
		return ShapeKind(r.Intn(shapeKindCount))
	}
}

// Spawn acquires a pooled shape and initializes it from the stimulus.
// At capacity the oldest live shape is evicted first, so the population
// invariant holds after every spawn.
func (m *ShapeManager) Spawn(stim Stimulus) *Shape {
	if len(m.live) >= m.capacity {
		m.pool.Release(m.live[0])
		m.live = append(m.live[:0], m.live[1:]...)
	}

	idx := m.pool.Acquire()
	s := m.pool.Get(idx)

	s.Alive = true
	s.Age = 0
	s.Effect = stim.Effect
	s.Kind = shapeKindFor(stim, m.rng)
	if s.Effect == EffectBounce {
		s.Kind = ShapeStar
	}

	s.MaxSize = m.rng.RangeF(ShapeMinSize, ShapeMaxSize)
	s.Size = 0
	s.Alpha = 1
	s.Lifespan = ShapeLifespan
	if s.Effect == EffectExplosion {
		s.Lifespan = ShapeLifespan * ExplosionLifeScale
	}

	s.X, s.Y = m.spawnPos(stim)

	s.Rotation = m.rng.RangeF(0, 6.28318)
	s.RotSpeed = m.rng.RangeF(-ShapeRotSpeedMax, ShapeRotSpeedMax)
	s.BouncePhase = m.rng.RangeF(0, 6.28318)
	s.SparkleSeed = m.rng.NextU64()

	if s.Effect == EffectRainbow {
		s.Hue = m.rng.RangeF(0, 360)
		s.Col = hueRGB(s.Hue)
	} else {
		s.Col = randomBright(m.rng)
	}

	m.live = append(m.live, idx)
	return s
}

// spawnPos picks a position inside the bounds inset by the maximum shape
// radius, so nothing is born clipped. Supplied positions are sanitized and
// clamped rather than rejected.
func (m *ShapeManager) spawnPos(stim Stimulus) (float64, float64) {
	inset := ShapeMaxSize
	lox, hix := inset, m.w-inset
	loy, hiy := inset, m.h-inset
	if hix < lox {
		lox, hix = m.w/2, m.w/2
	}
	if hiy < loy {
		loy, hiy = m.h/2, m.h/2
	}
	if stim.HasPos {
		x := clampF(sanitizeF(stim.X, m.w/2), lox, hix)
		y := clampF(sanitizeF(stim.Y, m.h/2), loy, hiy)
		return x, y
	}
	return m.rng.RangeF(lox, hix), m.rng.RangeF(loy, hiy)
}

// Update steps every live shape and releases expired ones the same frame.
func (m *ShapeManager) Update(dt float64) {
	out := m.live[:0]
	for _, idx := range m.live {
		s := m.pool.Get(idx)
		if s.Update(dt) {
			out = append(out, idx)
			continue
		}
		m.pool.Release(idx)
	}
	m.live = out
}

// RenderData appends all live shapes oldest-first.
func (m *ShapeManager) RenderData(buf []float32) []float32 {
	for _, idx := range m.live {
		buf = m.pool.Get(idx).RenderData(buf)
	}
	return buf
}

// Clear releases every live shape. Safe to call repeatedly.
func (m *ShapeManager) Clear() {
	for _, idx := range m.live {
		m.pool.Release(idx)
	}
	m.live = m.live[:0]
}
