package game

import "math"

// step advances one particle by dt milliseconds and reports survival.
// Gravity pulls downward; friction damps velocity toward zero. The size
// profile grows over the first 15% of life, holds to 85%, then shrinks;
// alpha tracks the remaining-life fraction directly.
func (p *Particle) step(dt float64) bool {
	if !p.Alive {
		return false
	}
	p.Age += dt
	if p.Age >= p.Lifespan {
		p.Alive = false
		return false
	}

	// Frame-rate independent damping: Friction is defined per reference
	// frame, raised to the number of reference frames dt spans.
	fr := math.Pow(p.Friction, dt/RefFrameMs)
	p.VY += p.Gravity * dt
	p.VX *= fr
	p.VY *= fr
	p.X += p.VX * dt
	p.Y += p.VY * dt

	t := p.Age / p.Lifespan
	switch {
	case t < 0.15:
		p.Size = p.MaxSize * easeOutCubic(t/0.15)
	case t < 0.85:
		p.Size = p.MaxSize
	default:
		p.Size = p.MaxSize * clampF((1.0-t)/0.15, 0, 1)
	}
	p.Alpha = 1.0 - t

	if p.Effect == EffectRainbow {
		p.Col = hueRGB(p.Hue + p.Age*RainbowHueRate)
	}

	return true
}

// Update steps every live particle, releasing expired ones the same frame.
// Leaving the canvas bounds by more than the cull margin counts as expiry.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	out := ps.live[:0]
	for _, idx := range ps.live {
		p := ps.pool.Get(idx)
		if !p.step(dt) || ps.outOfBounds(p) {
			p.Alive = false
			ps.pool.Release(idx)
			continue
		}
		out = append(out, idx)
	}
	ps.live = out
}

func (ps *ParticleSystem) outOfBounds(p *Particle) bool {
	return p.X < -ParticleBoundsPad || p.X > ps.w+ParticleBoundsPad ||
		p.Y < -ParticleBoundsPad || p.Y > ps.h+ParticleBoundsPad
}
