package game

import "math"

// Spawn handles a discrete particle stimulus: a radial burst at the
// stimulus position (or canvas centre when none), scaled by intensity.
func (ps *ParticleSystem) Spawn(stim Stimulus) {
	x, y := ps.w/2, ps.h/2
	if stim.HasPos {
		x = sanitizeF(stim.X, x)
		y = sanitizeF(stim.Y, y)
	}
	intensity := stim.Intensity
	if intensity <= 0 {
		intensity = 1
	}
	ps.Burst(x, y, intensity, stim.Effect)
}

// Burst emits a high-volume radial burst. Count and velocity scale with
// intensity, which varies by which button or gesture fired it.
func (ps *ParticleSystem) Burst(x, y, intensity float64, effect EffectTag) {
	count := int(BurstBaseCount * intensity)
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(0.25, 1.0) * BurstBaseSpeed * intensity
		p := Particle{
			X:        x + ps.rng.RangeF(-3, 3),
			Y:        y + ps.rng.RangeF(-3, 3),
			VX:       math.Cos(ang) * spd,
			VY:       math.Sin(ang)*spd - 0.05, // slight upward kick
			Gravity:  ParticleGravity,
			Friction: ParticleFriction,
			Lifespan: ps.rng.RangeF(ParticleLifeMin, ParticleLifeMax),
			MaxSize:  ps.rng.RangeF(ParticleSizeMin, ParticleSizeMax),
			Kind:     ParticleKind(ps.rng.Intn(particleKindCount)),
			Effect:   effect,
		}
		if effect == EffectRainbow {
			p.Hue = ps.rng.RangeF(0, 360)
			p.Col = hueRGB(p.Hue)
		} else {
			p.Col = randomBright(ps.rng)
		}
		ps.add(p)
	}
}

// EmitContinuous runs the pointer trail: while the pointer is active,
// 1-3 gentle particles every EmitInterval at random offsets around it,
// independent of discrete bursts.
func (ps *ParticleSystem) EmitContinuous(dt float64, active bool, x, y float64) {
	if !active {
		ps.emitTimer = 0
		return
	}
	ps.emitTimer += dt
	for ps.emitTimer >= EmitInterval {
		ps.emitTimer -= EmitInterval
		n := ps.rng.Range(1, 3)
		for i := 0; i < n; i++ {
			ang := ps.rng.RangeF(0, 2*math.Pi)
			r := ps.rng.RangeF(0, EmitRadius)
			drift := ps.rng.RangeF(0.01, 0.05)
			ps.add(Particle{
				X:        sanitizeF(x, ps.w/2) + math.Cos(ang)*r,
				Y:        sanitizeF(y, ps.h/2) + math.Sin(ang)*r,
				VX:       math.Cos(ang) * drift,
				VY:       math.Sin(ang)*drift - 0.03,
				Gravity:  ParticleGravity * 0.5,
				Friction: ParticleFriction,
				Lifespan: ps.rng.RangeF(ParticleLifeMin*0.6, ParticleLifeMin),
				MaxSize:  ps.rng.RangeF(ParticleSizeMin, ParticleSizeMin+4),
				Col:      randomBright(ps.rng),
				Kind:     ParticleKind(ps.rng.Intn(3)), // dot/spark/streak trail mix
			})
		}
	}
}
