package game

import "math"

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeTriangle
	ShapeStar
	ShapeHeart
)

const shapeKindCount = 5

// ShapePhase is derived from age, never stored. Animation stays a pure
// function of elapsed time so arbitrarily long host gaps can't corrupt it.
type ShapePhase uint8

const (
	PhaseInitializing ShapePhase = iota
	PhaseGrowing
	PhaseStable
	PhaseFadingOut
	PhaseExpired
)

type Shape struct {
	Alive bool

	X, Y    float64
	Size    float64 // current half-extent in px
	MaxSize float64 // target half-extent

	Age      float64 // ms since birth
	Lifespan float64 // ms

	Rotation float64 // rad
	RotSpeed float64 // rad/ms

	Alpha float64
	Col   RGB
	Hue   float64 // rainbow starting hue, degrees

	Kind   ShapeKind
	Effect EffectTag

	BouncePhase float64 // bounce starting phase offset, rad
	SparkleSeed uint64  // stable accent layout per shape
}

func (s *Shape) Phase() ShapePhase {
	switch {
	case !s.Alive:
		return PhaseExpired
	case s.Age <= 0:
		return PhaseInitializing
	case s.Age < s.Lifespan*ShapeGrowFraction:
		return PhaseGrowing
	case s.Age >= s.Lifespan-ShapeFadeWindow:
		return PhaseFadingOut
	default:
		return PhaseStable
	}
}

// Update advances the shape by dt milliseconds and reports whether it is
// still alive. Size, alpha, and colour are recomputed from age each call.
func (s *Shape) Update(dt float64) bool {
	if !s.Alive {
		return false
	}
	s.Age += dt
	if s.Age >= s.Lifespan {
		s.Alive = false
		return false
	}

	s.Rotation += s.RotSpeed * dt

	// Growth curve over the first slice of life.
	growDur := s.Lifespan * ShapeGrowFraction
	if s.Age < growDur {
		t := s.Age / growDur
		if s.Effect == EffectExplosion {
			// Accelerated growth with overshoot, settling back to MaxSize.
			s.Size = s.MaxSize * easeOutBack(math.Pow(t, 0.7))
		} else {
			s.Size = s.MaxSize * easeOutCubic(t)
		}
	} else {
		s.Size = s.MaxSize
	}

	if s.Effect == EffectFireworks {
		// Periodic sinusoidal pulsing on top of the held size.
		pulse := 1.0 + 0.12*math.Sin(2*math.Pi*FireworksPulseHz*s.Age/1000.0)
		s.Size *= pulse
	}

	// Trailing alpha fade over a fixed window.
	fadeStart := s.Lifespan - ShapeFadeWindow
	if fadeStart < 0 {
		fadeStart = 0
	}
	if s.Age >= fadeStart && s.Lifespan > fadeStart {
		s.Alpha = clampF(1.0-(s.Age-fadeStart)/(s.Lifespan-fadeStart), 0, 1)
	} else {
		s.Alpha = 1.0
	}

	if s.Effect == EffectRainbow {
		s.Col = hueRGB(s.Hue + s.Age*RainbowHueRate)
	}

	return true
}

// renderPos is the drawn position: bounce layers a vertical sinusoidal
// displacement on top of the stored position.
func (s *Shape) renderPos() (float64, float64) {
	if s.Effect == EffectBounce {
		dy := -math.Abs(math.Sin(s.BouncePhase+2*math.Pi*BounceHz*s.Age/1000.0)) * BounceAmplitude
		return s.X, s.Y + dy
	}
	return s.X, s.Y
}
