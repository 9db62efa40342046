package game

import "math"

// Shape geometry is built CPU-side into a flat triangle buffer:
// [x, y, r, g, b, a] per vertex, three vertices per triangle. The surface
// draws the buffer in one call, so insertion order is compositing order.

func appendTri(buf []float32, x1, y1, x2, y2, x3, y3 float64, col RGB, alpha float64) []float32 {
	rc := float32(col.R) / 255.0
	gc := float32(col.G) / 255.0
	bc := float32(col.B) / 255.0
	ac := float32(clampF(alpha, 0, 1))
	return append(buf,
		float32(x1), float32(y1), rc, gc, bc, ac,
		float32(x2), float32(y2), rc, gc, bc, ac,
		float32(x3), float32(y3), rc, gc, bc, ac,
	)
}

// appendFan triangulates a convex-ish outline around (cx, cy). pts holds
// unit-space [x,y] pairs; they are scaled, rotated, and translated here.
func appendFan(buf []float32, cx, cy, size, rot float64, pts []float64, col RGB, alpha float64) []float32 {
	n := len(pts) / 2
	if n < 3 {
		return buf
	}
	c := math.Cos(rot)
	s := math.Sin(rot)
	px := func(i int) (float64, float64) {
		x := pts[i*2] * size
		y := pts[i*2+1] * size
		return cx + c*x - s*y, cy + s*x + c*y
	}
	for i := 0; i < n; i++ {
		x1, y1 := px(i)
		x2, y2 := px((i + 1) % n)
		buf = appendTri(buf, cx, cy, x1, y1, x2, y2, col, alpha)
	}
	return buf
}

// Unit outlines, built once. Sized so the max |coord| is ~1, making Size
// the shape's half-extent.
var (
	circlePts   = buildCircle(24)
	squarePts   = []float64{-0.85, -0.85, 0.85, -0.85, 0.85, 0.85, -0.85, 0.85}
	trianglePts = []float64{0, -1, 0.92, 0.75, -0.92, 0.75}
	starPts     = buildStar(5, 1.0, 0.45)
	heartPts    = buildHeart(24)
)

func buildCircle(segments int) []float64 {
	pts := make([]float64, 0, segments*2)
	for i := 0; i < segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		pts = append(pts, math.Cos(a), math.Sin(a))
	}
	return pts
}

func buildStar(points int, outer, inner float64) []float64 {
	pts := make([]float64, 0, points*4)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)/float64(points*2)*2*math.Pi - math.Pi/2
		pts = append(pts, r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}

func buildHeart(samples int) []float64 {
	// Classic parametric heart, normalized to a unit half-extent.
	pts := make([]float64, 0, samples*2)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples) * 2 * math.Pi
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts = append(pts, x/17.0, -y/17.0)
	}
	return pts
}

func outlineFor(kind ShapeKind) []float64 {
	switch kind {
	case ShapeCircle:
		return circlePts
	case ShapeSquare:
		return squarePts
	case ShapeTriangle:
		return trianglePts
	case ShapeStar:
		return starPts
	case ShapeHeart:
		return heartPts
	}
	return circlePts
}

// RenderData appends the shape's triangles to buf: body first, then any
// effect overlay so accents composite on top of the fill.
func (s *Shape) RenderData(buf []float32) []float32 {
	if !s.Alive || s.Size <= 0 || s.Alpha <= 0 {
		return buf
	}
	x, y := s.renderPos()
	buf = appendFan(buf, x, y, s.Size, s.Rotation, outlineFor(s.Kind), s.Col, s.Alpha)

	switch s.Effect {
	case EffectExplosion:
		buf = s.appendRays(buf, x, y)
	case EffectSparkle:
		buf = s.appendSparkles(buf, x, y)
	case EffectFireworks:
		buf = s.appendBursts(buf, x, y)
	}
	return buf
}

// appendRays draws radiating thin triangles that extend with the growth curve.
func (s *Shape) appendRays(buf []float32, cx, cy float64) []float32 {
	growDur := s.Lifespan * ShapeGrowFraction
	grow := 1.0
	if growDur > 0 && s.Age < growDur {
		grow = s.Age / growDur
	}
	inner := s.Size * 1.15
	outer := inner + s.Size*0.65*grow
	halfW := s.Size * 0.06
	for i := 0; i < ExplosionRayCount; i++ {
		a := s.Rotation + float64(i)/float64(ExplosionRayCount)*2*math.Pi
		dx := math.Cos(a)
		dy := math.Sin(a)
		// Perpendicular for ray width.
		nx := -dy * halfW
		ny := dx * halfW
		buf = appendTri(buf,
			cx+dx*inner+nx, cy+dy*inner+ny,
			cx+dx*inner-nx, cy+dy*inner-ny,
			cx+dx*outer, cy+dy*outer,
			s.Col, s.Alpha*0.85)
	}
	return buf
}

// appendSparkles draws small rotating accent glyphs orbiting the shape.
func (s *Shape) appendSparkles(buf []float32, cx, cy float64) []float32 {
	orbit := s.Size * SparkleOrbit
	spin := s.Age * 0.004
	tint := s.Col.Add(90, 90, 90)
	for i := 0; i < SparkleCount; i++ {
		// Stable per-accent phase from the shape's sparkle seed.
		h := splitmix64(s.SparkleSeed + uint64(i))
		base := float64(h%360) / 360.0 * 2 * math.Pi
		a := base + spin
		ax := cx + math.Cos(a)*orbit
		ay := cy + math.Sin(a)*orbit
		buf = appendFan(buf, ax, ay, SparkleSizePx, spin*3+base, squarePts, tint, s.Alpha)
	}
	return buf
}

// appendBursts draws the staggered secondary firework bursts: rings of
// small dots expanding outward, one ring per stagger step.
func (s *Shape) appendBursts(buf []float32, cx, cy float64) []float32 {
	for b := 0; b < FireworksBursts; b++ {
		start := BurstStagger * float64(b+1)
		t := (s.Age - start) / BurstRingLife
		if t < 0 || t > 1 {
			continue
		}
		radius := s.Size * (0.5 + 1.3*t)
		alpha := s.Alpha * (1 - t)
		dot := s.Size * 0.08 * (1 - 0.5*t)
		// Rings cool from white-hot to the body colour as they expand.
		col := lerpRGB(Palette.White, s.Col, t)
		for i := 0; i < 10; i++ {
			a := float64(i)/10.0*2*math.Pi + float64(b)*0.31
			dx := cx + math.Cos(a)*radius
			dy := cy + math.Sin(a)*radius
			buf = appendFan(buf, dx, dy, dot, 0, squarePts, col, alpha)
		}
	}
	return buf
}
