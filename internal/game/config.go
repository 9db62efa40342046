package game

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
)

// Population caps, enforced on every insert.
const (
	MaxShapes    = 15
	MaxParticles = 100
)

// Shape animation (all engine times are in milliseconds).
const (
	ShapeLifespan     = 3000.0 // base; explosion multiplies by ExplosionLifeScale
	ShapeGrowFraction = 0.15   // size ramps 0 -> MaxSize over this slice of life
	ShapeFadeWindow   = 600.0  // trailing alpha fade
	ShapeMinSize      = 40.0
	ShapeMaxSize      = 120.0
	ShapeRotSpeedMax  = 0.0012 // rad/ms
)

// Explosion effect.
const (
	ExplosionLifeScale = 1.5
	ExplosionRayCount  = 8
)

// Fireworks effect: staggered secondary burst rings on top of size pulsing.
const (
	FireworksBursts  = 4
	BurstStagger     = 300.0 // ms between secondary bursts
	BurstRingLife    = 500.0 // ms each ring stays visible
	FireworksPulseHz = 3.0
)

// Sparkle effect.
const (
	SparkleCount  = 5
	SparkleOrbit  = 1.35 // accent orbit radius as a fraction of current size
	SparkleSizePx = 6.0
)

// Bounce effect (star): vertical sinusoidal displacement.
const (
	BounceAmplitude = 34.0
	BounceHz        = 1.6
)

// Rainbow effect: hue degrees advanced per millisecond of age.
const RainbowHueRate = 0.25

// Particle tuning. Gravity is px/ms^2; friction is a per-reference-frame
// damping factor rescaled by dt in the integrator.
const (
	ParticleLifeMin   = 900.0
	ParticleLifeMax   = 2200.0
	ParticleGravity   = 0.00030
	ParticleFriction  = 0.985
	ParticleSizeMin   = 4.0
	ParticleSizeMax   = 14.0
	ParticleBoundsPad = 50.0 // cull margin beyond the canvas
	RefFrameMs        = 1000.0 / 60.0
)

// Continuous pointer emission.
const (
	EmitInterval   = 120.0 // ms between trail emissions while the pointer is held
	EmitRadius     = 18.0  // spawn offset radius around the pointer
	BurstBaseCount = 24    // radial burst count at intensity 1
	BurstBaseSpeed = 0.28  // px/ms at intensity 1
)

// Frame driver: long host gaps are clamped, never replayed. The stimulus
// queue is bounded too; the population caps mean anything past it could
// never become visible anyway.
const (
	MaxFrameDt   = 100.0
	StimQueueMax = 64
)

// Synthesizer.
const (
	DefaultMaxVoices = 5
	MaxSoundDurMs    = 1500.0 // bounded duration is the implicit voice cutoff
)
