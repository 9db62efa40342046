package game

import "math"

type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

type SweepShape uint8

const (
	SweepNone SweepShape = iota
	SweepDown
	SweepUp
	SweepDownUpDown // the "boing"
)

// SoundDescriptor is a stateless value describing one synthesized event.
// It is consumed once per render call and never mutated.
type SoundDescriptor struct {
	Wave   Waveform
	Freq   float64 // Hz
	DurMs  float64
	Volume float64

	// Envelope as fractions of the total duration.
	Attack, Decay, Sustain, Release float64

	// Modulation. FMDepth 0 disables FM; Sweep is the end/start frequency
	// ratio for SweepDown/SweepUp and the dip depth for SweepDownUpDown.
	FMRatio, FMDepth float64
	Sweep            float64
	SweepShape       SweepShape
	Harmonics        int     // extra layers at halving amplitude
	Noise            float64 // 0..1 noise mix
	LowpassSweep     bool    // closing lowpass across the duration
}

// DelayedSound pairs a descriptor with a fire offset. All timing stays on
// the frame tick, never on ambient timers.
type DelayedSound struct {
	DelayMs float64
	Desc    SoundDescriptor
}

// Sink is the audio output boundary: stereo float32-LE samples at a gain.
type Sink interface {
	Play(samples []byte, gain float64)
}

// NoopSink is the degraded path when no audio backend is available.
// Visual feedback is unaffected; absence of sound is the only symptom.
type NoopSink struct{}

func (NoopSink) Play([]byte, float64) {}

type pendingSound struct {
	at   float64 // absolute ms on the tick clock
	desc SoundDescriptor
}

// Synthesizer resolves stimuli to sound descriptors and realizes them as
// bounded-duration signals. At most maxVoices overlap; extra plays are
// dropped silently, never queued.
type Synthesizer struct {
	sink Sink

	Volume float64
	Muted  bool

	maxVoices int
	voiceEnds []float64
	pending   []pendingSound
	rng       *Rand
}

func NewSynthesizer(sink Sink, maxVoices int, seed uint64) *Synthesizer {
	if sink == nil {
		sink = NoopSink{}
	}
	if maxVoices <= 0 {
		maxVoices = DefaultMaxVoices
	}
	return &Synthesizer{
		sink:      sink,
		Volume:    1.0,
		maxVoices: maxVoices,
		rng:       NewRand(seed),
	}
}

// ActiveVoices counts signals still sounding at now (ms, tick clock).
func (s *Synthesizer) ActiveVoices(now float64) int {
	n := 0
	for _, end := range s.voiceEnds {
		if end > now {
			n++
		}
	}
	return n
}

// Play resolves the stimulus and starts its sound; follow-up descriptors
// (fireworks pops, confirm arpeggio) are queued for the tick to fire.
// A play whose primary is dropped queues nothing: the whole call is a
// no-op, so dropped sounds never resurface later as stray follow-ups.
func (s *Synthesizer) Play(stim Stimulus, now float64) {
	desc, delayed := s.resolve(stim)
	if !s.start(desc, now) {
		return
	}
	for _, d := range delayed {
		s.pending = append(s.pending, pendingSound{at: now + d.DelayMs, desc: d.Desc})
	}
}

// Update fires due delayed sounds and prunes finished voices. Called once
// per frame from the driver.
func (s *Synthesizer) Update(now float64) {
	out := s.pending[:0]
	for _, p := range s.pending {
		if p.at <= now {
			s.start(p.desc, now)
		} else {
			out = append(out, p)
		}
	}
	s.pending = out

	ends := s.voiceEnds[:0]
	for _, end := range s.voiceEnds {
		if end > now {
			ends = append(ends, end)
		}
	}
	s.voiceEnds = ends
}

// start renders and plays one descriptor, reporting whether a voice
// actually started.
func (s *Synthesizer) start(desc SoundDescriptor, now float64) bool {
	if s.Muted || s.Volume <= 0 {
		return false
	}
	if s.ActiveVoices(now) >= s.maxVoices {
		return false // silent no-op, never queued
	}
	if desc.DurMs > MaxSoundDurMs {
		desc.DurMs = MaxSoundDurMs
	}
	samples := renderSound(desc, s.rng.NextU64())
	if len(samples) == 0 {
		return false
	}
	s.voiceEnds = append(s.voiceEnds, now+desc.DurMs)
	s.sink.Play(samples, clampF(s.Volume, 0, 1))
	return true
}

// pentatonicSteps spans a major pentatonic scale; adjacent key presses
// land on harmonious intervals instead of semitone clusters.
var pentatonicSteps = [5]int{0, 2, 4, 7, 9}

// letterFreq maps an alphabetic index (a=0) onto the scale, wrapping
// within three octaves above A3.
func letterFreq(index int) float64 {
	if index < 0 {
		index = 0
	}
	index %= 15
	semis := 12*(index/5) + pentatonicSteps[index%5]
	return 220.0 * math.Pow(2, float64(semis)/12.0)
}

// resolve maps a stimulus to its designed descriptor plus any delayed
// follow-ups. Effect tags override the plain category sound.
func (s *Synthesizer) resolve(stim Stimulus) (SoundDescriptor, []DelayedSound) {
	switch stim.Effect {
	case EffectExplosion:
		return descExplosion(), nil
	case EffectFireworks:
		return descFireworksLaunch(), fireworksPops()
	case EffectSparkle:
		return descShimmer(), nil
	case EffectRainbow:
		return descGliss(), nil
	case EffectBounce:
		return descBoing(), nil
	}

	switch stim.Category {
	case StimLetter:
		c := stim.Char
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		idx := 0
		if c >= 'a' && c <= 'z' {
			idx = int(c - 'a')
		}
		return descChime(letterFreq(idx)), nil
	case StimDigit:
		d := 0
		if stim.Char >= '0' && stim.Char <= '9' {
			d = int(stim.Char - '0')
		}
		return descBlip(300 + 60*float64(d)), nil
	case StimSpace:
		return descPop(1.0), nil
	case StimConfirm:
		root := 523.25 // C5
		arp := []DelayedSound{
			{DelayMs: 90, Desc: descChime(root * 5 / 4)},
			{DelayMs: 180, Desc: descChime(root * 3 / 2)},
		}
		return descChime(root), arp
	case StimDirectional:
		return descWhoosh(), nil
	case StimPunctuation:
		return descBoing(), nil
	case StimPointer:
		intensity := stim.Intensity
		if intensity <= 0 {
			intensity = 1
		}
		return descPop(intensity), nil
	default:
		return descPluck(s.rng.RangeF(220, 660)), nil
	}
}

// ---- Designed sound shapes ----------------------------------------------

// descChime: bell tone layering harmonics at decreasing amplitude.
func descChime(freq float64) SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveSine, Freq: freq, DurMs: 350, Volume: 0.55,
		Attack: 0.01, Decay: 0.35, Sustain: 0.18, Release: 0.4,
		FMRatio: 2.756, FMDepth: 2.2, Harmonics: 3,
	}
}

// descBlip: short square pip for digits.
func descBlip(freq float64) SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveSquare, Freq: freq, DurMs: 160, Volume: 0.4,
		Attack: 0.01, Decay: 0.5, Sustain: 0.1, Release: 0.2,
	}
}

// descPop: falling-pitch pop; intensity deepens and loudens it.
func descPop(intensity float64) SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveSine, Freq: 260 / math.Max(intensity, 0.5), DurMs: 140, Volume: clampF(0.4*intensity, 0.1, 0.8),
		Attack: 0.005, Decay: 0.6, Sustain: 0, Release: 0.2,
		Sweep: 0.45, SweepShape: SweepDown,
	}
}

// descBoing: FM tone whose frequency sweeps down-up-down.
func descBoing() SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveSine, Freq: 340, DurMs: 420, Volume: 0.5,
		Attack: 0.01, Decay: 0.3, Sustain: 0.35, Release: 0.3,
		FMRatio: 1.5, FMDepth: 1.8,
		Sweep: 0.45, SweepShape: SweepDownUpDown,
	}
}

// descWhoosh: filtered noise sweeping upward.
func descWhoosh() SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveNoise, Freq: 500, DurMs: 260, Volume: 0.35,
		Attack: 0.15, Decay: 0.3, Sustain: 0.3, Release: 0.35,
		Sweep: 2.2, SweepShape: SweepUp, Noise: 1.0,
	}
}

// descPluck: saw pluck for unclassified input.
func descPluck(freq float64) SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveSaw, Freq: freq, DurMs: 220, Volume: 0.35,
		Attack: 0.005, Decay: 0.7, Sustain: 0, Release: 0.25,
	}
}

// descExplosion: falling pitch under a closing lowpass.
func descExplosion() SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveNoise, Freq: 140, DurMs: 700, Volume: 0.75,
		Attack: 0.003, Decay: 0.4, Sustain: 0.2, Release: 0.45,
		Sweep: 0.3, SweepShape: SweepDown, Noise: 0.8, LowpassSweep: true,
	}
}

func descFireworksLaunch() SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveNoise, Freq: 300, DurMs: 400, Volume: 0.4,
		Attack: 0.2, Decay: 0.3, Sustain: 0.3, Release: 0.3,
		Sweep: 3.0, SweepShape: SweepUp, Noise: 0.9,
	}
}

// fireworksPops schedules one pop per secondary burst, matching the
// visual stagger.
func fireworksPops() []DelayedSound {
	pops := make([]DelayedSound, 0, FireworksBursts)
	for b := 0; b < FireworksBursts; b++ {
		d := descPop(1.4)
		d.Freq = 220 + 40*float64(b)
		pops = append(pops, DelayedSound{DelayMs: BurstStagger * float64(b+1), Desc: d})
	}
	return pops
}

// descShimmer: high bell cluster for sparkles.
func descShimmer() SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveSine, Freq: 1318.5, DurMs: 300, Volume: 0.35,
		Attack: 0.01, Decay: 0.5, Sustain: 0.05, Release: 0.35,
		FMRatio: 3.5, FMDepth: 1.2, Harmonics: 2,
	}
}

// descGliss: ascending glide for the rainbow effect.
func descGliss() SoundDescriptor {
	return SoundDescriptor{
		Wave: WaveTriangle, Freq: 392, DurMs: 500, Volume: 0.45,
		Attack: 0.05, Decay: 0.2, Sustain: 0.5, Release: 0.3,
		Sweep: 2.0, SweepShape: SweepUp, Harmonics: 1,
	}
}
