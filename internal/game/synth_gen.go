package game

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func lerpF(a, b, t float64) float64 { return a + (b-a)*t }

func smoothstep(t float64) float64 {
	t = clampF(t, 0, 1)
	return t * t * (3 - 2*t)
}

// sweepFactor shapes the frequency trajectory over normalized progress p.
// ratio is end/start for plain sweeps; for down-up-down it is the dip
// floor, with a mild overshoot above unity on the way back up.
func sweepFactor(shape SweepShape, ratio, p float64) float64 {
	if ratio <= 0 {
		ratio = 1
	}
	switch shape {
	case SweepDown, SweepUp:
		return math.Pow(ratio, p)
	case SweepDownUpDown:
		lo := ratio
		hi := 1 + (1-ratio)*0.5
		switch {
		case p < 1.0/3:
			return lerpF(1, lo, smoothstep(p*3))
		case p < 2.0/3:
			return lerpF(lo, hi, smoothstep((p-1.0/3)*3))
		default:
			return lerpF(hi, lo, smoothstep((p-2.0/3)*3))
		}
	}
	return 1
}

func oscSample(w Waveform, phase float64, seed *uint64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(phase)
	case WaveSquare:
		if math.Sin(phase) >= 0 {
			return 1
		}
		return -1
	case WaveSaw:
		frac := phase / (2 * math.Pi)
		frac -= math.Floor(frac)
		return 2*frac - 1
	case WaveTriangle:
		frac := phase / (2 * math.Pi)
		frac -= math.Floor(frac)
		return 4*math.Abs(frac-0.5) - 1
	case WaveNoise:
		return lcg(seed)
	}
	return 0
}

// renderSound realizes a descriptor as stereo float32-LE samples.
// Phase accumulates per-sample so frequency sweeps stay click-free.
func renderSound(desc SoundDescriptor, seed uint64) []byte {
	n := int(desc.DurMs / 1000.0 * SampleRate)
	if n <= 0 {
		return nil
	}
	if seed == 0 {
		seed = 1
	}
	buf := makeBuf(n)
	phase := 0.0
	modPhase := 0.0
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, desc.Attack, desc.Decay, desc.Sustain, desc.Release)
		freq := desc.Freq * sweepFactor(desc.SweepShape, desc.Sweep, p)
		phase += 2 * math.Pi * freq / SampleRate
		modPhase += 2 * math.Pi * freq * desc.FMRatio / SampleRate

		ph := phase
		if desc.FMDepth > 0 {
			ph += desc.FMDepth * env * math.Sin(modPhase)
		}
		s := oscSample(desc.Wave, ph, &seed)

		// Harmonic layers at decreasing amplitude for bell-like tones.
		for h := 2; h <= desc.Harmonics+1; h++ {
			s += math.Sin(ph*float64(h)) / float64(h*h)
		}

		if desc.Noise > 0 && desc.Wave != WaveNoise {
			s = s*(1-desc.Noise) + lcg(&seed)*desc.Noise
		}

		if desc.LowpassSweep {
			// Filter closes as the sound decays: bright attack, dark tail.
			k := 0.02 + 0.35*(1-p)
			lp += (s - lp) * k
			s = lp
		}

		putStereoF32(buf, i, softSat(s*env*desc.Volume))
	}
	return buf
}
