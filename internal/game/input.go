package game

import (
	"unicode"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Rapid typing within this gap triggers the rainbow effect. The gap check
// lives here in the classifier; the engine only ever sees the tag.
const RapidTypeGapMs = 150.0

// Classifier turns raw window events into Stimulus values. The engine
// never sees platform key codes.
type Classifier struct {
	lastKeyAt float64
	rng       *Rand
}

func NewClassifier(seed uint64) *Classifier {
	return &Classifier{lastKeyAt: -1e12, rng: NewRand(seed)}
}

// rollEffect picks an occasional special effect so sessions stay varied.
func (c *Classifier) rollEffect() EffectTag {
	switch c.rng.Intn(10) {
	case 0:
		return EffectSparkle
	case 1:
		return EffectBounce
	case 2:
		return EffectFireworks
	default:
		return EffectNormal
	}
}

// ClassifyChar handles printable input from the char callback.
func (c *Classifier) ClassifyChar(ch rune, now float64) Stimulus {
	rapid := now-c.lastKeyAt < RapidTypeGapMs
	c.lastKeyAt = now

	stim := Stimulus{Char: ch, Intensity: 1}
	switch {
	case unicode.IsLetter(ch):
		stim.Category = StimLetter
	case ch >= '0' && ch <= '9':
		stim.Category = StimDigit
	case ch == ' ':
		stim.Category = StimSpace
	case unicode.IsPunct(ch) || unicode.IsSymbol(ch):
		stim.Category = StimPunctuation
	default:
		stim.Category = StimOther
	}

	switch {
	case rapid:
		stim.Effect = EffectRainbow
	case stim.Category == StimSpace:
		stim.Effect = EffectExplosion
	default:
		stim.Effect = c.rollEffect()
	}
	return stim
}

// ClassifyKey handles non-printable keys from the key callback. Returns
// false for keys the toy ignores.
func (c *Classifier) ClassifyKey(key glfw.Key, now float64) (Stimulus, bool) {
	rapid := now-c.lastKeyAt < RapidTypeGapMs

	stim := Stimulus{Intensity: 1}
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		stim.Category = StimConfirm
		stim.Effect = EffectFireworks
	case glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight:
		stim.Category = StimDirectional
		stim.Effect = EffectBounce
	case glfw.KeyTab, glfw.KeyBackspace:
		stim.Category = StimOther
		stim.Effect = c.rollEffect()
	default:
		return Stimulus{}, false
	}

	c.lastKeyAt = now
	if rapid {
		stim.Effect = EffectRainbow
	}
	return stim, true
}

// ClassifyPointer handles a pointer press. Intensity varies by button so
// each finger sounds and looks different.
func (c *Classifier) ClassifyPointer(button glfw.MouseButton, x, y float64) Stimulus {
	intensity := 1.0
	switch button {
	case glfw.MouseButtonRight:
		intensity = 1.6
	case glfw.MouseButtonMiddle:
		intensity = 2.2
	}
	return Stimulus{
		Category:  StimPointer,
		Effect:    c.rollEffect(),
		X:         x,
		Y:         y,
		HasPos:    true,
		Intensity: intensity,
	}
}
