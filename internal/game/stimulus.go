package game

// StimCategory classifies an input event. The engine never sees raw
// platform key codes; the input layer resolves them first.
type StimCategory uint8

const (
	StimLetter StimCategory = iota
	StimDigit
	StimSpace
	StimConfirm
	StimDirectional
	StimPunctuation
	StimOther
	StimPointer
)

// EffectTag selects which animation/render/sound profile an entity uses.
type EffectTag uint8

const (
	EffectNormal EffectTag = iota
	EffectExplosion
	EffectFireworks
	EffectSparkle
	EffectBounce
	EffectRainbow
)

// Stimulus is one already-classified input event.
type Stimulus struct {
	Category StimCategory
	Char     rune // meaningful for letter/digit/punctuation
	Effect   EffectTag
	X, Y     float64 // pointer position when HasPos
	HasPos   bool
	// Intensity scales pointer burst size/velocity; which button or
	// gesture fired the event decides it. 1.0 for keyboard stimuli.
	Intensity float64
}
