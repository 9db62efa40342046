package game

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// AudioSystem is the oto-backed Sink. One short-lived player per sound;
// bounded sample durations make explicit voice teardown unnecessary.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

func NewAudioSystem() (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{ctx: ctx, ready: ready}, nil
}

// Play starts a sound at the given gain. Drops silently while the audio
// context is still warming up rather than blocking.
func (a *AudioSystem) Play(samples []byte, gain float64) {
	if a == nil || len(samples) == 0 || gain <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
