package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// RunDesktop owns the GLFW window and main loop. All engine state is
// wired here and passed down explicitly; there are no package-level
// singletons.
func RunDesktop(cfg *Settings, log *zap.Logger) error {
	runtime.LockOSThread()

	if cfg == nil {
		cfg = DefaultSettings()
	}

	window, err := initWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Audio is best-effort: a toy without sound still flashes shapes.
	var sink Sink = NoopSink{}
	audioOK := false
	if audio, err := NewAudioSystem(); err != nil {
		log.Warn("audio init failed, continuing without sound", zap.Error(err))
	} else {
		sink = audio
		audioOK = true
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("BLOOP_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.97, 0.96, 0.93, 1.0) // soft cream canvas

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	rend.SetViewport(fbW, fbH)

	shapes := NewShapeManager(cfg.Toy.MaxShapes, fbW, fbH, splitmix64(seed^0x5A0E))
	particles := NewParticleSystem(cfg.Toy.MaxParticles, fbW, fbH, splitmix64(seed^0xBEAD))
	synth := NewSynthesizer(sink, cfg.Audio.MaxVoices, splitmix64(seed^0x50DA))
	synth.Volume = cfg.Audio.Volume
	synth.Muted = cfg.Audio.Muted
	driver := NewDriver(shapes, particles, synth, rend)
	classifier := NewClassifier(splitmix64(seed ^ 0xC1A5))

	nowMs := func() float64 { return glfw.GetTime() * 1000.0 }

	// cursorFBPos converts the window-space cursor to framebuffer pixels.
	cursorFBPos := func() (float64, float64) {
		cx, cy := window.GetCursorPos()
		winW, winH := window.GetSize()
		w, h := rend.Size()
		if winW <= 0 || winH <= 0 {
			return 0, 0
		}
		return cx * float64(w) / float64(winW), cy * float64(h) / float64(winH)
	}

	pointerHeld := false

	window.SetCharCallback(func(_ *glfw.Window, ch rune) {
		driver.Notify(classifier.ClassifyChar(ch, nowMs()))
	})

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			window.SetShouldClose(true)
			return
		case glfw.KeyF1:
			// Parent controls: F1 pauses, F2 mutes. Plain keys stay toy input.
			if driver.State() == DriverPaused {
				driver.Resume(nowMs())
			} else {
				driver.Pause()
			}
			return
		case glfw.KeyF2:
			synth.Muted = !synth.Muted
			return
		}
		if stim, ok := classifier.ClassifyKey(key, nowMs()); ok {
			driver.Notify(stim)
		}
	})

	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := cursorFBPos()
		switch action {
		case glfw.Press:
			pointerHeld = true
			driver.SetPointer(true, x, y)
			driver.Notify(classifier.ClassifyPointer(button, x, y))
		case glfw.Release:
			pointerHeld = false
			driver.SetPointer(false, x, y)
		}
	})

	window.SetCursorPosCallback(func(_ *glfw.Window, _, _ float64) {
		if pointerHeld {
			x, y := cursorFBPos()
			driver.SetPointer(true, x, y)
		}
	})

	log.Info("engine starting",
		zap.Int("fb_width", fbW), zap.Int("fb_height", fbH),
		zap.Int("max_shapes", cfg.Toy.MaxShapes),
		zap.Int("max_particles", cfg.Toy.MaxParticles),
		zap.Bool("audio", audioOK),
	)

	driver.Start(nowMs())
	for !window.ShouldClose() {
		glfw.PollEvents()

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.SetViewport(fbW, fbH)

		driver.Tick(nowMs())
		window.SwapBuffers()
	}
	driver.Stop()
	log.Info("engine stopped")
	return nil
}
