package game

// Surface is the 2D drawing boundary the engine renders into. Origin is
// top-left, units are pixels. Buffers use the formats produced by
// ShapeManager.RenderData and ParticleSystem.RenderData.
type Surface interface {
	Size() (int, int)
	Clear()
	DrawSprites(buf []float32)   // [x,y,size,r,g,b,a,glyph] * N points
	DrawTriangles(buf []float32) // [x,y,r,g,b,a] * 3N vertices
}

type DriverState uint8

const (
	DriverStopped DriverState = iota
	DriverRunning
	DriverPaused
)

// Driver runs the frame loop body. The host scheduler calls Tick once per
// frame; everything that mutates entity collections happens inside Tick,
// so input handlers only enqueue. Ticks arriving while stopped or paused
// are no-ops, which makes cancellation race-free against an in-flight
// scheduled frame.
type Driver struct {
	state    DriverState
	lastTick float64 // ms, valid while running

	shapes    *ShapeManager
	particles *ParticleSystem
	synth     *Synthesizer
	surface   Surface

	queue []Stimulus

	pointerActive      bool
	pointerX, pointerY float64

	w, h int

	spriteBuf []float32
	triBuf    []float32
}

func NewDriver(shapes *ShapeManager, particles *ParticleSystem, synth *Synthesizer, surface Surface) *Driver {
	return &Driver{
		shapes:    shapes,
		particles: particles,
		synth:     synth,
		surface:   surface,
	}
}

func (d *Driver) State() DriverState { return d.state }

func (d *Driver) Start(now float64) {
	if d.state != DriverStopped {
		return
	}
	d.state = DriverRunning
	d.lastTick = now
}

func (d *Driver) Pause() {
	if d.state == DriverRunning {
		d.state = DriverPaused
	}
}

// Resume restarts time from now: the first active frame after a pause
// sees a near-zero dt, never the paused interval.
func (d *Driver) Resume(now float64) {
	if d.state != DriverPaused {
		return
	}
	d.state = DriverRunning
	d.lastTick = now
}

// Stop halts the loop. Any tick already scheduled by the host becomes a
// no-op once this returns.
func (d *Driver) Stop() {
	d.state = DriverStopped
	d.queue = d.queue[:0]
	d.pointerActive = false
}

// Notify enqueues a stimulus for the next tick. Never mutates entity
// collections directly; the host may deliver input mid-iteration. The
// queue is capped so input mashed during a pause can't pile up without
// bound before the next tick drains it.
func (d *Driver) Notify(stim Stimulus) {
	if d.state == DriverStopped || len(d.queue) >= StimQueueMax {
		return
	}
	d.queue = append(d.queue, stim)
}

// SetPointer updates the continuous-emission pointer state.
func (d *Driver) SetPointer(active bool, x, y float64) {
	d.pointerActive = active
	d.pointerX = x
	d.pointerY = y
}

// Tick runs one frame: drain input, advance entities, fire due sounds,
// render particles behind shapes.
func (d *Driver) Tick(now float64) {
	if d.state != DriverRunning {
		return
	}
	dt := now - d.lastTick
	d.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDt {
		dt = MaxFrameDt
	}

	if w, h := d.surface.Size(); w != d.w || h != d.h {
		d.w, d.h = w, h
		d.shapes.Resize(w, h)
		d.particles.Resize(w, h)
	}

	for _, stim := range d.queue {
		if stim.Category == StimPointer {
			d.particles.Spawn(stim)
		} else {
			d.shapes.Spawn(stim)
		}
		d.synth.Play(stim, now)
	}
	d.queue = d.queue[:0]

	d.particles.EmitContinuous(dt, d.pointerActive, d.pointerX, d.pointerY)
	d.shapes.Update(dt)
	d.particles.Update(dt)
	d.synth.Update(now)

	d.surface.Clear()
	d.spriteBuf = d.particles.RenderData(d.spriteBuf[:0])
	d.surface.DrawSprites(d.spriteBuf)
	d.triBuf = d.shapes.RenderData(d.triBuf[:0])
	d.surface.DrawTriangles(d.triBuf)
}
