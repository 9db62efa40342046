package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

// Renderer is the GL-backed Surface: one triangle program for shape
// geometry, one point-sprite program for particles. Both stream their
// vertex buffers each frame.
type Renderer struct {
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32
	shURes    int32

	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spURes     int32

	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{shapeProg: shapeProg, spriteProg: spriteProg}

	// Shape VAO/VBO: streaming triangles, 6 floats per vertex (pos + rgba).
	var shVAO, shVBO uint32
	gl.GenVertexArrays(1, &shVAO)
	gl.GenBuffers(1, &shVBO)
	gl.BindVertexArray(shVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, shVBO)
	shStride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, shStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, shStride, glOffset(2*4))
	r.shapeVAO = shVAO
	r.shapeVBO = shVBO

	gl.UseProgram(shapeProg)
	r.shURes = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))

	// Sprite VAO/VBO: 8 floats per point (pos, size, rgba, glyph).
	var spVAO, spVBO uint32
	gl.GenVertexArrays(1, &spVAO)
	gl.GenBuffers(1, &spVBO)
	gl.BindVertexArray(spVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, spVBO)
	// Initial allocation sized for the default population; DrawSprites
	// re-issues BufferData each frame, so larger configured caps still fit.
	spStride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticles*int(spStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, spStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, spStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, spStride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, spStride, glOffset(7*4))
	r.spriteVAO = spVAO
	r.spriteVBO = spVBO

	gl.UseProgram(spriteProg)
	r.spURes = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// SetViewport records the framebuffer size for this frame.
func (r *Renderer) SetViewport(fbW, fbH int) {
	r.fbW = fbW
	r.fbH = fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

func (r *Renderer) Size() (int, int) { return r.fbW, r.fbH }

func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTriangles renders shape geometry: [x, y, r, g, b, a] per vertex.
func (r *Renderer) DrawTriangles(buf []float32) {
	if len(buf) < 18 {
		return
	}
	count := len(buf) / 6

	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	gl.Uniform2f(r.shURes, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawSprites renders particle points: [x, y, size, r, g, b, a, glyph] per sprite.
func (r *Renderer) DrawSprites(buf []float32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.spURes, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
