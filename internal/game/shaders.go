package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape vertex shader: screen-space triangles with per-vertex color.
const shapeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const shapeFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Particle vertex shader: point sprites with per-vertex pos/size/color/glyph.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aGlyph;

uniform vec2 uResolution;

out vec4 vColor;
out float vGlyph;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, aSize * 2.0);
    vColor = aColor;
    vGlyph = aGlyph;
}
` + "\x00"

// Particle fragment shader: glyph drawn procedurally from gl_PointCoord.
// Glyph index matches ParticleKind: 0 dot, 1 spark, 2 streak, 3 ring.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
in float vGlyph;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    int glyph = int(vGlyph + 0.5);
    float a = 0.0;
    if (glyph == 1) {
        // Diamond spark.
        float d = (abs(uv.x) + abs(uv.y)) * 2.0;
        a = 1.0 - smoothstep(0.75, 1.0, d);
    } else if (glyph == 2) {
        // Horizontal streak.
        a = (abs(uv.y) < 0.16 ? 1.0 : 0.0) * (1.0 - smoothstep(0.7, 1.0, abs(uv.x) * 2.0));
    } else if (glyph == 3) {
        // Ring.
        float d = length(uv) * 2.0;
        a = smoothstep(0.5, 0.62, d) * (1.0 - smoothstep(0.85, 1.0, d));
    } else {
        // Soft dot.
        float d = length(uv) * 2.0;
        a = 1.0 - smoothstep(0.8, 1.0, d);
    }
    a *= vColor.a;
    if (a < 0.01) discard;
    FragColor = vec4(vColor.rgb, a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
