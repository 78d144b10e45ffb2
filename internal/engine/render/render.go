// Package render draws sprite sheet regions with OpenGL.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/engine/glutil"
	"github.com/Faultbox/spriteforge/internal/engine/shader"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/pkg/math"
	"github.com/Faultbox/spriteforge/pkg/sprite"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec2 aPos;

uniform mat4 uProj;
uniform vec2 uPos;
uniform vec2 uSize;
uniform vec4 uTexRect; // left, bottom, right, top

out vec2 vTexCoord;

void main() {
	vec2 world = uPos + aPos * uSize;
	vTexCoord = mix(uTexRect.xy, uTexRect.zw, aPos);
	gl_Position = uProj * vec4(world, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec4 uTint;

out vec4 fragColor;

void main() {
	fragColor = texture(uTexture, vTexCoord) * uTint;
}
`

// SheetRenderer draws individual sprites as textured quads in a pixel
// coordinate space with the origin at the bottom-left of the viewport.
type SheetRenderer struct {
	program uint32
	vao     uint32
	quad    *glutil.Buffer

	uProj    int32
	uPos     int32
	uSize    int32
	uTexRect int32
	uTexture int32
	uTint    int32
}

// NewSheetRenderer compiles the sprite program and builds the unit quad.
// An OpenGL context must be current.
func NewSheetRenderer() (*SheetRenderer, error) {
	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &SheetRenderer{
		program:  program,
		uProj:    shader.MustGetUniform(program, "uProj"),
		uPos:     shader.MustGetUniform(program, "uPos"),
		uSize:    shader.MustGetUniform(program, "uSize"),
		uTexRect: shader.MustGetUniform(program, "uTexRect"),
		uTexture: shader.MustGetUniform(program, "uTexture"),
		uTint:    shader.GetUniform(program, "uTint"),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Unit quad as a triangle strip, expanded in the vertex shader.
	quad := []float32{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	}
	r.quad = glutil.NewBuffer(gl.ARRAY_BUFFER)
	r.quad.Upload(glutil.AsBytes(quad))
	glutil.Format{Attributes: []glutil.Attribute{glutil.Float32Attr(2)}}.EnableLayout(0)

	gl.BindVertexArray(0)
	return r, nil
}

// Begin prepares a frame: viewport-sized orthographic projection, alpha
// blending and a cleared color buffer.
func (r *SheetRenderer) Begin(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.program)
	proj := math.Ortho(0, float32(width), 0, float32(height), -1, 1)
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())
}

// Draw renders one sprite at x, y (its bottom-left corner, offsets
// applied) with the given tint. Begin must have been called this frame.
func (r *SheetRenderer) Draw(spr sprite.Sprite, textureID uint32, x, y float32, tint [4]float32) {
	gl.Uniform2f(r.uPos, x+spr.Offsets[0], y+spr.Offsets[1])
	gl.Uniform2f(r.uSize, spr.Width, spr.Height)
	gl.Uniform4f(r.uTexRect,
		spr.TexCoords.Left, spr.TexCoords.Bottom,
		spr.TexCoords.Right, spr.TexCoords.Top)
	gl.Uniform4f(r.uTint, tint[0], tint[1], tint[2], tint[3])

	glutil.BindTextures([]glutil.TextureBinding{{Location: r.uTexture, Texture: textureID}})

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Destroy releases the GL resources.
func (r *SheetRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.quad.Delete()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// UploadTexture creates a GL texture from decoded pixel data. Rows are
// flipped during upload so texture coordinate v=1 lands on the image
// top, matching the sheet regions' orientation.
func UploadTexture(t texture.Texture) uint32 {
	flipped := make([]byte, len(t.Pixels))
	rowLen := int(t.Width) * 4
	for row := 0; row < int(t.Height); row++ {
		src := t.Pixels[row*rowLen : (row+1)*rowLen]
		dst := flipped[(int(t.Height)-1-row)*rowLen:]
		copy(dst, src)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(t.Width), int32(t.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(flipped))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Log.Debug("texture uploaded",
		zap.Uint32("id", id),
		zap.Uint32("width", t.Width),
		zap.Uint32("height", t.Height))
	return id
}
