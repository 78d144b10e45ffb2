package glutil

import "github.com/go-gl/gl/v4.1-core/gl"

// TextureBinding pairs a sampler uniform location with the texture to
// expose through it.
type TextureBinding struct {
	Location int32
	Texture  uint32
}

// BindTextures assigns one texture unit per binding, in order, and
// points each sampler uniform at its unit. The program must be in use.
func BindTextures(bindings []TextureBinding) {
	for i, b := range bindings {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, b.Texture)
		gl.Uniform1i(b.Location, int32(i))
	}
}

// BlockBinding pairs a named uniform block with the buffer backing it.
type BlockBinding struct {
	Index  uint32
	Buffer *Buffer
}

// BindBlocks wires one uniform buffer binding point per block, in order.
func BindBlocks(program uint32, blocks []BlockBinding) {
	for i, b := range blocks {
		point := uint32(i)
		gl.UniformBlockBinding(program, b.Index, point)
		gl.BindBufferBase(gl.UNIFORM_BUFFER, point, b.Buffer.ID)
	}
}
