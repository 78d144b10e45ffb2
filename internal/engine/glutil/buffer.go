// Package glutil provides small OpenGL helpers shared by render passes:
// growable GPU buffers, vertex layout setup, byte packing and binding
// tables for textures and uniform blocks.
package glutil

import (
	"math/bits"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// NextPowerOfTwo returns the smallest power of two >= n. Zero maps to
// zero so empty uploads never allocate.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}

// AlignSize rounds size up to the given alignment, which must be a power
// of two. Uniform block offsets typically need 256-byte alignment.
func AlignSize(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// Buffer is a GPU buffer that grows in power-of-two steps, so steady
// per-frame uploads settle on one allocation instead of churning.
type Buffer struct {
	ID     uint32
	Target uint32
	Size   int
}

// NewBuffer creates an empty buffer for the given target
// (gl.ARRAY_BUFFER, gl.UNIFORM_BUFFER, ...).
func NewBuffer(target uint32) *Buffer {
	b := &Buffer{Target: target}
	gl.GenBuffers(1, &b.ID)
	return b
}

// EnsureCapacity reallocates the buffer storage when size exceeds the
// current capacity, growing to the next power of two. It reports whether
// a reallocation happened, since that invalidates previous contents.
func (b *Buffer) EnsureCapacity(size int) bool {
	if size <= b.Size {
		return false
	}
	b.Size = NextPowerOfTwo(size)
	gl.BindBuffer(b.Target, b.ID)
	gl.BufferData(b.Target, b.Size, nil, gl.DYNAMIC_DRAW)
	return true
}

// Upload copies data into the buffer, growing it first when needed.
func (b *Buffer) Upload(data []byte) {
	b.EnsureCapacity(len(data))
	gl.BindBuffer(b.Target, b.ID)
	if len(data) > 0 {
		gl.BufferSubData(b.Target, 0, len(data), gl.Ptr(data))
	}
}

// Delete releases the GPU storage. The buffer must not be used after.
func (b *Buffer) Delete() {
	if b.ID != 0 {
		gl.DeleteBuffers(1, &b.ID)
		b.ID = 0
		b.Size = 0
	}
}
