package glutil

import "github.com/go-gl/gl/v4.1-core/gl"

// Attribute describes one vertex attribute: a number of components of a
// GL scalar type, optionally normalized to [0,1] when read as floats.
type Attribute struct {
	Size       int32
	Type       uint32
	Normalized bool
}

// Float32Attr is a convenience for the common float-vector attribute.
func Float32Attr(components int32) Attribute {
	return Attribute{Size: components, Type: gl.FLOAT}
}

func (a Attribute) bytes() int32 {
	var scalar int32
	switch a.Type {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		scalar = 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		scalar = 2
	default:
		scalar = 4
	}
	return a.Size * scalar
}

// Format is one interleaved vertex buffer layout. A non-zero Divisor
// makes every attribute advance per instance instead of per vertex.
type Format struct {
	Attributes []Attribute
	Divisor    uint32
}

// Stride returns the byte size of one vertex (or instance) record.
func (f Format) Stride() int32 {
	var stride int32
	for _, a := range f.Attributes {
		stride += a.bytes()
	}
	return stride
}

// EnableLayout configures the currently bound VAO/VBO pair for this
// format, assigning attribute locations sequentially starting at first.
// It returns the next free location so several buffers can chain their
// layouts.
func (f Format) EnableLayout(first uint32) uint32 {
	stride := f.Stride()
	location := first
	var offset uintptr
	for _, a := range f.Attributes {
		gl.EnableVertexAttribArray(location)
		gl.VertexAttribPointerWithOffset(location, a.Size, a.Type, a.Normalized, stride, offset)
		if f.Divisor != 0 {
			gl.VertexAttribDivisor(location, f.Divisor)
		}
		offset += uintptr(a.bytes())
		location++
	}
	return location
}
