package glutil

import "unsafe"

// AsBytes reinterprets a slice of fixed-layout values as its raw bytes,
// without copying. The result aliases v and is only valid while v is.
func AsBytes[T any](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(v[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*size)
}

// SizeOf returns the in-memory size of T in bytes.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
