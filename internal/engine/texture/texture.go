// Package texture decodes images into GPU-uploadable RGBA textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Texture is a decoded image: tightly packed RGBA pixels plus dimensions.
// Rows are stored top to bottom.
type Texture struct {
	Width  uint32
	Height uint32
	Pixels []byte
}

// Solid returns a single-color texture of the given size.
func Solid(width, height uint32, rgba [4]uint8) Texture {
	pixels := make([]byte, int(width)*int(height)*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = rgba[0]
		pixels[i+1] = rgba[1]
		pixels[i+2] = rgba[2]
		pixels[i+3] = rgba[3]
	}
	return Texture{Width: width, Height: height, Pixels: pixels}
}

// Decode decodes image data, using the path's extension to pick the
// decoder. PNG, BMP and TGA are supported.
func Decode(path string, data []byte) (Texture, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = DecodeTGA(data)
	default:
		return Texture{}, fmt.Errorf("unsupported texture format: %s", path)
	}
	if err != nil {
		return Texture{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into a Texture.
func FromImage(img image.Image) Texture {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 {
		converted := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(converted, converted.Bounds(), img, bounds.Min, draw.Src)
		rgba = converted
	}
	return Texture{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Pixels: rgba.Pix,
	}
}
