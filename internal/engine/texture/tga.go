package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types this decoder handles.
const (
	tgaTypeTrueColor    = 2  // uncompressed true-color
	tgaTypeTrueColorRLE = 10 // RLE compressed true-color
)

var (
	// ErrTruncatedTGA is returned for TGA data shorter than its header claims.
	ErrTruncatedTGA = errors.New("truncated TGA data")
)

// DecodeTGA decodes a TGA image. Only true-color images at 24 or 32 bits
// per pixel are supported, uncompressed or RLE compressed.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, ErrTruncatedTGA
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	depth := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != tgaTypeTrueColor && imageType != tgaTypeTrueColorRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if depth != 24 && depth != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", depth)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, ErrTruncatedTGA
	}
	pixels := data[offset:]
	bpp := depth / 8

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// Bit 5 of the descriptor: rows stored top to bottom.
	topToBottom := descriptor&0x20 != 0

	set := func(idx int, c color.RGBA) {
		x := idx % width
		y := idx / width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetRGBA(x, y, c)
	}
	readPixel := func(at int) (color.RGBA, bool) {
		if at+bpp > len(pixels) {
			return color.RGBA{}, false
		}
		c := color.RGBA{B: pixels[at], G: pixels[at+1], R: pixels[at+2], A: 255}
		if bpp == 4 {
			c.A = pixels[at+3]
		}
		return c, true
	}

	total := width * height
	if imageType == tgaTypeTrueColor {
		if len(pixels) < total*bpp {
			return nil, ErrTruncatedTGA
		}
		for i := 0; i < total; i++ {
			c, _ := readPixel(i * bpp)
			set(i, c)
		}
		return img, nil
	}

	// RLE: each packet is a count byte followed by either one pixel to
	// repeat (high bit set) or count literal pixels.
	pos, idx := 0, 0
	for idx < total && pos < len(pixels) {
		packet := pixels[pos]
		pos++
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			c, ok := readPixel(pos)
			if !ok {
				break
			}
			pos += bpp
			for i := 0; i < count && idx < total; i++ {
				set(idx, c)
				idx++
			}
			continue
		}
		for i := 0; i < count && idx < total; i++ {
			c, ok := readPixel(pos)
			if !ok {
				return img, nil
			}
			pos += bpp
			set(idx, c)
			idx++
		}
	}
	return img, nil
}
