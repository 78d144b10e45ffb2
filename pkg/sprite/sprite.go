// Package sprite describes sprite sheets: where each sprite sits inside a
// texture and how large it is on screen. Sheets are declared either as a
// regular grid (SpriteGrid) or as an explicit list of pixel rectangles
// (SpriteList); both expand into the same Sprite representation.
package sprite

// TextureRegion is a normalized rectangle within a texture, origin at the
// bottom-left corner. Top > Bottom for a non-degenerate region.
type TextureRegion struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// Sprite is one sprite's pixel dimensions, pivot offset and location within
// its sheet texture. Immutable once built.
type Sprite struct {
	Width     float32
	Height    float32
	Offsets   [2]float32
	TexCoords TextureRegion
}

// FromPixelValues builds a Sprite from pixel-space values. (px, py) is the
// top-left corner of the sprite measured from the top-left of the texture;
// texture coordinates are flipped vertically so the top row of the image
// maps to 1.0.
func FromPixelValues(texW, texH, spriteW, spriteH, px, py uint32, offsets [2]float32, flipH, flipV bool) Sprite {
	tw, th := float32(texW), float32(texH)
	left := float32(px) / tw
	right := float32(px+spriteW) / tw
	top := 1 - float32(py)/th
	bottom := 1 - float32(py+spriteH)/th
	if flipH {
		left, right = right, left
	}
	if flipV {
		top, bottom = bottom, top
	}
	return Sprite{
		Width:   float32(spriteW),
		Height:  float32(spriteH),
		Offsets: offsets,
		TexCoords: TextureRegion{
			Left:   left,
			Right:  right,
			Top:    top,
			Bottom: bottom,
		},
	}
}
