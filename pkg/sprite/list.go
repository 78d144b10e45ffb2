package sprite

import "gopkg.in/yaml.v3"

// SpritePosition is one explicit sprite rectangle in pixel coordinates,
// measured from the top-left corner of the texture.
type SpritePosition struct {
	X      uint32 `yaml:"x"`
	Y      uint32 `yaml:"y"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`

	Offsets        *[2]float32 `yaml:"offsets,omitempty,flow"`
	FlipHorizontal bool        `yaml:"flip_horizontal,omitempty"`
	FlipVertical   bool        `yaml:"flip_vertical,omitempty"`
}

// SpriteList is an explicit, ordered list of sprite rectangles within one
// texture.
type SpriteList struct {
	TextureWidth  uint32           `yaml:"texture_width"`
	TextureHeight uint32           `yaml:"texture_height"`
	Sprites       []SpritePosition `yaml:"sprites"`
}

// UnmarshalYAML accepts either the full mapping form or a bare sequence of
// positions; in the bare form the texture dimensions come from the loaded
// texture at sheet resolution time.
func (l *SpriteList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&l.Sprites)
	}
	type plain SpriteList
	return node.Decode((*plain)(l))
}

// BuildSprites converts every listed position into a Sprite, preserving
// input order.
func (l *SpriteList) BuildSprites() []Sprite {
	sprites := make([]Sprite, 0, len(l.Sprites))
	for _, p := range l.Sprites {
		var offsets [2]float32
		if p.Offsets != nil {
			offsets = *p.Offsets
		}
		sprites = append(sprites, FromPixelValues(
			l.TextureWidth, l.TextureHeight, p.Width, p.Height, p.X, p.Y,
			offsets, p.FlipHorizontal, p.FlipVertical,
		))
	}
	return sprites
}
