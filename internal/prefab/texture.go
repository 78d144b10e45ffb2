package prefab

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
)

// ErrEmptyTexture is returned for a texture declaration with no source.
var ErrEmptyTexture = errors.New("texture declaration has no source")

// GeneratedTexture is a procedurally generated solid-color texture, useful
// in tests and placeholder scenes.
type GeneratedTexture struct {
	Width  uint32   `yaml:"width"`
	Height uint32   `yaml:"height"`
	Color  [4]uint8 `yaml:"color,flow"`
}

// TexturePrefab declares the texture a sheet uses: a file within the
// loader's search roots, or generated pixel data. It resolves to a shared
// texture handle during LoadSubAssets and never transitions back.
type TexturePrefab struct {
	File     string
	Generate *GeneratedTexture

	handle *assets.Handle[texture.Texture]
}

// UnmarshalYAML accepts a bare string (file path) or a mapping with a
// `file:` or `generate:` key.
func (p *TexturePrefab) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&p.File)
	}
	var raw struct {
		File     string            `yaml:"file"`
		Generate *GeneratedTexture `yaml:"generate"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if (raw.File == "") == (raw.Generate == nil) {
		return fmt.Errorf("texture must set exactly one of file or generate")
	}
	p.File, p.Generate = raw.File, raw.Generate
	return nil
}

// LoadSubAssets resolves the declaration into a texture handle, reading
// and decoding the file on first call. Returns whether the state changed.
func (p *TexturePrefab) LoadSubAssets(ctx *LoadContext) (bool, error) {
	if p.handle != nil {
		return false, nil
	}

	var tex texture.Texture
	switch {
	case p.Generate != nil:
		tex = texture.Solid(p.Generate.Width, p.Generate.Height, p.Generate.Color)
	case p.File != "":
		data, err := ctx.Loader.Read(p.File)
		if err != nil {
			return false, fmt.Errorf("reading texture: %w", err)
		}
		tex, err = texture.Decode(p.File, data)
		if err != nil {
			return false, err
		}
	default:
		return false, ErrEmptyTexture
	}

	h := ctx.Textures.Load(tex, ctx.Progress)
	p.handle = &h
	return true, nil
}

// Handle returns the resolved texture handle.
func (p *TexturePrefab) Handle() (assets.Handle[texture.Texture], bool) {
	if p.handle == nil {
		return assets.Handle[texture.Texture]{}, false
	}
	return *p.handle, true
}

// MustHandle returns the resolved handle; it panics when the declaration
// has not resolved yet, which means the loading phases ran out of order.
func (p *TexturePrefab) MustHandle() assets.Handle[texture.Texture] {
	if p.handle == nil {
		panic("prefab: texture accessed before LoadSubAssets resolved it")
	}
	return *p.handle
}
