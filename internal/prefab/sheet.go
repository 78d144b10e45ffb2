package prefab

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/pkg/sprite"
)

// SpriteSheet pairs a texture with the sprites cut out of it. It is the
// value registered with the sheet storage when a declaration resolves.
type SpriteSheet struct {
	Texture assets.Handle[texture.Texture]
	Sprites []sprite.Sprite
}

// SpriteSheetPrefab declares a sprite sheet. It starts as a raw definition
// and resolves exactly once into a shared handle during LoadSubAssets; it
// never transitions back. Loading a sheet adds nothing to any entity; use
// SpriteScenePrefab to also attach a sprite render.
type SpriteSheetPrefab struct {
	Texture TexturePrefab    `yaml:"texture"`
	Sprites []sprite.Sprites `yaml:"sprites"`
	Name    string           `yaml:"name,omitempty"`

	handle *assets.Handle[SpriteSheet]
}

// LoadSubAssets loads the texture, builds every declared sprite block and
// registers the assembled sheet, resolving the declaration to a handle.
// Returns whether the state changed so the driver can detect that work
// happened this pass.
func (p *SpriteSheetPrefab) LoadSubAssets(ctx *LoadContext) (bool, error) {
	if p.handle != nil {
		return false, nil
	}

	if _, err := p.Texture.LoadSubAssets(ctx); err != nil {
		return false, fmt.Errorf("sheet texture: %w", err)
	}
	th := p.Texture.MustHandle()
	tex, _ := th.Get()

	var sprites []sprite.Sprite
	for i := range p.Sprites {
		built, err := p.Sprites[i].BuildSprites(tex.Width, tex.Height)
		if err != nil {
			return false, fmt.Errorf("sprites block %d: %w", i, err)
		}
		sprites = append(sprites, built...)
	}

	h := ctx.Sheets.Load(SpriteSheet{Texture: th, Sprites: sprites}, ctx.Progress)
	p.handle = &h
	logger.Log.Debug("sprite sheet resolved",
		zap.String("name", p.Name),
		zap.Uint32("sheet", h.ID()),
		zap.Int("sprites", len(sprites)))
	return true, nil
}

// Handle returns the resolved sheet handle.
func (p *SpriteSheetPrefab) Handle() (assets.Handle[SpriteSheet], bool) {
	if p.handle == nil {
		return assets.Handle[SpriteSheet]{}, false
	}
	return *p.handle, true
}

// MustHandle returns the resolved handle; it panics when the declaration
// has not resolved yet. Reaching the panic means the two loading phases
// ran out of order.
func (p *SpriteSheetPrefab) MustHandle() assets.Handle[SpriteSheet] {
	if p.handle == nil {
		panic("prefab: sprite sheet accessed before LoadSubAssets resolved it")
	}
	return *p.handle
}
