package prefab

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/ecs"
	"github.com/Faultbox/spriteforge/internal/logger"
)

var (
	// ErrSheetNotFound reports a sheet reference with no match in the
	// loaded set at resolve time.
	ErrSheetNotFound = errors.New("sprite sheet reference not found")

	// ErrNotResolved reports an attach attempted before the reference
	// resolved; a protocol violation, never silently defaulted.
	ErrNotResolved = errors.New("sprite sheet handle not resolved")
)

// SpriteRender attaches one sprite of a sheet to an entity.
type SpriteRender struct {
	Sheet        assets.Handle[SpriteSheet]
	SpriteNumber int
}

// SpriteRenderPrefab declares a sprite to attach to an entity. The sheet
// is named by reference into the loaded set, so the declaration does not
// depend on load order.
type SpriteRenderPrefab struct {
	Sheet        *Reference `yaml:"sheet"`
	SpriteNumber int        `yaml:"sprite_number"`

	handle *assets.Handle[SpriteSheet]
}

// LoadSubAssets resolves the sheet reference against the loaded set. It
// has no async sub-loads of its own, so it never reports pending work. A
// missing reference fails without mutating the declaration.
func (p *SpriteRenderPrefab) LoadSubAssets(ctx *LoadContext) (bool, error) {
	if p.Sheet == nil {
		return false, fmt.Errorf("%w: no sheet reference declared", ErrSheetNotFound)
	}
	h, ok := ctx.Loaded.Get(*p.Sheet)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrSheetNotFound, p.Sheet)
	}
	p.handle = &h
	return false, nil
}

// AddToEntity inserts the SpriteRender component for the entity,
// overwriting any existing one. It requires a prior successful
// LoadSubAssets call.
func (p *SpriteRenderPrefab) AddToEntity(e ecs.Entity, renders *ecs.Storage[SpriteRender]) error {
	if p.handle == nil {
		return fmt.Errorf("%w before AddToEntity (sheet: %s, sprite_number: %d)",
			ErrNotResolved, p.Sheet, p.SpriteNumber)
	}
	if err := renders.Insert(e, SpriteRender{Sheet: *p.handle, SpriteNumber: p.SpriteNumber}); err != nil {
		return err
	}
	logger.Log.Debug("sprite render attached",
		zap.Uint32("entity", e.ID),
		zap.Uint32("sheet", p.handle.ID()),
		zap.Int("sprite_number", p.SpriteNumber))
	return nil
}
