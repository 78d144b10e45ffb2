package prefab

import "github.com/Faultbox/spriteforge/internal/ecs"

// SpriteScenePrefab is one scene entity's declaration: an optional sheet
// to load, an optional sprite render to attach and an optional transform.
type SpriteScenePrefab struct {
	Sheet     *SpriteSheetPrefab  `yaml:"sheet,omitempty"`
	Render    *SpriteRenderPrefab `yaml:"render,omitempty"`
	Transform *ecs.Transform      `yaml:"transform,omitempty"`

	published bool
}

// LoadSubAssets resolves the sheet first and publishes its handle to the
// loaded set, so render references later in the same pass (this entity's
// included) can already see it. The handle is published exactly once even
// when the driver re-enters on a later pass, keeping set indices stable.
func (p *SpriteScenePrefab) LoadSubAssets(ctx *LoadContext) (bool, error) {
	changed := false
	if p.Sheet != nil {
		ch, err := p.Sheet.LoadSubAssets(ctx)
		if err != nil {
			return false, err
		}
		changed = ch
		if h, ok := p.Sheet.Handle(); ok && !p.published {
			ctx.Loaded.Push(p.Sheet.Name, h)
			p.published = true
		}
	}
	if p.Render != nil {
		if _, err := p.Render.LoadSubAssets(ctx); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// AddToEntity attaches the render component and the transform, in that
// order; either, both, or neither may be present.
func (p *SpriteScenePrefab) AddToEntity(e ecs.Entity, renders *ecs.Storage[SpriteRender], transforms *ecs.Storage[ecs.Transform]) error {
	if p.Render != nil {
		if err := p.Render.AddToEntity(e, renders); err != nil {
			return err
		}
	}
	if p.Transform != nil {
		if err := transforms.Insert(e, *p.Transform); err != nil {
			return err
		}
	}
	return nil
}
