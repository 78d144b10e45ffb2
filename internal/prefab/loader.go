package prefab

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/ecs"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/internal/logger"
)

// ErrLoadStalled is returned when the loading fixpoint does not settle
// within the pass bound, which means the declarations can never resolve.
var ErrLoadStalled = errors.New("scene loading did not settle")

// maxLoadPasses bounds the fixpoint loop. A well-formed scene settles in
// two passes (one doing work, one confirming quiescence).
const maxLoadPasses = 16

// LoadContext carries the collaborators one loading session shares: the
// file loader, asset storages, progress tracking and the loaded-sheet
// registry. A fresh context starts a fresh session.
type LoadContext struct {
	Loader   *assets.Loader
	Textures *assets.Storage[texture.Texture]
	Sheets   *assets.Storage[SpriteSheet]
	Loaded   *LoadedSet
	Progress *assets.ProgressCounter
}

// NewLoadContext creates a loading session over the given file loader.
func NewLoadContext(loader *assets.Loader) *LoadContext {
	return &LoadContext{
		Loader:   loader,
		Textures: assets.NewStorage[texture.Texture](),
		Sheets:   assets.NewStorage[SpriteSheet](),
		Loaded:   &LoadedSet{},
		Progress: &assets.ProgressCounter{},
	}
}

// Scene is a parsed scene file: one prefab per entity to spawn.
type Scene struct {
	Entities []SpriteScenePrefab `yaml:"entities"`
}

// ParseScene decodes a scene declaration file.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// Load runs the first prefab phase to fixpoint: sub-assets are resolved
// pass by pass until no declaration reports further work and all tracked
// loads settled. Afterwards the loaded set holds every declared sheet.
func (s *Scene) Load(ctx *LoadContext) error {
	for pass := 1; pass <= maxLoadPasses; pass++ {
		pending := false
		for i := range s.Entities {
			changed, err := s.Entities[i].LoadSubAssets(ctx)
			if err != nil {
				return fmt.Errorf("entity %d: %w", i, err)
			}
			pending = pending || changed
		}
		if !pending && ctx.Progress.Complete() {
			logger.Log.Debug("scene loaded",
				zap.Int("passes", pass),
				zap.Int("entities", len(s.Entities)),
				zap.Int("sheets", ctx.Loaded.Len()))
			return nil
		}
	}
	return fmt.Errorf("%w after %d passes", ErrLoadStalled, maxLoadPasses)
}

// Spawn runs the second phase: creates one entity per declaration and
// attaches its components. Load must have completed first.
func (s *Scene) Spawn(w *ecs.World, renders *ecs.Storage[SpriteRender], transforms *ecs.Storage[ecs.Transform]) ([]ecs.Entity, error) {
	entities := make([]ecs.Entity, 0, len(s.Entities))
	for i := range s.Entities {
		e := w.Create()
		if err := s.Entities[i].AddToEntity(e, renders, transforms); err != nil {
			w.Destroy(e)
			return entities, fmt.Errorf("entity %d: %w", i, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}
