package sprite

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrEmptySprites is returned when a sprites block sets neither a grid nor
// a list, or both.
var ErrEmptySprites = errors.New("sprites block must set exactly one of grid or list")

// Sprites is one block of sprite definitions in a sheet declaration:
// either a grid or an explicit list. Exactly one of the two is set.
type Sprites struct {
	Grid *SpriteGrid
	List *SpriteList
}

// UnmarshalYAML decodes the one-key `grid:` / `list:` form.
func (s *Sprites) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Grid *SpriteGrid `yaml:"grid"`
		List *SpriteList `yaml:"list"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if (raw.Grid == nil) == (raw.List == nil) {
		return ErrEmptySprites
	}
	s.Grid, s.List = raw.Grid, raw.List
	return nil
}

// MarshalYAML emits the same one-key form UnmarshalYAML accepts.
func (s Sprites) MarshalYAML() (interface{}, error) {
	switch {
	case s.Grid != nil:
		return map[string]*SpriteGrid{"grid": s.Grid}, nil
	case s.List != nil:
		return map[string]*SpriteList{"list": s.List}, nil
	}
	return nil, ErrEmptySprites
}

// BuildSprites expands the block into sprites. texW and texH are the
// owning texture's pixel dimensions, used for any dimension the block does
// not carry itself.
func (s *Sprites) BuildSprites(texW, texH uint32) ([]Sprite, error) {
	switch {
	case s.Grid != nil:
		g := *s.Grid
		if g.TextureWidth == 0 {
			g.TextureWidth = texW
		}
		if g.TextureHeight == 0 {
			g.TextureHeight = texH
		}
		return g.BuildSprites()
	case s.List != nil:
		l := *s.List
		if l.TextureWidth == 0 {
			l.TextureWidth = texW
		}
		if l.TextureHeight == 0 {
			l.TextureHeight = texH
		}
		return l.BuildSprites(), nil
	}
	return nil, ErrEmptySprites
}
