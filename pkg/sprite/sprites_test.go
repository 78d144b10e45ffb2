package sprite

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSpritesDecodeGrid(t *testing.T) {
	var s Sprites
	data := []byte("grid: {texture_width: 400, texture_height: 200, columns: 4, rows: 4}")
	if err := yaml.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Grid == nil || s.List != nil {
		t.Fatalf("expected grid variant, got %+v", s)
	}
	if s.Grid.Columns != 4 || s.Grid.Rows == nil || *s.Grid.Rows != 4 {
		t.Errorf("grid = %+v", s.Grid)
	}
}

func TestSpritesDecodeList(t *testing.T) {
	var s Sprites
	data := []byte("list: [{x: 0, y: 0, width: 8, height: 8}]")
	if err := yaml.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.List == nil || s.Grid != nil {
		t.Fatalf("expected list variant, got %+v", s)
	}
}

func TestSpritesDecodeRejectsAmbiguous(t *testing.T) {
	var s Sprites
	data := []byte("{grid: {columns: 1}, list: []}")
	if err := yaml.Unmarshal(data, &s); err == nil {
		t.Error("expected error for block with both grid and list")
	}
	if err := yaml.Unmarshal([]byte("{}"), &s); err == nil {
		t.Error("expected error for empty block")
	}
}

func TestSpritesBuildFallbackDimensions(t *testing.T) {
	var s Sprites
	data := []byte("grid: {columns: 4, rows: 4}")
	if err := yaml.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	sprites, err := s.BuildSprites(400, 200)
	if err != nil {
		t.Fatalf("BuildSprites: %v", err)
	}
	if len(sprites) != 16 {
		t.Fatalf("expected 16 sprites, got %d", len(sprites))
	}
	if sprites[0].Width != 100 || sprites[0].Height != 50 {
		t.Errorf("sprite size %vx%v, want 100x50", sprites[0].Width, sprites[0].Height)
	}
}

func TestSpritesBuildEmpty(t *testing.T) {
	var s Sprites
	if _, err := s.BuildSprites(1, 1); !errors.Is(err, ErrEmptySprites) {
		t.Errorf("expected ErrEmptySprites, got %v", err)
	}
}

func TestSpritesMarshalRoundTrip(t *testing.T) {
	s := Sprites{Grid: &SpriteGrid{TextureWidth: 64, TextureHeight: 64, Columns: 2}}
	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Sprites
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Grid == nil || back.Grid.Columns != 2 {
		t.Errorf("round trip lost grid: %+v", back)
	}
}
