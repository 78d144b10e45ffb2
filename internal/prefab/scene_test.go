package prefab

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/ecs"
)

const sceneDoc = `
entities:
  - sheet:
      name: hero
      texture:
        generate: {width: 64, height: 32, color: [255, 0, 0, 255]}
      sprites:
        - grid:
            texture_width: 64
            texture_height: 32
            columns: 2
            rows: 2
    render:
      sheet: hero
      sprite_number: 1
    transform:
      translation: [10, 20, 0]
  - render:
      sheet: 0
      sprite_number: 3
`

func TestSceneLoadAndSpawn(t *testing.T) {
	scene, err := ParseScene([]byte(sceneDoc))
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	if len(scene.Entities) != 2 {
		t.Fatalf("parsed %d entities, want 2", len(scene.Entities))
	}

	ctx := testContext()
	if err := scene.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ctx.Loaded.Len() != 1 {
		t.Fatalf("loaded set has %d sheets, want 1", ctx.Loaded.Len())
	}
	sheetHandle, ok := ctx.Loaded.Get(ByName("hero"))
	if !ok {
		t.Fatal("sheet not reachable by name")
	}
	sheet, _ := sheetHandle.Get()
	if len(sheet.Sprites) != 4 {
		t.Errorf("2x2 grid built %d sprites, want 4", len(sheet.Sprites))
	}

	w := ecs.NewWorld()
	renders := ecs.NewStorage[SpriteRender](w)
	transforms := ecs.NewStorage[ecs.Transform](w)
	entities, err := scene.Spawn(w, renders, transforms)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("spawned %d entities, want 2", len(entities))
	}

	// Entity 0 referenced its own sheet by name within the same pass.
	r0, ok := renders.Get(entities[0])
	if !ok || r0.Sheet != sheetHandle || r0.SpriteNumber != 1 {
		t.Errorf("entity 0 render = %+v (ok=%v)", r0, ok)
	}
	tr, ok := transforms.Get(entities[0])
	if !ok || tr.Translation.X != 10 || tr.Translation.Y != 20 {
		t.Errorf("entity 0 transform = %+v (ok=%v)", tr, ok)
	}

	// Entity 1 referenced the same sheet by index.
	r1, ok := renders.Get(entities[1])
	if !ok || r1.Sheet != sheetHandle || r1.SpriteNumber != 3 {
		t.Errorf("entity 1 render = %+v (ok=%v)", r1, ok)
	}
}

func TestSceneLoadIdempotent(t *testing.T) {
	scene, err := ParseScene([]byte(sceneDoc))
	if err != nil {
		t.Fatal(err)
	}
	ctx := testContext()
	if err := scene.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if err := scene.Load(ctx); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if ctx.Loaded.Len() != 1 {
		t.Errorf("loaded set has %d sheets after reload, want 1", ctx.Loaded.Len())
	}
	if ctx.Sheets.Len() != 1 {
		t.Errorf("sheet storage has %d entries after reload, want 1", ctx.Sheets.Len())
	}
}

func TestSceneLoadMissingReference(t *testing.T) {
	scene, err := ParseScene([]byte(`
entities:
  - render:
      sheet: villain
      sprite_number: 0
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := scene.Load(testContext()); !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestSceneLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hero.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	scene, err := ParseScene([]byte(`
entities:
  - sheet:
      texture: hero.png
      sprites:
        - grid:
            columns: 4
            cell_size: [2, 2]
`))
	if err != nil {
		t.Fatal(err)
	}

	loader := assets.NewLoader()
	loader.AddRoot(dir)
	ctx := NewLoadContext(loader)
	if err := scene.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	h, ok := ctx.Loaded.Get(ByIndex(0))
	if !ok {
		t.Fatal("sheet not in loaded set")
	}
	sheet, _ := h.Get()
	// Texture is 8x8, cells 2x2: 4 columns by 4 derived rows.
	if len(sheet.Sprites) != 16 {
		t.Errorf("built %d sprites, want 16", len(sheet.Sprites))
	}
	tex, ok := sheet.Texture.Get()
	if !ok || tex.Width != 8 || tex.Height != 8 {
		t.Errorf("texture = %dx%d (ok=%v), want 8x8", tex.Width, tex.Height, ok)
	}
}

func TestTexturePrefabDecode(t *testing.T) {
	var scalar TexturePrefab
	if err := yaml.Unmarshal([]byte(`"sheets/hero.png"`), &scalar); err != nil {
		t.Fatalf("scalar form: %v", err)
	}
	if scalar.File != "sheets/hero.png" || scalar.Generate != nil {
		t.Errorf("scalar form decoded to %+v", scalar)
	}

	var mapped TexturePrefab
	if err := yaml.Unmarshal([]byte(`generate: {width: 2, height: 2, color: [0, 0, 0, 255]}`), &mapped); err != nil {
		t.Fatalf("map form: %v", err)
	}
	if mapped.Generate == nil || mapped.Generate.Width != 2 {
		t.Errorf("map form decoded to %+v", mapped)
	}

	for _, doc := range []string{
		"{}",
		"file: a.png\ngenerate: {width: 1, height: 1, color: [0, 0, 0, 0]}",
	} {
		var p TexturePrefab
		if err := yaml.Unmarshal([]byte(doc), &p); err == nil {
			t.Errorf("decoding %q succeeded, want exactly-one error", doc)
		}
	}
}

func TestTexturePrefabEmpty(t *testing.T) {
	p := TexturePrefab{}
	if _, err := p.LoadSubAssets(testContext()); !errors.Is(err, ErrEmptyTexture) {
		t.Errorf("expected ErrEmptyTexture, got %v", err)
	}
}

func TestGeneratedTextureDefaultColor(t *testing.T) {
	// Generated textures default to transparent black when no color is set.
	p := TexturePrefab{Generate: &GeneratedTexture{Width: 1, Height: 1}}
	if _, err := p.LoadSubAssets(testContext()); err != nil {
		t.Fatal(err)
	}
	tex, _ := p.MustHandle().Get()
	if len(tex.Pixels) != 4 {
		t.Fatalf("1x1 texture has %d bytes", len(tex.Pixels))
	}
	for i, b := range tex.Pixels {
		if b != 0 {
			t.Errorf("pixel byte %d = %d, want 0", i, b)
		}
	}
}
