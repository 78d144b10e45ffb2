// Package main is the entry point for the sprite scene viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/config"
	"github.com/Faultbox/spriteforge/internal/ecs"
	"github.com/Faultbox/spriteforge/internal/engine/render"
	"github.com/Faultbox/spriteforge/internal/engine/texture"
	"github.com/Faultbox/spriteforge/internal/engine/window"
	"github.com/Faultbox/spriteforge/internal/logger"
	"github.com/Faultbox/spriteforge/internal/prefab"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	scenePath := flag.String("scene", "", "scene file to view (required)")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: sceneview -scene <scene.yaml> [-config <config.yaml>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *scenePath); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, scenePath string) error {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("reading scene: %w", err)
	}
	scene, err := prefab.ParseScene(data)
	if err != nil {
		return err
	}

	loader := assets.NewLoader()
	for _, root := range cfg.Assets.Roots {
		loader.AddRoot(root)
	}

	ctx := prefab.NewLoadContext(loader)
	if err := scene.Load(ctx); err != nil {
		return fmt.Errorf("loading scene: %w", err)
	}

	world := ecs.NewWorld()
	renders := ecs.NewStorage[prefab.SpriteRender](world)
	transforms := ecs.NewStorage[ecs.Transform](world)
	entities, err := scene.Spawn(world, renders, transforms)
	if err != nil {
		return fmt.Errorf("spawning scene: %w", err)
	}
	logger.Info("scene spawned",
		zap.String("scene", scenePath),
		zap.Int("entities", len(entities)),
		zap.Int("sheets", ctx.Loaded.Len()))

	win, err := window.New(window.Config{
		Title:  "sceneview - " + scenePath,
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	renderer, err := render.NewSheetRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	// Every sheet's texture goes to the GPU once, keyed by its handle.
	textures := make(map[assets.Handle[texture.Texture]]uint32)
	for i := 0; i < ctx.Loaded.Len(); i++ {
		h, _ := ctx.Loaded.Get(prefab.ByIndex(i))
		sheet, ok := h.Get()
		if !ok {
			continue
		}
		if _, done := textures[sheet.Texture]; done {
			continue
		}
		tex, ok := sheet.Texture.Get()
		if !ok {
			continue
		}
		textures[sheet.Texture] = render.UploadTexture(tex)
	}
	defer func() {
		for _, id := range textures {
			gl.DeleteTextures(1, &id)
		}
	}()

	scale := cfg.Viewer.Scale
	if scale <= 0 {
		scale = 1
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		width, height := win.Size()
		renderer.Begin(width, height)

		for _, e := range entities {
			sr, ok := renders.Get(e)
			if !ok {
				continue
			}
			sheet, ok := sr.Sheet.Get()
			if !ok || sr.SpriteNumber < 0 || sr.SpriteNumber >= len(sheet.Sprites) {
				continue
			}
			texID, ok := textures[sheet.Texture]
			if !ok {
				continue
			}

			var x, y float32
			if tr, ok := transforms.Get(e); ok {
				x, y = tr.Translation.X*scale, tr.Translation.Y*scale
			}
			spr := sheet.Sprites[sr.SpriteNumber]
			spr.Width *= scale
			spr.Height *= scale
			spr.Offsets[0] *= scale
			spr.Offsets[1] *= scale
			renderer.Draw(spr, texID, x, y, [4]float32{1, 1, 1, 1})
		}

		win.SwapBuffers()
	}
}
