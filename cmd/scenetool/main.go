// scenetool is a CLI utility for inspecting and validating sprite scene files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/spriteforge/internal/assets"
	"github.com/Faultbox/spriteforge/internal/prefab"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "regions":
		cmdRegions(args)
	case "validate", "check":
		cmdValidate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`scenetool - sprite scene file utility

Usage:
  scenetool <command> [options]

Commands:
  info <scene.yaml>               Show scene summary (entities, sheets, sprites)
  regions <scene.yaml> [sheet]    Print the texture regions of a sheet
                                  (by index or name, default 0)
  validate <scene.yaml>           Load the scene and report every problem

Options:
  -root <dir>   Asset search root for texture files (default: scene file's dir)

Examples:
  scenetool info scenes/arena.yaml
  scenetool regions scenes/arena.yaml hero
  scenetool validate -root assets scenes/arena.yaml`)
}

// loadScene parses the scene file and resolves all its sub-assets.
func loadScene(fs *flag.FlagSet, root string) (*prefab.Scene, *prefab.LoadContext) {
	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scene, err := prefab.ParseScene(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if root == "" {
		root = filepath.Dir(path)
	}
	loader := assets.NewLoader()
	loader.AddRoot(root)

	ctx := prefab.NewLoadContext(loader)
	if err := scene.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	return scene, ctx
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	root := fs.String("root", "", "asset search root")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: scenetool info <scene.yaml>")
		os.Exit(1)
	}

	scene, ctx := loadScene(fs, *root)

	fmt.Printf("Scene:    %s\n", fs.Arg(0))
	fmt.Printf("Entities: %d\n", len(scene.Entities))
	fmt.Printf("Sheets:   %d\n", ctx.Loaded.Len())
	fmt.Println()

	for i := 0; i < ctx.Loaded.Len(); i++ {
		h, _ := ctx.Loaded.Get(prefab.ByIndex(i))
		sheet, ok := h.Get()
		if !ok {
			continue
		}
		tex, _ := sheet.Texture.Get()
		fmt.Printf("  sheet %d: %d sprites, texture %dx%d\n",
			i, len(sheet.Sprites), tex.Width, tex.Height)
	}
}

func cmdRegions(args []string) {
	fs := flag.NewFlagSet("regions", flag.ExitOnError)
	root := fs.String("root", "", "asset search root")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: scenetool regions <scene.yaml> [sheet]")
		os.Exit(1)
	}

	_, ctx := loadScene(fs, *root)

	ref := prefab.ByIndex(0)
	if fs.NArg() > 1 {
		if i, err := strconv.Atoi(fs.Arg(1)); err == nil {
			ref = prefab.ByIndex(i)
		} else {
			ref = prefab.ByName(fs.Arg(1))
		}
	}

	h, ok := ctx.Loaded.Get(ref)
	if !ok {
		fmt.Fprintf(os.Stderr, "Sheet not found: %s\n", ref.String())
		os.Exit(1)
	}
	sheet, _ := h.Get()

	fmt.Printf("%-6s %-8s %-8s %-12s %s\n", "sprite", "width", "height", "offsets", "region (l r t b)")
	for i, spr := range sheet.Sprites {
		fmt.Printf("%-6d %-8.1f %-8.1f %-5.1f,%-6.1f %.4f %.4f %.4f %.4f\n",
			i, spr.Width, spr.Height,
			spr.Offsets[0], spr.Offsets[1],
			spr.TexCoords.Left, spr.TexCoords.Right,
			spr.TexCoords.Top, spr.TexCoords.Bottom)
	}
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	root := fs.String("root", "", "asset search root")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: scenetool validate <scene.yaml>")
		os.Exit(1)
	}

	scene, ctx := loadScene(fs, *root)

	// Loading already proved every reference resolves; what remains is
	// range-checking the declared sprite numbers.
	problems := 0
	for i := range scene.Entities {
		render := scene.Entities[i].Render
		if render == nil || render.Sheet == nil {
			continue
		}
		h, ok := ctx.Loaded.Get(*render.Sheet)
		if !ok {
			continue
		}
		sheet, _ := h.Get()
		if render.SpriteNumber < 0 || render.SpriteNumber >= len(sheet.Sprites) {
			fmt.Fprintf(os.Stderr, "entity %d: sprite_number %d out of range (sheet %s has %d sprites)\n",
				i, render.SpriteNumber, render.Sheet.String(), len(sheet.Sprites))
			problems++
		}
	}

	if problems > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Printf("OK: %d entities, %d sheets\n", len(scene.Entities), ctx.Loaded.Len())
}
