package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'glass' or 'shadow'")
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 768, "Image height in pixels")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	outDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Four-sphere reference scene with a floor plane")
		fmt.Println("  glass   - Refraction-heavy scene with a large glass sphere")
		fmt.Println("  shadow  - Single light with an occluder casting a hard shadow")
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene_type>/render_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	settings := renderer.DefaultSettings()
	settings.Width = *width
	settings.Height = *height

	fmt.Printf("Rendering %s scene at %dx%d...\n", *sceneType, *width, *height)

	fb, stats := renderer.Render(selectedScene, settings, renderer.Options{Workers: *workers})

	fmt.Printf("Render completed in %v (%d pixels, %d workers)\n",
		stats.Elapsed, stats.TotalPixels, stats.Workers)

	sceneDir := filepath.Join(*outDir, *sceneType)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(sceneDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene, or returns an error for unknown names
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "glass":
		return scene.NewGlassScene(), nil
	case "shadow":
		return scene.NewShadowScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}
