package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/fredlb/rusty-rays/pkg/renderer"
	"github.com/fredlb/rusty-rays/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene name: 'default' or 'metal'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	spp := flag.Int("spp", 16, "Samples per pixel")
	workers := flag.Int("workers", 4, "Number of render workers")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("out", "output.png", "Output PNG path")
	flag.Parse()

	if err := run(*sceneName, *width, *height, *spp, *workers, *seed, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, height, spp, workers int, seed int64, output string) error {
	s, err := scene.ByName(sceneName)
	if err != nil {
		return err
	}

	// Flag overrides for the scene's native resolution
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}
	cameraConfig := s.Camera
	cameraConfig.AspectRatio = float64(s.Width) / float64(s.Height)

	config := renderer.DefaultConfig()
	config.Width = s.Width
	config.Height = s.Height
	config.SamplesPerPixel = spp
	config.NumWorkers = workers
	config.Seed = seed

	logger := renderer.NewDefaultLogger()
	r := renderer.NewRenderer(s.Spheres, renderer.NewCamera(cameraConfig), config, logger)

	start := time.Now()
	img := r.Render()
	elapsed := time.Since(start)
	logger.Printf("Done! It took %v to complete with %d workers\n", elapsed, workers)

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	logger.Printf("Saved render to %s\n", output)
	return nil
}
