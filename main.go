package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mcastro/go-simple-raytracer/pkg/renderer"
	"github.com/mcastro/go-simple-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'mirror'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	maxDepth := flag.Int("depth", 3, "Maximum reflection recursion depth")
	workers := flag.Int("workers", 1, "Render workers (0 = one per CPU)")
	output := flag.String("output", "output.ppm", "Output file path")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Simple Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Mirror sphere, two matte spheres and a blue ground plane")
		fmt.Println("  mirror  - Same scene with a partially reflective ground plane")
		return
	}

	var selectedScene *scene.Scene
	var err error
	switch *sceneType {
	case "mirror":
		selectedScene, err = scene.NewMirrorScene(*width, *height)
	case "default":
		selectedScene, err = scene.NewDefaultScene(*width, *height)
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene, err = scene.NewDefaultScene(*width, *height)
	}
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene)
	raytracer.SetConfig(renderer.Config{
		MaxDepth:   *maxDepth,
		NumWorkers: *workers,
	})

	fmt.Printf("Rendering %dx%d scene '%s'...\n", *width, *height, *sceneType)
	startTime := time.Now()
	pixels := raytracer.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	switch *format {
	case "png":
		err = renderer.WritePNG(file, *width, *height, pixels)
	default:
		err = renderer.WritePPM(file, *width, *height, pixels)
	}
	if err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
