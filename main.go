package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfnt/resize"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/renderer"
	"github.com/atkvist/go-path-tracer/pkg/scene"
)

const previewWidth = 160

func main() {
	sceneFlag := flag.String("scene", "default", "Scene: 'default', 'cornell', or a path to a .yaml scene file")
	outDir := flag.String("out", "output", "Output directory")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	maxDepth := flag.Int("depth", -1, "Override maximum recursion depth")
	samples := flag.Int("samples", 0, "Override hemisphere samples per diffuse bounce")
	workers := flag.Int("workers", 0, "Override number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", -1, "Override random seed")
	preview := flag.Bool("preview", false, "Also write a small preview image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default      - Open scene with a ground quad, a sun and three spheres")
		fmt.Println("  cornell      - Cornell box with quad walls, ceiling light and two spheres")
		fmt.Println("  <file>.yaml  - Scene description file")
		fmt.Println()
		fmt.Println("Output is saved to <out>/render_<timestamp>.png")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *sceneFlag, *outDir, overrides{
		width:    *width,
		height:   *height,
		maxDepth: *maxDepth,
		samples:  *samples,
		workers:  *workers,
		seed:     *seed,
	}, *preview); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// overrides holds the command-line overrides of the scene's render options.
// Zero (or -1 for depth and seed) means keep the scene's value.
type overrides struct {
	width, height int
	maxDepth      int
	samples       int
	workers       int
	seed          int64
}

func (o overrides) apply(opts core.Options) core.Options {
	if o.width > 0 {
		opts.Width = o.width
	}
	if o.height > 0 {
		opts.Height = o.height
	}
	if o.maxDepth >= 0 {
		opts.MaxDepth = o.maxDepth
	}
	if o.samples > 0 {
		opts.DiffuseSamples = o.samples
	}
	if o.workers > 0 {
		opts.Workers = o.workers
	}
	if o.seed >= 0 {
		opts.Seed = o.seed
	}
	return opts
}

func run(ctx context.Context, sceneName, outDir string, o overrides, preview bool) error {
	logger := renderer.NewDefaultLogger()

	s, opts, err := createScene(sceneName)
	if err != nil {
		return err
	}
	opts = o.apply(opts)
	s.Preprocess()

	logger.Printf("Scene %q: %d shapes, depth %d, %d diffuse samples\n",
		sceneName, len(s.Shapes), opts.MaxDepth, opts.DiffuseSamples)

	startTime := time.Now()
	framebuffer, err := renderer.NewRenderer(s, opts, logger).Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	img := renderer.ToImage(framebuffer, opts.Width, opts.Height)
	timestamp := time.Now().Format("20060102_150405")

	path := filepath.Join(outDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(path, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", path)

	if preview {
		small := resize.Resize(previewWidth, 0, img, resize.Lanczos3)
		previewPath := filepath.Join(outDir, fmt.Sprintf("preview_%s.png", timestamp))
		if err := savePNG(previewPath, small); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s\n", previewPath)
	}

	return nil
}

// createScene resolves a scene name to a built-in scene or a YAML scene file
func createScene(name string) (*scene.Scene, core.Options, error) {
	switch {
	case name == "default":
		s, opts := scene.NewDefaultScene()
		return s, opts, nil
	case name == "cornell":
		s, opts := scene.NewCornellScene()
		return s, opts, nil
	case strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml"):
		return scene.Load(name)
	default:
		return nil, core.Options{}, fmt.Errorf("unknown scene %q", name)
	}
}

func savePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
