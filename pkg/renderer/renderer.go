// Package renderer drives the per-pixel render loop: it converts pixel
// coordinates to camera rays, invokes the integrator once per pixel and
// fills a row-major framebuffer.
package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer renders a scene into a row-major framebuffer
type Renderer struct {
	opts   core.Options
	camera *Camera
	tracer *integrator.PathTracer
	logger core.Logger
}

// NewRenderer creates a renderer for a scene and render options
func NewRenderer(scene integrator.Scene, opts core.Options, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		opts:   opts,
		camera: NewCamera(opts),
		tracer: integrator.NewPathTracer(scene, opts),
		logger: logger,
	}
}

// Render traces every pixel and returns the framebuffer in row-major scan
// order (row 0 first, left to right within each row), one color per pixel.
//
// Rows are distributed across workers. Each row owns a random generator
// seeded with Seed+row, so the output is identical for any worker count and
// no generator is ever shared between goroutines. Workers write disjoint
// framebuffer slots, which is the only shared mutable state.
//
// The context is polled between pixels; cancellation abandons the render
// and returns the context's error.
func (r *Renderer) Render(ctx context.Context) ([]core.Vec3, error) {
	width, height := r.opts.Width, r.opts.Height
	framebuffer := make([]core.Vec3, width*height)

	numWorkers := r.opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	r.logger.Printf("Rendering %dx%d with %d workers...\n", width, height, numWorkers)

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(ctx, framebuffer, j)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render cancelled: %w", err)
	}
	return framebuffer, nil
}

// renderRow resolves every pixel of row j into the shared framebuffer
func (r *Renderer) renderRow(ctx context.Context, framebuffer []core.Vec3, j int) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(r.opts.Seed + int64(j))))

	for i := 0; i < r.opts.Width; i++ {
		if ctx.Err() != nil {
			return
		}
		ray := r.camera.GetRay(i, j)
		framebuffer[j*r.opts.Width+i] = r.tracer.CastRay(ray, sampler, 0)
	}
}
