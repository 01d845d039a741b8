// Package renderer drives the per-pixel render loop: it maps pixels to
// camera rays, casts them through the Whitted integrator, and fills a
// framebuffer. Pixels are independent, so rows are partitioned across a
// worker pool; the scene is read-only for the duration of the render and
// workers write disjoint framebuffer rows, so no locking is needed.
package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options controls how the pixel loop is executed. Zero values select the
// defaults: one worker per CPU and the integrator's standard depth budget.
type Options struct {
	Workers  int // Worker goroutines; <= 0 means runtime.NumCPU()
	MaxDepth int // Recursion budget per primary ray; <= 0 means integrator.DefaultMaxDepth
}

// Render casts one primary ray per pixel of the configured image and
// returns the filled framebuffer. The output is identical for any worker
// count: no pixel reads state produced by another pixel.
func Render(s *scene.Scene, settings Settings, opts Options) (*Framebuffer, RenderStats) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = integrator.DefaultMaxDepth
	}

	camera := NewCamera(settings)
	fb := NewFramebuffer(settings.Width, settings.Height)
	whitted := integrator.NewWhitted()

	start := time.Now()

	rows := make(chan int, settings.Height)
	for j := 0; j < settings.Height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				for i := 0; i < settings.Width; i++ {
					ray := camera.Ray(i, j)
					fb.Set(i, j, whitted.CastRay(s, ray, maxDepth))
				}
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels: settings.Width * settings.Height,
		PrimaryRays: settings.Width * settings.Height,
		Workers:     workers,
		Elapsed:     time.Since(start),
	}
	return fb, stats
}
