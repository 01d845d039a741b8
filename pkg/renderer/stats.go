package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	PrimaryRays int           // Primary rays cast (one per pixel)
	Workers     int           // Worker goroutines used
	Elapsed     time.Duration // Wall-clock render time
}
