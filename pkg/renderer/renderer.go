package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sync"

	"github.com/fredlb/rusty-rays/pkg/core"
	"github.com/fredlb/rusty-rays/pkg/geometry"
	"github.com/fredlb/rusty-rays/pkg/integrator"
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

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays averaged per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers
	Seed            int64 // Base seed for per-pixel sampling
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           1200,
		Height:          800,
		SamplesPerPixel: 16,
		MaxDepth:        integrator.DefaultMaxDepth,
		NumWorkers:      4,
		Seed:            42,
	}
}

// Renderer estimates a camera image of a sphere scene by averaging
// jittered path-traced samples per pixel across a pool of workers
type Renderer struct {
	camera *Camera
	tracer *integrator.PathTracer
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(world geometry.SphereList, camera *Camera, config Config, logger core.Logger) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = DefaultConfig().NumWorkers
	}
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = 1
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		camera: camera,
		tracer: integrator.NewPathTracer(world, config.MaxDepth),
		config: config,
		logger: logger,
	}
}

// Render traces the full frame and returns the completed image buffer.
// Rows are assigned to workers in a strided pattern (worker k owns rows
// k, k+n, k+2n, ...), and every finished pixel is written to the shared
// buffer under a single mutex. Pixel values depend only on the base seed
// and pixel position, never on the worker count.
func (r *Renderer) Render() *image.RGBA {
	r.logger.Printf("Rendering %dx%d at %d spp with %d workers...\n",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.NumWorkers)

	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	var imgMutex sync.Mutex
	var wg sync.WaitGroup

	for workerID := 0; workerID < r.config.NumWorkers; workerID++ {
		wg.Add(1)
		go func(startRow int) {
			defer wg.Done()
			// Each worker gets its own copy of the camera value
			camera := *r.camera
			for y := startRow; y < r.config.Height; y += r.config.NumWorkers {
				r.renderRow(&camera, img, &imgMutex, y)
			}
		}(workerID)
	}

	wg.Wait()
	return img
}

// renderRow samples every pixel of one image row
func (r *Renderer) renderRow(camera *Camera, img *image.RGBA, imgMutex *sync.Mutex, y int) {
	spp := r.config.SamplesPerPixel
	for x := 0; x < r.config.Width; x++ {
		random := rand.New(rand.NewSource(r.pixelSeed(x, y)))

		var accum core.Vec3
		for sample := 0; sample < spp; sample++ {
			s := (float64(x) + random.Float64()) / float64(r.config.Width)
			t := (float64(y) + random.Float64()) / float64(r.config.Height)
			ray := camera.GetRay(s, t, random)
			accum = accum.Add(r.tracer.Trace(ray, random))
		}
		avg := accum.Multiply(1.0 / float64(spp))

		pixel := color.RGBA{
			R: LinearToSRGB(avg.X),
			G: LinearToSRGB(avg.Y),
			B: LinearToSRGB(avg.Z),
			A: 255,
		}

		imgMutex.Lock()
		img.SetRGBA(x, y, pixel)
		imgMutex.Unlock()
	}
}

// pixelSeed derives a deterministic per-pixel seed so renders are
// reproducible regardless of how rows land on workers
func (r *Renderer) pixelSeed(x, y int) int64 {
	return r.config.Seed + int64(y)*int64(r.config.Width) + int64(x)
}
