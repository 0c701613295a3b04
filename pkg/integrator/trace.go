package integrator

import (
	"math/rand"

	"github.com/fredlb/rusty-rays/pkg/core"
	"github.com/fredlb/rusty-rays/pkg/geometry"
)

const (
	// KMinT rejects hits too close to the ray origin (shadow acne)
	KMinT = 0.001
	// KMaxT is the effective-infinity intersection bound
	KMaxT = 1e7
)

// DefaultMaxDepth is the recursion cutoff for a single ray
const DefaultMaxDepth = 50

// PathTracer is a recursive Monte Carlo radiance estimator over a sphere
// scene with a sky-gradient background
type PathTracer struct {
	world    geometry.SphereList
	maxDepth int
}

// NewPathTracer creates a path tracer for the given scene
func NewPathTracer(world geometry.SphereList, maxDepth int) *PathTracer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracer{world: world, maxDepth: maxDepth}
}

// Trace estimates the radiance arriving along a single ray
func (pt *PathTracer) Trace(ray core.Ray, random *rand.Rand) core.Vec3 {
	return pt.trace(ray, random, pt.maxDepth)
}

func (pt *PathTracer) trace(ray core.Ray, random *rand.Rand, depth int) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	if hit, isHit := pt.world.Hit(ray, KMinT, KMaxT); isHit {
		scatter, didScatter := hit.Material.Scatter(ray, hit.Point, hit.Normal, random)
		if !didScatter {
			// Absorbed
			return core.Vec3{}
		}
		return scatter.Attenuation.MultiplyVec(pt.trace(scatter.Scattered, random, depth-1))
	}

	return pt.backgroundGradient(ray)
}

// backgroundGradient returns the sky color for a ray that escapes the scene
func (pt *PathTracer) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation between white and sky blue
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1.0 - t).Add(blue.Multiply(t))
}
