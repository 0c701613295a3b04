package material

import (
	"math/rand"

	"github.com/fredlb/rusty-rays/pkg/core"
)

// Kind identifies one of the closed set of material variants
type Kind int

const (
	// Diffuse scatters into the hemisphere around the surface normal
	Diffuse Kind = iota
	// Reflective mirrors the incoming ray about the surface normal
	Reflective
)

// Material is a small copyable surface description. The variant set is
// closed, so scattering dispatches on the kind tag instead of an
// interface, and hit records can carry the material by value across
// goroutines.
type Material struct {
	Kind   Kind
	Albedo core.Vec3 // Base reflectance color
}

// NewDiffuse creates a diffuse material with the given albedo
func NewDiffuse(albedo core.Vec3) Material {
	return Material{Kind: Diffuse, Albedo: albedo}
}

// NewReflective creates a mirror material with the given albedo
func NewReflective(albedo core.Vec3) Material {
	return Material{Kind: Reflective, Albedo: albedo}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing ray
	Attenuation core.Vec3 // Color attenuation applied per bounce
}

// scatterBias nudges diffuse scatter origins off the surface to avoid
// re-hitting it due to floating-point error (shadow acne)
const scatterBias = 0.001

// Scatter produces the outgoing ray and attenuation for a surface hit at
// point with the given outward unit normal. The boolean is false when the
// ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, point, normal core.Vec3, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case Diffuse:
		// Bounce toward a random point in the unit sphere around the
		// normal tip. The bias is added to every component, matching
		// the long-standing renderer output.
		target := point.Add(normal).Add(core.RandomInUnitSphere(random))
		scattered := core.NewRay(point.AddScalar(scatterBias), target.Subtract(point))
		return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, true
	case Reflective:
		reflected := Reflect(rayIn.Direction.Normalize(), normal)
		scattered := core.NewRay(point, reflected)
		// Absorb rays that reflect into the surface (grazing hits)
		scatters := reflected.Dot(normal) > 0
		return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, scatters
	}
	return ScatterResult{}, false
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
