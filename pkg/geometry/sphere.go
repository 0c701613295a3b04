package geometry

import (
	"math"

	"github.com/fredlb/rusty-rays/pkg/core"
	"github.com/fredlb/rusty-rays/pkg/material"
)

// HitRecord contains information about a ray-sphere intersection.
// It carries the material by value so records can cross function and
// goroutine boundaries without referencing the scene.
type HitRecord struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Outward unit normal at intersection
	T        float64           // Parameter t along the ray
	Material material.Material // Material of the hit sphere
}

// Sphere represents a sphere primitive. Immutable after scene construction.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere, accepting only roots
// strictly inside (tMin, tMax)
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Reduced quadratic coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / a
	if root <= tMin || root >= tMax {
		// Try the farther intersection point
		root = (-b + sqrtD) / a
		if root <= tMin || root >= tMax {
			// Both intersections are outside valid range
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	return HitRecord{
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius).Normalize(),
		T:        root,
		Material: s.Material,
	}, true
}

// SphereList is an ordered scene of spheres, shared read-only across
// render workers
type SphereList []Sphere

// Hit returns the nearest intersection across all spheres, or false if
// the ray misses everything. The scan shrinks tMax to the best t found
// so far, so farther spheres are rejected cheaply.
func (l SphereList) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closestHit HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, sphere := range l {
		if hit, isHit := sphere.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
