package renderer

import (
	"math"
	"math/rand"

	"github.com/fredlb/rusty-rays/pkg/core"
)

// CameraConfig contains camera configuration
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter (0 collapses to a pinhole)
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera generates world-space rays from normalized image-plane
// coordinates. Immutable after construction and cheap to copy per worker.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a thin-lens camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	lensRadius := config.Aperture / 2.0

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points from the target back at the camera
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := u.Cross(w)

	return &Camera{
		origin:     config.LookFrom,
		lensRadius: lensRadius,
		u:          u,
		v:          v,
		w:          w,
		lowerLeftCorner: config.LookFrom.
			Subtract(u.Multiply(halfWidth * config.FocusDistance)).
			Subtract(v.Multiply(halfHeight * config.FocusDistance)).
			Subtract(w.Multiply(config.FocusDistance)),
		horizontal: u.Multiply(2.0 * halfWidth * config.FocusDistance),
		vertical:   v.Multiply(2.0 * halfHeight * config.FocusDistance),
	}
}

// GetRay generates a ray for normalized screen coordinates (s, t) where
// 0 <= s,t <= 1. The origin is jittered across the lens disk for depth
// of field and the returned direction is unit length.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction.Normalize())
}
