package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fredlb/rusty-rays/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 3),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          30.0,
		AspectRatio:   1.5,
		Aperture:      0.0,
		FocusDistance: 3.0,
	}
}

func TestCamera_GetRay_UnitDirection(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	for _, st := range [][2]float64{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.8}} {
		ray := camera.GetRay(st[0], st[1], random)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit direction at (%f, %f), got length %f",
				st[0], st[1], ray.Direction.Length())
		}
	}
}

func TestCamera_GetRay_PinholeOrigin(t *testing.T) {
	// Zero aperture collapses depth of field: every ray starts exactly
	// at the camera position
	config := testCameraConfig()
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(random.Float64(), random.Float64(), random)
		if ray.Origin != config.LookFrom {
			t.Fatalf("Expected pinhole origin %v, got %v", config.LookFrom, ray.Origin)
		}
	}
}

func TestCamera_GetRay_CenterLooksAtTarget(t *testing.T) {
	config := testCameraConfig()
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	ray := camera.GetRay(0.5, 0.5, random)
	expected := config.LookAt.Subtract(config.LookFrom).Normalize()
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray toward look-at %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_GetRay_TopRowLooksUp(t *testing.T) {
	// t=0 is the first (top) image row, so its rays point above the
	// view axis
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	top := camera.GetRay(0.5, 0.0, random)
	bottom := camera.GetRay(0.5, 1.0, random)
	if top.Direction.Y <= bottom.Direction.Y {
		t.Errorf("Expected top row above bottom row, got top y=%f bottom y=%f",
			top.Direction.Y, bottom.Direction.Y)
	}
}

func TestCamera_GetRay_LensJitterWithinAperture(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	lensRadius := config.Aperture / 2.0
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(0.5, 0.5, random)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() >= lensRadius {
			t.Fatalf("Lens offset %v exceeds lens radius %f", offset, lensRadius)
		}
	}
}

func TestCamera_BasisOrthonormal(t *testing.T) {
	config := testCameraConfig()
	config.LookFrom = core.NewVec3(2, 1, 4)
	config.LookAt = core.NewVec3(-1, 0.5, -2)
	camera := NewCamera(config)

	const tolerance = 1e-9
	for name, v := range map[string]core.Vec3{"u": camera.u, "v": camera.v, "w": camera.w} {
		if math.Abs(v.Length()-1.0) > tolerance {
			t.Errorf("Expected unit basis vector %s, got length %f", name, v.Length())
		}
	}
	if math.Abs(camera.u.Dot(camera.v)) > tolerance ||
		math.Abs(camera.u.Dot(camera.w)) > tolerance ||
		math.Abs(camera.v.Dot(camera.w)) > tolerance {
		t.Error("Expected orthogonal camera basis")
	}
}
