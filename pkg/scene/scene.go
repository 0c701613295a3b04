package scene

import (
	"fmt"

	"github.com/fredlb/rusty-rays/pkg/core"
	"github.com/fredlb/rusty-rays/pkg/geometry"
	"github.com/fredlb/rusty-rays/pkg/material"
	"github.com/fredlb/rusty-rays/pkg/renderer"
)

// Scene bundles the static render configuration: the sphere list, the
// camera, and the image dimensions. Immutable once built.
type Scene struct {
	Spheres geometry.SphereList
	Camera  renderer.CameraConfig
	Width   int
	Height  int
}

// NewDefaultScene creates the classic three-sphere scene: a half-sunken
// sphere, a huge ground sphere, and a small mirror ball
func NewDefaultScene() *Scene {
	width, height := 1200, 800

	lambertianRose := material.NewDiffuse(core.NewVec3(0.8, 0.3, 0.3))
	lambertianGround := material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.0))
	metalSilver := material.NewReflective(core.NewVec3(0.8, 0.8, 0.8))

	return &Scene{
		Spheres: geometry.SphereList{
			geometry.NewSphere(core.NewVec3(0.5, 0.01, -1), 0.5, lambertianRose),
			geometry.NewSphere(core.NewVec3(0, -10000.5, -1), 10000.0, lambertianGround),
			geometry.NewSphere(core.NewVec3(-0.2, -0.295, -1), 0.2, metalSilver),
		},
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(0, 0, 3),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          30.0,
			AspectRatio:   float64(width) / float64(height),
			Aperture:      0.0,
			FocusDistance: 3.0,
		},
		Width:  width,
		Height: height,
	}
}

// NewMetalScene creates a scene with diffuse and mirror spheres on a
// diffuse ground, with a wide aperture to show depth of field
func NewMetalScene() *Scene {
	width, height := 1200, 800

	lambertianBlue := material.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	metalSilver := material.NewReflective(core.NewVec3(0.8, 0.8, 0.8))
	metalGold := material.NewReflective(core.NewVec3(0.8, 0.6, 0.2))

	return &Scene{
		Spheres: geometry.SphereList{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100.0, lambertianGround),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver),
			geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		},
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(3, 0.5, 2),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          25.0,
			AspectRatio:   float64(width) / float64(height),
			Aperture:      0.2,
			FocusDistance: 4.3,
		},
		Width:  width,
		Height: height,
	}
}

// ByName returns the scene registered under the given name
func ByName(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "metal":
		return NewMetalScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
