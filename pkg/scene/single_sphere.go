package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSingleSphereScene creates a small sphere resting on a huge ground sphere, with the camera
// at the origin looking straight at it
func NewSingleSphereScene(opts Options) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      100,
			SamplesPerPixel: 50,
			MaxDepth:        10,
			VFov:            90,
			LookFrom:        core.NewVec3(0, 0, 0),
			LookAt:          core.NewVec3(0, 0, -1),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       10,
		},
		Background: integrator.NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0)),
	}
}
