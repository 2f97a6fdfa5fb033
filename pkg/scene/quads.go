package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuadsScene surrounds the camera's view with five planar shapes
func NewQuadsScene(opts Options) *Scene {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewEllipse(core.NewVec3(0, 3, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), upperOrange),
		geometry.NewTriangle(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     1.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            80,
			LookFrom:        core.NewVec3(0, 0, 9),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       10,
		},
		Background: skyBackground(),
	}
}

// NewSimpleLightScene lights two noise textured spheres with a rectangle and a sphere emitter
func NewSimpleLightScene(opts Options) *Scene {
	noise := material.NewNoiseTexture(4, opts.Sampler)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(26, 3, 6),
			LookAt:          core.NewVec3(0, 2, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       10,
		},
		Background: blackBackground(),
	}
}
