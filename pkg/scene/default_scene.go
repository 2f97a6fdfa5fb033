package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a row of spheres with a glass bubble holding a diffuse core, lit by the sky and a warm sphere light
func NewDefaultScene(opts Options) *Scene {
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	light := material.NewDiffuseLight(core.NewVec3(15.0, 14.0, 13.0))

	world := geometry.NewHittableList(
		NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen),
		geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, light),

		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),

		// Glass bubble with a diffuse sphere inside
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 200,
			MaxDepth:        50,
			VFov:            40,
			LookFrom:        core.NewVec3(0, 0.75, 2),
			LookAt:          core.NewVec3(0, 0.5, -1),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    1.0,
			FocusDist:       3.04,
		},
		Background: integrator.NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0)),
	}
}
