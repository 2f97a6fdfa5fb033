package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// groundChecker is the green and white checker shared by the outdoor scenes
func groundChecker() core.Texture {
	return material.NewCheckerTextureColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
}

// NewBouncingSpheresScene creates rows of small spheres that move upward during the exposure,
// next to three large spheres, one of each material
func NewBouncingSpheresScene(opts Options) *Scene {
	sampler := opts.Sampler
	world := geometry.NewHittableList()

	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundChecker())))

	for a := -1; a < 4; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center1 := core.NewVec3(float64(a)+sampler.Get1D(), 0.2, float64(b)+sampler.Get1D())
			center2 := center1.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				tint := core.RandomVec3(sampler, 0.5, 1)
				sphereMaterial = material.NewTintedDielectric(material.NewSolidColor(tint), 1.5)
			}

			world.Add(geometry.NewMovingSphere(center1, center2, 0.2, sphereMaterial))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(-2, 2, -3.7), 2, material.NewLambertian(core.NewVec3(0.2, 0.8, 0.3))))
	world.Add(geometry.NewSphere(core.NewVec3(-2, 1.5, 0), 1.5, material.NewMetal(core.NewVec3(0.8, 0.3, 0.2), 0.0)))
	world.Add(geometry.NewSphere(core.NewVec3(-2, 1, 2.3), 1,
		material.NewTintedDielectric(material.NewSolidColor(core.NewVec3(0.3, 0.2, 0.8)), 1.5)))

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            40,
			LookFrom:        core.NewVec3(3, 1, 4),
			LookAt:          core.NewVec3(-2, 1.5, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDist:       6.5,
		},
		Background: skyBackground(),
	}
}

// NewMyTestScene creates a large diffuse sphere flanked by pairs of metal and glass spheres
func NewMyTestScene(opts Options) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewTexturedLambertian(groundChecker())),
		geometry.NewSphere(core.NewVec3(0.0, 0.25, -1.5), 0.75, material.NewLambertian(core.NewVec3(0.55, 0.98, 0.95))),

		geometry.NewSphere(core.NewVec3(-0.9, -0.25, -1.1), 0.25, material.NewMetal(core.NewVec3(0.71, 0.43, 0.47), 0.0)),
		geometry.NewSphere(core.NewVec3(-0.45, -0.4, -1), 0.1, material.NewMetal(core.NewVec3(0.34, 0.61, 0.34), 0.5)),

		geometry.NewSphere(core.NewVec3(0.9, -0.2, -1.1), 0.3,
			material.NewTintedDielectric(material.NewSolidColor(core.NewVec3(0.34, 0.31, 0.54)), 1.5)),
		geometry.NewSphere(core.NewVec3(0.4, -0.3, -0.8), 0.2,
			material.NewTintedDielectric(material.NewSolidColor(core.NewVec3(0.34, 0.61, 0.34)), 2.4)),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            90,
			LookFrom:        core.NewVec3(0, 0, 0),
			LookAt:          core.NewVec3(0, 0, -1),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDist:       1,
		},
		Background: skyBackground(),
	}
}
