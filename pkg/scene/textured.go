package scene

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EarthTextureFile is the image the earth scene looks for in the asset directory
const EarthTextureFile = "earthmap.jpg"

// NewEarthScene wraps one image around three spheres with different materials. A missing image
// is logged and the spheres render cyan.
func NewEarthScene(opts Options) *Scene {
	path := filepath.Join(opts.AssetDir, EarthTextureFile)
	texture, err := material.NewImageTextureFromFile(path)
	if err != nil {
		opts.Logger.Warn("texture unavailable, using fallback color",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundChecker())),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(texture)),
		geometry.NewSphere(core.NewVec3(-4, 2, 0), 2, material.NewTexturedMetal(texture, 0.0)),
		geometry.NewSphere(core.NewVec3(4, 2, 0), 2, material.NewTintedDielectric(texture, 1.5)),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      800,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            40,
			LookFrom:        core.NewVec3(0, 5, 12),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       10,
		},
		Background: skyBackground(),
	}
}

// NewPerlinSpheresScene puts a marble sphere on a Perlin noise ground
func NewPerlinSpheresScene(opts Options) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Sampler))),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(material.NewMarbleTexture(4, opts.Sampler))),
	)

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDist:       10,
		},
		Background: skyBackground(),
	}
}
