package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0,1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cone responses
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Cone responses to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(core.Clamp(r, 0, 1), core.Clamp(g, 0, 1), core.Clamp(blue, 0, 1))
}

// NewSphereGridScene creates a grid of metal spheres whose hue varies along X and chroma along Z
func NewSphereGridScene(opts Options) *Scene {
	world := geometry.NewHittableList()

	// Warm sun-like light, high and to the side
	world.Add(geometry.NewSphere(core.NewVec3(20, 25, 20), 8, material.NewDiffuseLight(core.NewVec3(12.0, 11.5, 10.0))))

	world.Add(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 200, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	gridSize := 20

	// Fit the grid into roughly 9x9 units regardless of count
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := core.Clamp(spacing*0.35, 0.02, 0.35)

	baseLightness := 0.65
	minChroma := 0.05 // near grey
	maxChroma := 0.25 // vivid

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			world.Add(geometry.NewSphere(position, sphereRadius, material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)))
		}
	}

	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      800,
			SamplesPerPixel: 100,
			MaxDepth:        40,
			VFov:            40,
			LookFrom:        core.NewVec3(4.5, 6, 18),
			LookAt:          core.NewVec3(4.5, 0.8, 4.5),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0.3,
			FocusDist:       14.5,
		},
		Background: integrator.NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0)),
	}
}
