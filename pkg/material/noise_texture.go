package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// turbulenceDepth is the number of octaves used by the marble pattern
const turbulenceDepth = 7

// NoiseTexture is a grey Perlin noise pattern
type NoiseTexture struct {
	Scale float64
	noise *Perlin
}

// NewNoiseTexture creates a noise texture whose features shrink as scale grows
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Scale: scale, noise: NewPerlin(sampler)}
}

// Value maps noise in [-1,1] to grey in [0,1]
func (t *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	grey := 0.5 * (1.0 + t.noise.Noise(p.Multiply(t.Scale)))
	return core.NewVec3(grey, grey, grey)
}

// MarbleTexture is a sine band along Z distorted by turbulence
type MarbleTexture struct {
	Scale float64
	noise *Perlin
}

// NewMarbleTexture creates a marble texture with bands of period 2π/scale
func NewMarbleTexture(scale float64, sampler core.Sampler) *MarbleTexture {
	return &MarbleTexture{Scale: scale, noise: NewPerlin(sampler)}
}

// Value returns grey in [0,1]
func (t *MarbleTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	grey := 0.5 * (1.0 + math.Sin(t.Scale*p.Z+10*t.noise.Turbulence(p, turbulenceDepth)))
	return core.NewVec3(grey, grey, grey)
}
