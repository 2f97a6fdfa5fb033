package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64      // Index of refraction (e.g., 1.5 for glass)
	Tint            core.Texture // Blended half-and-half with white; white gives clear glass
}

// NewDielectric creates a clear dielectric
func NewDielectric(refractiveIndex float64) *Dielectric {
	return NewTintedDielectric(NewSolidColor(core.NewVec3(1, 1, 1)), refractiveIndex)
}

// NewTintedDielectric creates a dielectric whose transmitted light is tinted by a texture
func NewTintedDielectric(tint core.Texture, refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: tint}
}

// Scatter either reflects or refracts, choosing reflection on total internal reflection
// or with probability given by Schlick's approximation
func (d *Dielectric) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(0.5, 0.5, 0.5).Add(d.Tint.Value(rec.U, rec.V, rec.Point).Multiply(0.5))

	// Determine if we're entering or exiting the material
	refractionRatio := d.RefractiveIndex
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(rec.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Emitted returns black
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Reflectance calculates reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
