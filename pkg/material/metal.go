package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Texture // Metal color
	Fuzzness float64      // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with a solid color
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzzness)
}

// NewTexturedMetal creates a new metal material with texture. Fuzzness is clamped to [0,1].
func NewTexturedMetal(albedo core.Texture, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: core.Clamp(fuzzness, 0, 1)}
}

// Scatter reflects the ray and perturbs the unit reflection by a random vector scaled by fuzz.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(rec.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzzness))

	scattered := core.NewRayAtTime(rec.Point, reflected, rayIn.Time)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo.Value(rec.U, rec.V, rec.Point),
	}, scattered.Direction.Dot(rec.Normal) > 0
}

// Emitted returns black
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
