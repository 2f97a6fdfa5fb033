package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter sends the ray toward normal + random unit vector, a cosine-weighted direction
func (l *Lambertian) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := rec.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(rec.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// Emitted returns black; diffuse surfaces do not emit
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
