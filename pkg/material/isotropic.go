package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function with the given albedo texture
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(rec.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: i.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// Emitted returns black
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
