package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission core.Texture // Emitted radiance, may exceed 1
}

// NewDiffuseLight creates a new emissive material with a single color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter never scatters; lights absorb all incoming rays
func (e *DiffuseLight) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emission texture at the hit
func (e *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return e.Emission.Value(u, v, p)
}
