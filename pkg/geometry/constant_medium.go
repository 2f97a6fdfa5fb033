package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitEpsilon separates the exit search from the entry point
const mediumExitEpsilon = 0.0001

// ConstantMedium is a participating medium of uniform density filling a closed boundary
type ConstantMedium struct {
	Boundary      core.Hittable
	negInvDensity float64
	phase         core.Material
}

// NewConstantMedium fills boundary with a medium whose albedo comes from texture
func NewConstantMedium(boundary core.Hittable, density float64, texture core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		phase:         material.NewIsotropic(texture),
	}
}

// NewConstantMediumColor fills boundary with a medium of a single albedo
func NewConstantMediumColor(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a scattering distance inside the boundary.
// The boundary must be convex; rays that pass through without scattering miss.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord, sampler core.Sampler) bool {
	var enter, exit core.HitRecord

	if !m.Boundary.Hit(ray, core.UniverseInterval, &enter, sampler) {
		return false
	}
	if !m.Boundary.Hit(ray, core.NewInterval(enter.T+mediumExitEpsilon, math.Inf(1)), &exit, sampler) {
		return false
	}

	t1 := math.Max(enter.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return false
	}

	rec.T = t1 + hitDistance/rayLength
	rec.Point = ray.At(rec.T)
	rec.Normal = core.NewVec3(1, 0, 0) // arbitrary
	rec.FrontFace = true
	rec.U, rec.V = 0, 0
	rec.Material = m.phase

	return true
}

// BoundingBox returns the boundary's bounding box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
