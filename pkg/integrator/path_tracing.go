package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// shadowAcneEpsilon keeps secondary rays from re-hitting the surface they left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with material sampling only
type PathTracingIntegrator struct {
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator. A nil background is black.
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	if background == nil {
		background = NewConstantBackground(core.Vec3{})
	}
	return &PathTracingIntegrator{background: background}
}

// Background returns the color source used for escaping rays
func (pt *PathTracingIntegrator) Background() Background {
	return pt.background
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	var rec core.HitRecord
	if !world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), &rec, sampler) {
		return pt.background.Color(ray)
	}

	colorEmitted := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	scatter, didScatter := rec.Material.Scatter(ray, &rec, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, depth-1, world, sampler))
	return colorEmitted.Add(colorScattered)
}
