package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3
}
