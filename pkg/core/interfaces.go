package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, facing against the incoming ray
	Material  Material // Material of the hit object (shared, not owned)
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface texture coordinates
	FrontFace bool     // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect.
//
// Hit returns true iff the ray hits the object with t inside rayT, and then fills rec with
// the nearest such hit. rec is left untouched on a miss. The sampler is only consumed by
// stochastic objects such as participating media.
//
// BoundingBox returns a box enclosing the object for every ray time in [0,1].
type Hittable interface {
	Hit(ray Ray, rayT Interval, rec *HitRecord, sampler Sampler) bool
	BoundingBox() AABB
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material decides how light leaves a surface
type Material interface {
	// Scatter produces the next path segment, or false when the ray is absorbed
	Scatter(rayIn Ray, rec *HitRecord, sampler Sampler) (ScatterResult, bool)

	// Emitted returns light emitted at the given surface coordinates
	Emitted(u, v float64, p Vec3) Vec3
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	Value(u, v float64, p Vec3) Vec3
}
