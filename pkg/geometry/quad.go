package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// interiorFunc decides whether planar coordinates (alpha, beta) lie inside a shape,
// returning the texture coordinates for the hit when they do
type interiorFunc func(alpha, beta float64) (u, v float64, ok bool)

// Quad represents a planar surface spanned by a corner Q and two edge vectors U and V.
// The same plane test serves parallelograms, triangles and ellipses; only the interior differs.
type Quad struct {
	Q        core.Vec3     // Corner (or center for ellipses)
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal, U × V normalized
	Material core.Material // Material of the surface
	D        float64       // Plane equation constant: normal · p = D
	w        core.Vec3     // n / (n·n), for planar coordinates
	bbox     core.AABB
	interior interiorFunc
}

// NewQuad creates a parallelogram from a corner point and two edge vectors
func NewQuad(q, u, v core.Vec3, material core.Material) *Quad {
	quad := newPlanar(q, u, v, material, parallelogramInterior)

	// Union of the boxes over both diagonals
	diagonal1 := core.NewAABBFromPoints(q, q.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(q.Add(u), q.Add(v))
	quad.bbox = core.NewAABBUnion(diagonal1, diagonal2).PadToMinimums()

	return quad
}

func newPlanar(q, u, v core.Vec3, material core.Material, interior interiorFunc) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(q),
		w:        n.Divide(n.Dot(n)),
		interior: interior,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord, sampler core.Sampler) bool {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return false
	}

	// Planar coordinates of the hit point relative to Q
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Q)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	u, v, ok := q.interior(alpha, beta)
	if !ok {
		return false
	}

	rec.T = t
	rec.Point = hitPoint
	rec.U, rec.V = u, v
	rec.Material = q.Material
	rec.SetFaceNormal(ray, q.Normal)

	return true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

func parallelogramInterior(alpha, beta float64) (float64, float64, bool) {
	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return 0, 0, false
	}
	return alpha, beta, true
}
