package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Translate moves an object by a fixed offset without copying it
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so that it appears displaced by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord, sampler core.Sampler) bool {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	if !t.Object.Hit(offsetRay, rayT, rec, sampler) {
		return false
	}

	rec.Point = rec.Point.Add(t.Offset)
	return true
}

// BoundingBox returns the translated bounding box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// Rotation rotates an object about one coordinate axis.
// The rotation acts in the plane of axes a and b, turning a toward b.
type Rotation struct {
	Object   core.Hittable
	a, b     int
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateX rotates object by angle degrees about the X axis
func NewRotateX(object core.Hittable, angle float64) *Rotation {
	return newRotation(object, angle, 1, 2)
}

// NewRotateY rotates object by angle degrees about the Y axis
func NewRotateY(object core.Hittable, angle float64) *Rotation {
	return newRotation(object, angle, 2, 0)
}

// NewRotateZ rotates object by angle degrees about the Z axis
func NewRotateZ(object core.Hittable, angle float64) *Rotation {
	return newRotation(object, angle, 0, 1)
}

// Rotate applies rotations about X, then Y, then Z, skipping zero angles
func Rotate(object core.Hittable, angleX, angleY, angleZ float64) core.Hittable {
	if angleX != 0 {
		object = NewRotateX(object, angleX)
	}
	if angleY != 0 {
		object = NewRotateY(object, angleY)
	}
	if angleZ != 0 {
		object = NewRotateZ(object, angleZ)
	}
	return object
}

func newRotation(object core.Hittable, angle float64, a, b int) *Rotation {
	radians := core.DegreesToRadians(angle)
	r := &Rotation{
		Object:   object,
		a:        a,
		b:        b,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound the eight rotated corners of the object's box
	bbox := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(bbox.X, i),
					pick(bbox.Y, j),
					pick(bbox.Z, k),
				)
				rotated := r.toWorld(corner)
				lo = core.NewVec3(math.Min(lo.X, rotated.X), math.Min(lo.Y, rotated.Y), math.Min(lo.Z, rotated.Z))
				hi = core.NewVec3(math.Max(hi.X, rotated.X), math.Max(hi.Y, rotated.Y), math.Max(hi.Z, rotated.Z))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(lo, hi)

	return r
}

func pick(i core.Interval, upper int) float64 {
	if upper == 1 {
		return i.Max
	}
	return i.Min
}

// toObject applies the inverse rotation
func (r *Rotation) toObject(v core.Vec3) core.Vec3 {
	va, vb := v.Index(r.a), v.Index(r.b)
	return withAxes(v, r.a, r.b,
		r.cosTheta*va+r.sinTheta*vb,
		-r.sinTheta*va+r.cosTheta*vb)
}

// toWorld applies the rotation
func (r *Rotation) toWorld(v core.Vec3) core.Vec3 {
	va, vb := v.Index(r.a), v.Index(r.b)
	return withAxes(v, r.a, r.b,
		r.cosTheta*va-r.sinTheta*vb,
		r.sinTheta*va+r.cosTheta*vb)
}

// withAxes returns v with components a and b replaced
func withAxes(v core.Vec3, a, b int, va, vb float64) core.Vec3 {
	c := [3]float64{v.X, v.Y, v.Z}
	c[a], c[b] = va, vb
	return core.NewVec3(c[0], c[1], c[2])
}

// Hit rotates the ray into object space, then rotates the hit point and normal back
func (r *Rotation) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord, sampler core.Sampler) bool {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	if !r.Object.Hit(rotated, rayT, rec, sampler) {
		return false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return true
}

// BoundingBox returns the box enclosing the rotated object's box
func (r *Rotation) BoundingBox() core.AABB {
	return r.bbox
}
