package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// HittableList is an ordered collection of hittables tested by linear scan
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box to enclose it
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = core.NewAABBUnion(l.bbox, object.BoundingBox())
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.Objects = nil
	l.bbox = core.EmptyAABB
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, rec *core.HitRecord, sampler core.Sampler) bool {
	var temp core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), &temp, sampler) {
			hitAnything = true
			closestSoFar = temp.T
			*rec = temp
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all object bounding boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
