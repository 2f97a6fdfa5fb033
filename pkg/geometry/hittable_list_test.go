package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestHittableList_NearestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial{})

	// Order of insertion must not matter
	for _, list := range []*HittableList{NewHittableList(near, far), NewHittableList(far, near)} {
		var rec core.HitRecord
		if !list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), forwardT, &rec, nil) {
			t.Fatal("Expected hit")
		}
		if math.Abs(rec.T-2) > 1e-9 {
			t.Errorf("Expected nearest t=2, got %f", rec.T)
		}
	}
}

func TestHittableList_MissLeavesRecordUntouched(t *testing.T) {
	list := NewHittableList(NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial{}))

	rec := core.HitRecord{T: 42}
	if list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), forwardT, &rec, nil) {
		t.Fatal("Expected miss")
	}
	if rec.T != 42 {
		t.Errorf("Expected record untouched, got t=%f", rec.T)
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList()
	if list.BoundingBox() != core.EmptyAABB {
		t.Errorf("Expected empty box, got %v", list.BoundingBox())
	}

	list.Add(NewSphere(core.NewVec3(-2, 0, 0), 1, testMaterial{}))
	list.Add(NewSphere(core.NewVec3(3, 1, 0), 0.5, testMaterial{}))

	box := list.BoundingBox()
	if box.X != core.NewInterval(-3, 3.5) || box.Y != core.NewInterval(-1, 1.5) {
		t.Errorf("Unexpected union box %v", box)
	}

	list.Clear()
	if list.Len() != 0 || list.BoundingBox() != core.EmptyAABB {
		t.Error("Expected Clear to reset objects and bounds")
	}
}
