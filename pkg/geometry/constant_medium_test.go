package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestConstantMedium_DenseScattersAtEntry(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	medium := NewConstantMediumColor(boundary, 1e9, core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewSeededSampler(42)

	var rec core.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	if !medium.Hit(ray, forwardT, &rec, sampler) {
		t.Fatal("Expected dense medium to scatter")
	}
	if math.Abs(rec.T-4) > 1e-6 {
		t.Errorf("Expected scattering right at the boundary, got t=%f", rec.T)
	}
	if !rec.FrontFace || rec.Normal != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected fixed normal and front face, got %v front=%t", rec.Normal, rec.FrontFace)
	}
	if _, ok := rec.Material.(*material.Isotropic); !ok {
		t.Errorf("Expected isotropic phase function, got %T", rec.Material)
	}
}

func TestConstantMedium_ThinLetsRaysThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	medium := NewConstantMediumColor(boundary, 1e-9, core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		var rec core.HitRecord
		if medium.Hit(ray, forwardT, &rec, sampler) {
			t.Fatalf("Expected thin medium to pass ray through, scattered at t=%f", rec.T)
		}
	}
}

func TestConstantMedium_StaysWithinBoundary(t *testing.T) {
	boundary := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial{})
	medium := NewConstantMedium(boundary, 0.5, material.NewSolidColor(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(1)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	for i := 0; i < 500; i++ {
		var rec core.HitRecord
		if !medium.Hit(ray, forwardT, &rec, sampler) {
			continue
		}
		if rec.T < 4 || rec.T > 6 {
			t.Fatalf("Scatter point outside boundary: t=%f", rec.T)
		}
	}
}

func TestConstantMedium_RayStartingInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	medium := NewConstantMediumColor(boundary, 1e9, core.NewVec3(1, 1, 1))

	var rec core.HitRecord
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	if !medium.Hit(ray, forwardT, &rec, core.NewSeededSampler(5)) {
		t.Fatal("Expected hit from inside")
	}
	if rec.T < forwardT.Min || rec.T > forwardT.Min+1e-6 {
		t.Errorf("Expected scattering at the start of the interval, got t=%f", rec.T)
	}
}

func TestConstantMedium_Miss(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial{})
	medium := NewConstantMediumColor(boundary, 1e9, core.NewVec3(1, 1, 1))

	var rec core.HitRecord
	ray := core.NewRay(core.NewVec3(3, 0, 5), core.NewVec3(0, 0, -1))
	if medium.Hit(ray, forwardT, &rec, core.NewSeededSampler(5)) {
		t.Error("Expected miss for ray outside boundary")
	}
	if medium.BoundingBox() != boundary.BoundingBox() {
		t.Error("Expected medium bounds to equal boundary bounds")
	}
}
