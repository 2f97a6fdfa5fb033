package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// fixedSampler returns the same value for every draw
type fixedSampler float64

func (s fixedSampler) Get1D() float64            { return float64(s) }
func (s fixedSampler) Get2D() (float64, float64) { return float64(s), float64(s) }
func (s fixedSampler) Get3D() core.Vec3          { return core.NewVec3(float64(s), float64(s), float64(s)) }

func TestCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		aspectRatio float64
		expected    int
	}{
		{"square", 100, 1.0, 100},
		{"widescreen", 400, 16.0 / 9.0, 225},
		{"truncated", 10, 3.0, 3},
		{"clamped to one row", 1, 16.0 / 9.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.ImageWidth = tt.width
			config.AspectRatio = tt.aspectRatio
			camera := NewCamera(config)
			if camera.Height() != tt.expected {
				t.Errorf("Height() = %d, expected %d", camera.Height(), tt.expected)
			}
			if camera.Width() != tt.width {
				t.Errorf("Width() = %d, expected %d", camera.Width(), tt.width)
			}
		})
	}
}

func TestCamera_CenterPixelLooksAtTarget(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 101
	config.LookFrom = core.NewVec3(1, 2, 3)
	config.LookAt = core.NewVec3(1, 2, -7)
	camera := NewCamera(config)

	// 0.5 cancels the jitter, so the ray passes through the pixel center
	ray := camera.GetRay(50, 50, fixedSampler(0.5))

	if ray.Origin != config.LookFrom {
		t.Errorf("Expected origin %v, got %v", config.LookFrom, ray.Origin)
	}
	dir := ray.Direction.Normalize()
	if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y) > 1e-9 || math.Abs(dir.Z+1) > 1e-9 {
		t.Errorf("Expected direction (0,0,-1), got %v", dir)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
}

func TestCamera_RowZeroIsTop(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 10
	camera := NewCamera(config)

	top := camera.GetRay(5, 0, fixedSampler(0.5))
	bottom := camera.GetRay(5, 9, fixedSampler(0.5))
	if top.Direction.Y <= 0 || bottom.Direction.Y >= 0 {
		t.Errorf("Expected row 0 above the horizon and row 9 below, got %v and %v", top.Direction, bottom.Direction)
	}

	left := camera.GetRay(0, 5, fixedSampler(0.5))
	if left.Direction.X >= 0 {
		t.Errorf("Expected column 0 on the left, got %v", left.Direction)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// A 90 degree field of view puts the top edge of the image at 45 degrees
	config := DefaultCameraConfig()
	config.ImageWidth = 2
	config.FocusDist = 3
	camera := NewCamera(config)

	// Sampler value 0 shifts the ray half a pixel toward the top left corner
	ray := camera.GetRay(0, 0, fixedSampler(0))
	d := ray.Direction
	if math.Abs(d.Y/-d.Z-1) > 1e-9 || math.Abs(d.X/-d.Z+1) > 1e-9 {
		t.Errorf("Expected the corner ray at 45 degrees on both axes, got %v", d)
	}
}

func TestCamera_DefocusDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 10
	config.FocusDist = 5
	camera := NewCamera(config)

	radius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	sampler := core.NewSeededSampler(42)
	moved := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(50, 50, sampler)
		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Origin %v lies outside the defocus disk of radius %f", ray.Origin, radius)
		}
		if math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("Origin %v left the lens plane", ray.Origin)
		}
		if offset.Length() > 0 {
			moved = true
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("Ray time %f outside [0,1)", ray.Time)
		}
	}
	if !moved {
		t.Error("Expected some rays to start away from the lens center")
	}
}

// TestCamera_SingleSphereCenterRay renders the smallest useful view of a sphere over a ground
// sphere: the rays through the image center must hit the small sphere head on.
func TestCamera_SingleSphereCenterRay(t *testing.T) {
	small := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	ground := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0)))
	world := geometry.NewHittableList(small, ground)

	config := DefaultCameraConfig()
	config.ImageWidth = 2
	config.AspectRatio = 1
	camera := NewCamera(config)

	// Every pixel shares the image center as a corner; jitter each toward it
	tests := []struct {
		name    string
		i, j    int
		sampler core.Sampler
	}{
		{"from top left", 0, 0, fixedSampler(1)},
		{"from bottom right", 1, 1, fixedSampler(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j, tt.sampler)
			if math.Abs(ray.Direction.X) > 1e-9 || math.Abs(ray.Direction.Y) > 1e-9 {
				t.Fatalf("Expected an axial ray, got direction %v", ray.Direction)
			}

			var rec core.HitRecord
			if !world.Hit(ray, core.NewInterval(0.001, math.Inf(1)), &rec, tt.sampler) {
				t.Fatal("Center ray missed the scene")
			}
			if rec.Material != small.Material {
				t.Error("Center ray hit the ground instead of the small sphere")
			}
			if math.Abs(rec.Point.Z+0.5) > 1e-9 {
				t.Errorf("Expected hit at z=-0.5, got %v", rec.Point)
			}
			if math.Abs(rec.Normal.Z-1) > 1e-9 {
				t.Errorf("Expected normal (0,0,1), got %v", rec.Normal)
			}
		})
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *CameraConfig)
		wantErr bool
	}{
		{"defaults", func(c *CameraConfig) {}, false},
		{"zero samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }, true},
		{"zero width", func(c *CameraConfig) { c.ImageWidth = 0 }, true},
		{"inverted aspect", func(c *CameraConfig) { c.AspectRatio = -1 }, true},
		{"zero depth", func(c *CameraConfig) { c.MaxDepth = 0 }, false},
		{"flat field of view", func(c *CameraConfig) { c.VFov = 180 }, true},
		{"no focus distance", func(c *CameraConfig) { c.FocusDist = 0 }, true},
		{"looking at itself", func(c *CameraConfig) { c.LookAt = c.LookFrom }, true},
		{"looking straight up", func(c *CameraConfig) { c.LookAt = core.NewVec3(0, 5, 0) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
