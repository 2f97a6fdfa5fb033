package renderer

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// createTestWorld creates a diffuse sphere resting on a ground sphere with a glass sphere beside it
func createTestWorld() *geometry.HittableList {
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
	)
}

func createTestCamera() *Camera {
	config := DefaultCameraConfig()
	config.ImageWidth = 24
	config.AspectRatio = 3.0 / 2.0
	config.SamplesPerPixel = 4
	config.MaxDepth = 8
	return NewCamera(config)
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	background := integrator.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0))

	render := func(workers int) *Film {
		config := DefaultConfig()
		config.NumWorkers = workers
		config.TileSize = 8
		rt := NewRaytracer(createTestCamera(), createTestWorld(), integrator.NewPathTracingIntegrator(background), config, nil)
		film, _, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return film
	}

	reference := render(1)
	for _, workers := range []int{2, 4, 7} {
		film := render(workers)
		for j := 0; j < reference.Height(); j++ {
			for i := 0; i < reference.Width(); i++ {
				if film.Color(i, j) != reference.Color(i, j) {
					t.Fatalf("%d workers: pixel (%d,%d) = %v, single worker gave %v",
						workers, i, j, film.Color(i, j), reference.Color(i, j))
				}
			}
		}
	}
}

func TestRaytracer_SeedChangesImage(t *testing.T) {
	background := integrator.NewConstantBackground(core.NewVec3(0.7, 0.8, 1.0))
	render := func(seed int64) *Film {
		config := DefaultConfig()
		config.Seed = seed
		rt := NewRaytracer(createTestCamera(), createTestWorld(), integrator.NewPathTracingIntegrator(background), config, nil)
		film, _, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return film
	}

	a, b := render(1), render(2)
	for j := 0; j < a.Height(); j++ {
		for i := 0; i < a.Width(); i++ {
			if a.Color(i, j) != b.Color(i, j) {
				return
			}
		}
	}
	t.Error("Expected different seeds to produce different noise")
}

func TestRaytracer_Stats(t *testing.T) {
	camera := createTestCamera()
	config := DefaultConfig()
	config.TileSize = 5
	grey := core.NewVec3(0.5, 0.5, 0.5)
	rt := NewRaytracer(camera, createTestWorld(), &MockIntegrator{returnColor: grey}, config, nil)

	film, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	pixels := camera.Width() * camera.Height()
	if stats.TotalPixels != pixels {
		t.Errorf("Expected %d pixels, got %d", pixels, stats.TotalPixels)
	}
	if stats.TotalSamples != pixels*4 || stats.AverageSamples != 4 {
		t.Errorf("Expected 4 samples per pixel, got %+v", stats)
	}
	if stats.TilesRendered != 5*4 {
		t.Errorf("Expected 20 tiles for a 24x16 image, got %d", stats.TilesRendered)
	}
	if film.Color(0, 0) != grey || film.Color(23, 15) != grey {
		t.Error("Expected every pixel to average the integrator color")
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 3} {
		config := DefaultConfig()
		config.NumWorkers = workers
		rt := NewRaytracer(createTestCamera(), createTestWorld(), &MockIntegrator{}, config, nil)

		film, stats, err := rt.Render(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%d workers: expected context.Canceled, got %v", workers, err)
		}
		if film == nil {
			t.Errorf("%d workers: expected the partial film", workers)
		}
		if stats.TilesRendered != 0 {
			t.Errorf("%d workers: expected no tiles after cancellation, got %d", workers, stats.TilesRendered)
		}
	}
}

func TestRaytracer_LogsCompletion(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)
	logger := zap.New(observed)

	rt := NewRaytracer(createTestCamera(), createTestWorld(), &MockIntegrator{}, DefaultConfig(), logger)
	if _, _, err := rt.Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, message := range []string{"built bvh", "starting render", "render complete"} {
		if logs.FilterMessage(message).Len() != 1 {
			t.Errorf("Expected one %q log entry", message)
		}
	}
}
