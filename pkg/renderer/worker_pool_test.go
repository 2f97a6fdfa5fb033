package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func newTestPool(t *testing.T, workers, tiles int) (*WorkerPool, []*Tile, *Film) {
	t.Helper()
	config := DefaultCameraConfig()
	config.ImageWidth = 16
	config.SamplesPerPixel = 2
	camera := NewCamera(config)

	tr := NewTileRenderer(camera, nil, &MockIntegrator{returnColor: core.NewVec3(0.5, 0.5, 0.5)})
	grid := NewTileGrid(camera.Width(), camera.Height(), 16/tiles, 42)
	return NewWorkerPool(tr, workers, len(grid)), grid, NewFilm(camera.Width(), camera.Height())
}

func TestWorkerPool_RendersEveryTask(t *testing.T) {
	pool, tiles, film := newTestPool(t, 3, 4)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}

	pool.Start(context.Background())
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Film: film})
	}

	seen := make(map[int]bool)
	total := 0
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			t.Errorf("Tile %d failed: %v", result.TileID, result.Error)
		}
		if seen[result.TileID] {
			t.Errorf("Tile %d reported twice", result.TileID)
		}
		seen[result.TileID] = true
		total += result.Stats.TotalSamples
	}
	pool.Stop()

	if total != 16*16*2 {
		t.Errorf("Expected %d samples, got %d", 16*16*2, total)
	}
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected a closed result queue after Stop")
	}
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	pool, tiles, film := newTestPool(t, 2, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Film: film})
	}

	for range tiles {
		result, _ := pool.GetResult()
		if !errors.Is(result.Error, context.Canceled) {
			t.Errorf("Tile %d: expected context.Canceled, got %v", result.TileID, result.Error)
		}
	}
	pool.Stop()

	if film.Pixel(0, 0).SampleCount != 0 {
		t.Error("A cancelled pool should not render")
	}
}

func TestNewWorkerPool_AtLeastOneWorker(t *testing.T) {
	for _, n := range []int{0, -2} {
		if got := NewWorkerPool(nil, n, 1).GetNumWorkers(); got != 1 {
			t.Errorf("NewWorkerPool(%d) has %d workers, expected 1", n, got)
		}
	}
}
