package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MockIntegrator returns a fixed color for every ray
type MockIntegrator struct {
	returnColor core.Vec3
}

func (m *MockIntegrator) RayColor(ray core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3 {
	return m.returnColor
}

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 32, 32, 2},
		{"ragged edges", 70, 50, 32, 6},
		{"tile larger than image", 10, 10, 64, 1},
		{"single pixel tiles", 3, 2, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 42)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := make([]int, tt.width*tt.height)
			seeds := make(map[int64]bool)
			for id, tile := range tiles {
				if tile.ID != id {
					t.Errorf("Expected tile ID %d, got %d", id, tile.ID)
				}
				if seeds[tile.Seed] {
					t.Errorf("Tile %d reuses seed %d", id, tile.Seed)
				}
				seeds[tile.Seed] = true
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel %d covered %d times", i, n)
				}
			}
		})
	}
}

func TestNewTileGrid_SeedDependsOnRenderSeed(t *testing.T) {
	a := NewTileGrid(64, 64, 32, 1)
	b := NewTileGrid(64, 64, 32, 1)
	c := NewTileGrid(64, 64, 32, 2)

	for i := range a {
		if a[i].Seed != b[i].Seed {
			t.Errorf("Tile %d: equal render seeds gave different tile seeds", i)
		}
		if a[i].Seed == c[i].Seed {
			t.Errorf("Tile %d: different render seeds gave the same tile seed", i)
		}
	}
}

func TestTileRenderer_RendersOnlyItsBounds(t *testing.T) {
	config := DefaultCameraConfig()
	config.ImageWidth = 8
	config.SamplesPerPixel = 3
	camera := NewCamera(config)

	white := core.NewVec3(1, 1, 1)
	tr := NewTileRenderer(camera, nil, &MockIntegrator{returnColor: white})
	film := NewFilm(8, 8)
	tile := &Tile{ID: 0, Bounds: image.Rect(2, 2, 5, 4), Seed: 1}

	stats := tr.RenderTile(tile, film)
	if stats.TotalPixels != 6 || stats.TotalSamples != 18 || stats.TilesRendered != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			inside := image.Pt(i, j).In(tile.Bounds)
			ps := film.Pixel(i, j)
			switch {
			case inside && (ps.SampleCount != 3 || ps.GetColor() != white):
				t.Errorf("Pixel (%d,%d) inside tile: %d samples, color %v", i, j, ps.SampleCount, ps.GetColor())
			case !inside && ps.SampleCount != 0:
				t.Errorf("Pixel (%d,%d) outside tile was sampled", i, j)
			}
		}
	}
}
