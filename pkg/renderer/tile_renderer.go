package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Seed   int64           // Seed of the tile's private random generator
}

// tileSeed derives a per-tile seed so each tile's samples depend only on the render seed and the tile
func tileSeed(seed int64, id int) int64 {
	return seed*1_000_003 + int64(id) + 1
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:     tileID,
				Bounds: image.Rect(x0, y0, x1, y1),
				Seed:   tileSeed(seed, tileID),
			})
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders individual tiles into a shared film using an integrator
type TileRenderer struct {
	camera     *Camera
	world      core.Hittable
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(camera *Camera, world core.Hittable, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
	}
}

// RenderTile takes every sample for the pixels of one tile. Tiles never overlap, so
// concurrent calls on distinct tiles may share the film.
func (tr *TileRenderer) RenderTile(tile *Tile, film *Film) RenderStats {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(tile.Seed)))
	config := tr.camera.Config()
	bounds := tile.Bounds

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := film.Pixel(i, j)
			for sample := 0; sample < config.SamplesPerPixel; sample++ {
				ray := tr.camera.GetRay(i, j, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, config.MaxDepth, tr.world, sampler))
			}
		}
	}

	pixelCount := bounds.Dx() * bounds.Dy()
	stats := RenderStats{
		TotalPixels:   pixelCount,
		TotalSamples:  pixelCount * config.SamplesPerPixel,
		TilesRendered: 1,
	}
	if pixelCount > 0 {
		stats.AverageSamples = float64(config.SamplesPerPixel)
	}
	return stats
}
