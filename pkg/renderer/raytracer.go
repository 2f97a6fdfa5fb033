package renderer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Config contains the parallelism and reproducibility settings of a render
type Config struct {
	NumWorkers       int           // 1 renders on the calling goroutine
	TileSize         int           // Edge length of square tiles in pixels
	Seed             int64         // Base seed; each tile derives its own generator from it
	ProgressInterval time.Duration // Minimum time between progress log lines
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers:       1,
		TileSize:         32,
		Seed:             42,
		ProgressInterval: 2 * time.Second,
	}
}

// Raytracer renders a world through a camera into a Film
type Raytracer struct {
	camera     *Camera
	world      *geometry.BVHNode
	integrator integrator.Integrator
	config     Config
	logger     *zap.Logger
}

// NewRaytracer wraps the world in a BVH and prepares a render. A nil logger discards output.
func NewRaytracer(camera *Camera, world *geometry.HittableList, integratorInst integrator.Integrator, config Config, logger *zap.Logger) *Raytracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = 1
	}

	bvh := geometry.NewBVHFromList(world)
	bvhStats := bvh.Stats()
	logger.Debug("built bvh",
		zap.Int("objects", world.Len()),
		zap.Int("nodes", bvhStats.Nodes),
		zap.Int("leaves", bvhStats.Leaves),
		zap.Int("max_depth", bvhStats.MaxDepth),
	)

	return &Raytracer{
		camera:     camera,
		world:      bvh,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render samples every pixel and returns the accumulated film. The film is deterministic for a
// given seed regardless of NumWorkers. Cancelling ctx stops the render between tiles and
// returns the partial film along with ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*Film, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	film := NewFilm(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize, rt.config.Seed)
	tileRenderer := NewTileRenderer(rt.camera, rt.world, rt.integrator)
	progress := newProgressLogger(rt.logger, len(tiles), rt.config.ProgressInterval)

	rt.logger.Info("starting render",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("samples_per_pixel", rt.camera.Config().SamplesPerPixel),
		zap.Int("max_depth", rt.camera.Config().MaxDepth),
		zap.Int("tiles", len(tiles)),
		zap.Int("workers", rt.config.NumWorkers),
	)

	var stats RenderStats
	var err error
	if rt.config.NumWorkers == 1 {
		stats, err = rt.renderSerial(ctx, tileRenderer, tiles, film, progress)
	} else {
		stats, err = rt.renderParallel(ctx, tileRenderer, tiles, film, progress)
	}
	stats.Duration = time.Since(start)

	if err != nil {
		rt.logger.Warn("render stopped",
			zap.Int("tiles_done", stats.TilesRendered),
			zap.Int("tiles_total", len(tiles)),
			zap.Error(err),
		)
		return film, stats, fmt.Errorf("render stopped after %d of %d tiles: %w", stats.TilesRendered, len(tiles), err)
	}

	rt.logger.Info("render complete",
		zap.Duration("duration", stats.Duration),
		zap.Int("samples", stats.TotalSamples),
		zap.Float64("average_luminance", film.AverageLuminance()),
	)
	return film, stats, nil
}

// renderSerial renders tiles in order on the calling goroutine
func (rt *Raytracer) renderSerial(ctx context.Context, tr *TileRenderer, tiles []*Tile, film *Film, progress *progressLogger) (RenderStats, error) {
	var stats RenderStats
	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.merge(tr.RenderTile(tile, film))
		progress.tileDone()
	}
	return stats, nil
}

// renderParallel fans tiles out over a worker pool and waits for every result
func (rt *Raytracer) renderParallel(ctx context.Context, tr *TileRenderer, tiles []*Tile, film *Film, progress *progressLogger) (RenderStats, error) {
	pool := NewWorkerPool(tr, rt.config.NumWorkers, len(tiles))
	pool.Start(ctx)

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Film: film})
	}

	var stats RenderStats
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
		progress.tileDone()
	}

	pool.Stop()
	return stats, firstErr
}

// progressLogger reports completed tiles at most once per interval
type progressLogger struct {
	logger  *zap.Logger
	limiter *rate.Limiter
	total   int
	done    int
}

func newProgressLogger(logger *zap.Logger, total int, interval time.Duration) *progressLogger {
	if interval <= 0 {
		interval = DefaultConfig().ProgressInterval
	}
	return &progressLogger{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		total:   total,
	}
}

func (p *progressLogger) tileDone() {
	p.done++
	if p.done == p.total || !p.limiter.Allow() {
		return
	}
	p.logger.Info("render progress",
		zap.Int("tiles_done", p.done),
		zap.Int("tiles_total", p.total),
		zap.Float64("percent", 100*float64(p.done)/float64(p.total)),
	)
}
