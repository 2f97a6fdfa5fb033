package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliFlags holds the command line; flags left unset keep the config file's values
type cliFlags struct {
	configPath string
	debug      bool
	help       bool
	scene      string
	out        string
	thumbnail  string
	width      int
	spp        int
	depth      int
	workers    int
	seed       int64
}

func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to a TOML config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug log output")
	fs.BoolVar(&f.help, "help", false, "Show help information")
	fs.StringVar(&f.scene, "scene", "", "Scene to render (see -help)")
	fs.StringVar(&f.out, "out", "", "Output file; .ppm, .png or .jpg")
	fs.StringVar(&f.thumbnail, "thumbnail", "", "Also write a thumbnail to this file")
	fs.IntVar(&f.width, "width", 0, "Image width in pixels")
	fs.IntVar(&f.spp, "spp", 0, "Samples per pixel")
	fs.IntVar(&f.depth, "depth", 0, "Maximum bounces per path")
	fs.IntVar(&f.workers, "workers", 0, "Number of render goroutines")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed")
	return fs
}

// applyFlags copies every flag the user set onto cfg
func applyFlags(fs *flag.FlagSet, f cliFlags, cfg *loaders.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			cfg.Log.Debug = f.debug
		case "scene":
			cfg.Render.Scene = f.scene
		case "out":
			cfg.Output.Path = f.out
		case "thumbnail":
			cfg.Output.ThumbnailPath = f.thumbnail
		case "width":
			cfg.Render.Width = f.width
		case "spp":
			cfg.Render.SamplesPerPixel = f.spp
		case "depth":
			cfg.Render.MaxDepth = f.depth
		case "workers":
			cfg.Render.Workers = f.workers
		case "seed":
			cfg.Render.Seed = f.seed
		}
	})
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		description, _ := scene.Describe(name)
		fmt.Fprintf(w, "  %-17s %s\n", name, description)
	}
}

func main() {
	var f cliFlags
	fs := newFlagSet(&f)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if f.help {
		printHelp(os.Stdout, fs)
		return
	}

	cfg, err := loaders.LoadConfig(f.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(fs, f, &cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Missing .env is fine; credentials may already be in the environment
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobID := uuid.NewString()
	if err := run(ctx, cfg, jobID, logger.With(zap.String("job", jobID))); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run builds the configured scene, renders it and writes the results
func run(ctx context.Context, cfg loaders.Config, jobID string, logger *zap.Logger) error {
	s, err := scene.Build(cfg.Render.Scene, scene.Options{
		Sampler:  core.NewSeededSampler(cfg.Render.Seed),
		Logger:   logger,
		AssetDir: cfg.Render.AssetDir,
	})
	if err != nil {
		return err
	}

	cameraConfig := cameraConfigFor(s.Camera, cfg.Render)
	if err := cameraConfig.Validate(); err != nil {
		return fmt.Errorf("invalid camera for scene %s: %w", s.Name, err)
	}

	rt := renderer.NewRaytracer(
		renderer.NewCamera(cameraConfig),
		s.World,
		integrator.NewPathTracingIntegrator(backgroundFor(cfg.Background, s.Background)),
		renderer.Config{
			NumWorkers:       cfg.Render.Workers,
			TileSize:         cfg.Render.TileSize,
			Seed:             cfg.Render.Seed,
			ProgressInterval: cfg.Log.ProgressInterval.Duration,
		},
		logger.With(zap.String("scene", s.Name)),
	)

	film, _, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	files := []string{cfg.Output.Path}
	if err := output.WriteFile(cfg.Output.Path, film); err != nil {
		return err
	}
	logger.Info("wrote image", zap.String("path", cfg.Output.Path))

	if cfg.Output.ThumbnailPath != "" {
		if err := output.WriteThumbnailFile(cfg.Output.ThumbnailPath, film, cfg.Output.ThumbnailWidth); err != nil {
			return err
		}
		files = append(files, cfg.Output.ThumbnailPath)
		logger.Info("wrote thumbnail", zap.String("path", cfg.Output.ThumbnailPath))
	}

	s3Config := s3ConfigFor(cfg.Output.S3)
	if s3Config.Bucket == "" {
		return nil
	}
	return publish(ctx, s3Config, jobID, files, logger)
}

// cameraConfigFor applies the non-zero render settings over a scene's camera
func cameraConfigFor(camera renderer.CameraConfig, render loaders.RenderConfig) renderer.CameraConfig {
	if render.Width > 0 {
		camera.ImageWidth = render.Width
	}
	if render.AspectRatio > 0 {
		camera.AspectRatio = render.AspectRatio
	}
	if render.SamplesPerPixel > 0 {
		camera.SamplesPerPixel = render.SamplesPerPixel
	}
	if render.MaxDepth > 0 {
		camera.MaxDepth = render.MaxDepth
	}
	return camera
}

// backgroundFor returns the configured background, or the scene's own in scene mode
func backgroundFor(cfg loaders.BackgroundConfig, sceneBackground integrator.Background) integrator.Background {
	switch cfg.Mode {
	case loaders.BackgroundConstant:
		return integrator.NewConstantBackground(vec3(cfg.Color))
	case loaders.BackgroundGradient:
		return integrator.NewGradientBackground(vec3(cfg.Bottom), vec3(cfg.Top))
	default:
		return sceneBackground
	}
}

func vec3(c [3]float64) core.Vec3 {
	return core.NewVec3(c[0], c[1], c[2])
}

// s3ConfigFor merges the file's bucket settings with S3_* environment variables.
// Credentials only ever come from the environment.
func s3ConfigFor(cfg loaders.S3Config) output.S3Config {
	return output.S3Config{
		Bucket:        valueOrEnv(cfg.Bucket, "S3_BUCKET"),
		Endpoint:      valueOrEnv(cfg.Endpoint, "S3_ENDPOINT"),
		Region:        valueOrEnv(cfg.Region, "S3_REGION"),
		Prefix:        cfg.Prefix,
		AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		SecretKey:     os.Getenv("S3_SECRET_KEY"),
		UploadTimeout: cfg.UploadTimeout.Duration,
	}
}

func valueOrEnv(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}

// publish uploads every file and reports all failures together
func publish(ctx context.Context, cfg output.S3Config, jobID string, files []string, logger *zap.Logger) error {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return errors.New("s3 publishing needs S3_ACCESS_KEY and S3_SECRET_KEY")
	}

	client, err := output.NewS3Client(cfg)
	if err != nil {
		return err
	}
	publisher := output.NewPublisher(client, cfg, logger)

	var errs []error
	for _, file := range files {
		if _, err := publisher.PublishFile(ctx, jobID, file); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
