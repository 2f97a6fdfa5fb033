package loaders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Background modes accepted in [background]
const (
	BackgroundScene    = "scene"    // use the scene's own background
	BackgroundConstant = "constant" // flat color
	BackgroundGradient = "gradient" // sky gradient from bottom to top
)

// Config is the render configuration read from a TOML file
type Config struct {
	Render     RenderConfig     `toml:"render"`
	Background BackgroundConfig `toml:"background"`
	Output     OutputConfig     `toml:"output"`
	Log        LogConfig        `toml:"log"`
}

// RenderConfig controls sampling and parallelism. Zero width, aspect-ratio, samples-per-pixel
// and max-depth keep the scene's own values.
type RenderConfig struct {
	Scene           string  `toml:"scene"`
	Width           int     `toml:"width"`
	AspectRatio     float64 `toml:"aspect-ratio"`
	SamplesPerPixel int     `toml:"samples-per-pixel"`
	MaxDepth        int     `toml:"max-depth"`
	Workers         int     `toml:"workers"`
	TileSize        int     `toml:"tile-size"`
	Seed            int64   `toml:"seed"`
	AssetDir        string  `toml:"asset-dir"` // directory holding texture images
}

// BackgroundConfig overrides the color returned for rays that escape the scene
type BackgroundConfig struct {
	Mode   string     `toml:"mode"`
	Color  [3]float64 `toml:"color"`
	Bottom [3]float64 `toml:"bottom"`
	Top    [3]float64 `toml:"top"`
}

// OutputConfig controls where the image goes
type OutputConfig struct {
	Path           string   `toml:"path"`
	ThumbnailPath  string   `toml:"thumbnail-path"`
	ThumbnailWidth int      `toml:"thumbnail-width"`
	S3             S3Config `toml:"s3"`
}

// S3Config describes an S3-compatible bucket; publishing is disabled when Bucket is empty.
// Credentials are read from the environment, never from the file.
type S3Config struct {
	Bucket        string   `toml:"bucket"`
	Endpoint      string   `toml:"endpoint"`
	Region        string   `toml:"region"`
	Prefix        string   `toml:"prefix"`
	UploadTimeout duration `toml:"upload-timeout"`
}

// LogConfig controls logging verbosity
type LogConfig struct {
	Debug            bool     `toml:"debug"`
	ProgressInterval duration `toml:"progress-interval"`
}

// duration wraps time.Duration so it can be written as "5s" in TOML
type duration struct {
	time.Duration
}

// UnmarshalText parses strings such as "5s" or "1m30s"
func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Scene:    "bouncing-spheres",
			Workers:  1,
			TileSize: 32,
			Seed:     42,
			AssetDir: "assets",
		},
		Background: BackgroundConfig{
			Mode:   BackgroundScene,
			Color:  [3]float64{0.7, 0.8, 1.0},
			Bottom: [3]float64{1.0, 1.0, 1.0},
			Top:    [3]float64{0.5, 0.7, 1.0},
		},
		Output: OutputConfig{
			Path:           "image.ppm",
			ThumbnailWidth: 128,
			S3: S3Config{
				UploadTimeout: duration{30 * time.Second},
			},
		},
		Log: LogConfig{
			ProgressInterval: duration{2 * time.Second},
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the defaults.
// Keys the file sets but Config does not know are an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err errUnknownConfig
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return Config{}, err
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every setting that cannot be rendered
func (c Config) Validate() error {
	var errs []error

	if c.Render.Scene == "" {
		errs = append(errs, errors.New("render.scene must be set"))
	}
	if c.Render.Width < 0 {
		errs = append(errs, fmt.Errorf("render.width must not be negative, got %d", c.Render.Width))
	}
	if c.Render.AspectRatio < 0 {
		errs = append(errs, fmt.Errorf("render.aspect-ratio must not be negative, got %g", c.Render.AspectRatio))
	}
	if c.Render.SamplesPerPixel < 0 {
		errs = append(errs, fmt.Errorf("render.samples-per-pixel must not be negative, got %d", c.Render.SamplesPerPixel))
	}
	if c.Render.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("render.max-depth must not be negative, got %d", c.Render.MaxDepth))
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("render.workers must be at least 1, got %d", c.Render.Workers))
	}
	if c.Render.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("render.tile-size must be positive, got %d", c.Render.TileSize))
	}

	switch c.Background.Mode {
	case BackgroundScene, BackgroundConstant, BackgroundGradient:
	default:
		errs = append(errs, fmt.Errorf("background.mode must be one of %s, %s, %s; got %q",
			BackgroundScene, BackgroundConstant, BackgroundGradient, c.Background.Mode))
	}

	if c.Output.Path == "" {
		errs = append(errs, errors.New("output.path must be set"))
	}
	if c.Output.ThumbnailPath != "" && c.Output.ThumbnailWidth <= 0 {
		errs = append(errs, fmt.Errorf("output.thumbnail-width must be positive, got %d", c.Output.ThumbnailWidth))
	}
	if c.Output.S3.Bucket != "" && c.Output.S3.UploadTimeout.Duration <= 0 {
		errs = append(errs, errors.New("output.s3.upload-timeout must be positive"))
	}

	return errors.Join(errs...)
}

// errUnknownConfig lists keys present in the file but not in Config
type errUnknownConfig []string

func (e errUnknownConfig) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}
