package scene

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      *geometry.HittableList // Objects in the scene; the raytracer wraps them in a BVH
	Camera     renderer.CameraConfig
	Background integrator.Background // Radiance for rays that escape the world
}

// Options carries what scene builders may need besides their own constants
type Options struct {
	Sampler  core.Sampler // Drives random placement and procedural textures; nil uses seed 42
	Logger   *zap.Logger  // nil discards output
	AssetDir string       // Directory holding texture images
}

// builder describes one registered scene
type builder struct {
	description string
	build       func(opts Options) *Scene
}

var registry = map[string]builder{
	"bouncing-spheres": {"Moving diffuse, metal and glass spheres on a checker ground", NewBouncingSpheresScene},
	"my-test":          {"Small metal and glass spheres around a large diffuse sphere", NewMyTestScene},
	"earth":            {"Image textured spheres with diffuse, metal and glass materials", NewEarthScene},
	"perlin-spheres":   {"Perlin noise ground under a marble sphere", NewPerlinSpheresScene},
	"quads":            {"Quad, triangle and ellipse primitives", NewQuadsScene},
	"simple-light":     {"Noise textured spheres lit by a rectangle and a sphere light", NewSimpleLightScene},
	"cornell-box":      {"Cornell box with two rotated boxes", NewCornellBoxScene},
	"cornell-smoke":    {"Cornell box with two boxes of smoke", NewCornellSmokeScene},
	"single-sphere":    {"One sphere over a ground sphere, viewed head on", NewSingleSphereScene},
	"sphere-grid":      {"Grid of metal spheres in OKLCH colors", NewSphereGridScene},
	"default":          {"Glass, metal and diffuse spheres under a warm sphere light", NewDefaultScene},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a registered scene
func Describe(name string) (string, bool) {
	b, ok := registry[name]
	return b.description, ok
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}

	if opts.Sampler == nil {
		opts.Sampler = core.NewSeededSampler(42)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := b.build(opts)
	s.Name = name
	opts.Logger.Debug("built scene",
		zap.String("scene", name),
		zap.Int("objects", s.World.Len()),
	)
	return s, nil
}

// skyBackground is the light blue used by the outdoor scenes
func skyBackground() integrator.Background {
	return integrator.NewConstantBackground(core.NewVec3(0.70, 0.80, 1.00))
}

// blackBackground makes a scene lit only by its emitters
func blackBackground() integrator.Background {
	return integrator.NewConstantBackground(core.Vec3{})
}

// NewGroundQuad creates a large horizontal quad centered at the given point, facing up
func NewGroundQuad(center core.Vec3, size float64, material core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (size,0,0) × (0,0,size) points along -Y, so swap to face up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}
