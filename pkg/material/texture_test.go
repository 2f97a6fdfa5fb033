package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCheckerTexture_Parity(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerTextureColors(0.5, even, odd)

	tests := []struct {
		name     string
		p        core.Vec3
		expected core.Vec3
	}{
		{"origin cell", core.NewVec3(0.1, 0.1, 0.1), even},
		{"step in x", core.NewVec3(0.6, 0.1, 0.1), odd},
		{"step in x and y", core.NewVec3(0.6, 0.6, 0.1), even},
		{"negative cell", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative cells", core.NewVec3(-0.1, -0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(0, 0, tt.p); got != tt.expected {
				t.Errorf("Value at %v = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(42))

	for _, p := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(3, -2, 7),
		core.NewVec3(-5, 11, -1),
	} {
		if got := perlin.Noise(p); math.Abs(got) > 1e-12 {
			t.Errorf("Noise at lattice point %v = %f, expected 0", p, got)
		}
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(42))
	b := NewPerlin(core.NewSeededSampler(42))

	p := core.NewVec3(1.3, -0.7, 2.2)
	if a.Noise(p) != b.Noise(p) {
		t.Error("Expected equal noise for equal seeds")
	}
	if a.Turbulence(p, 7) < 0 {
		t.Error("Turbulence should never be negative")
	}
}

func TestPerlin_PermutationsAreComplete(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(3))

	for _, perm := range [][perlinPointCount]int{perlin.permX, perlin.permY, perlin.permZ} {
		var seen [perlinPointCount]bool
		for _, v := range perm {
			if seen[v] {
				t.Fatalf("Value %d appears twice in permutation", v)
			}
			seen[v] = true
		}
	}
}

func TestNoiseTextures_GreyInUnitRange(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	textures := []core.Texture{
		NewNoiseTexture(4, sampler),
		NewMarbleTexture(4, sampler),
	}

	for _, texture := range textures {
		for i := 0; i < 500; i++ {
			p := core.RandomVec3(sampler, -10, 10)
			c := texture.Value(0, 0, p)
			if c.X != c.Y || c.Y != c.Z {
				t.Fatalf("%T: expected grey, got %v", texture, c)
			}
			if c.X < 0 || c.X > 1 {
				t.Fatalf("%T: value %f outside [0,1] at %v", texture, c.X, p)
			}
		}
	}
}
