package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures on a 3D grid of cubes
type CheckerTexture struct {
	invScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewCheckerTexture creates a checker pattern with cells of side scale
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerTextureColors creates a checker pattern of two solid colors
func NewCheckerTextureColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture by the parity of the cell containing p
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * p.X))
	y := int(math.Floor(c.invScale * p.Y))
	z := int(math.Floor(c.invScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
