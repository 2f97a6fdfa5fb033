package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Background supplies the radiance for rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// ConstantBackground returns the same color in every direction
type ConstantBackground struct {
	Value core.Vec3
}

// NewConstantBackground creates a flat background; black turns the scene into a closed room
func NewConstantBackground(color core.Vec3) ConstantBackground {
	return ConstantBackground{Value: color}
}

// Color returns the constant color
func (b ConstantBackground) Color(core.Ray) core.Vec3 {
	return b.Value
}

// GradientBackground blends from Bottom to Top by the height of the ray direction
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a sky gradient
func NewGradientBackground(bottom, top core.Vec3) GradientBackground {
	return GradientBackground{Bottom: bottom, Top: top}
}

// Color maps the normalized direction's y from [-1,1] to a blend factor in [0,1]
func (b GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}
