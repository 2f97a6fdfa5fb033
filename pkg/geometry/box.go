package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewBox returns the six quads of the axis-aligned box with opposite vertices a and b.
// Every face normal points outward.
func NewBox(a, b core.Vec3, material core.Material) *HittableList {
	sides := NewHittableList()

	lo := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	hi := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, material))          // front
	sides.Add(NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, material)) // right
	sides.Add(NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, material)) // back
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, material))          // left
	sides.Add(NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), material)) // top
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, material))          // bottom

	return sides
}
