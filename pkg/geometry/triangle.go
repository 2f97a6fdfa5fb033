package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewTriangle creates a triangle with vertices a, a+ab and a+ac.
// Texture coordinates are the barycentric weights of ab and ac.
func NewTriangle(a, ab, ac core.Vec3, material core.Material) *Quad {
	t := newPlanar(a, ab, ac, material, triangleInterior)

	// Tighter than the parallelogram: only the three vertices matter
	box := core.NewAABBFromPoints(a, a.Add(ab))
	box = core.NewAABBUnion(box, core.NewAABBFromPoints(a, a.Add(ac)))
	t.bbox = box.PadToMinimums()

	return t
}

func triangleInterior(alpha, beta float64) (float64, float64, bool) {
	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return 0, 0, false
	}
	return alpha, beta, true
}

// NewEllipse creates an ellipse centered at center with semi-axes sideA and sideB.
// Texture coordinates map the ellipse onto the unit square.
func NewEllipse(center, sideA, sideB core.Vec3, material core.Material) *Quad {
	e := newPlanar(center, sideA, sideB, material, ellipseInterior)

	// Bounded by the parallelogram center ± sideA ± sideB
	diagonal1 := core.NewAABBFromPoints(center.Subtract(sideA).Subtract(sideB), center.Add(sideA).Add(sideB))
	diagonal2 := core.NewAABBFromPoints(center.Subtract(sideA).Add(sideB), center.Add(sideA).Subtract(sideB))
	e.bbox = core.NewAABBUnion(diagonal1, diagonal2).PadToMinimums()

	return e
}

func ellipseInterior(alpha, beta float64) (float64, float64, bool) {
	if alpha*alpha+beta*beta > 1 {
		return 0, 0, false
	}
	return alpha/2 + 0.5, beta/2 + 0.5, true
}
