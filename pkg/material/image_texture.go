package material

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

// missingImageColor marks surfaces whose texture image could not be loaded
var missingImageColor = core.NewVec3(0, 1, 1)

// PixelSource is an 8-bit RGB image addressed with clamped pixel coordinates
type PixelSource interface {
	Width() int
	Height() int
	PixelData(i, j int) [3]uint8
}

// ImageTexture provides color from a 2D image mapped onto the surface's UV coordinates
type ImageTexture struct {
	Image PixelSource // nil renders as solid cyan
}

// NewImageTexture creates a new image texture
func NewImageTexture(image PixelSource) *ImageTexture {
	return &ImageTexture{Image: image}
}

// NewImageTextureFromFile loads an image texture from disk. On failure the returned texture
// is still usable and renders cyan; the error reports why.
func NewImageTextureFromFile(path string) (*ImageTexture, error) {
	image, err := loaders.LoadImage(path)
	if err != nil {
		return NewImageTexture(nil), fmt.Errorf("failed to load texture image: %w", err)
	}
	return NewImageTexture(image), nil
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Image == nil || t.Image.Height() <= 0 {
		return missingImageColor
	}

	// Clamp to [0,1] and flip V to image coordinates, where row 0 is the top
	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v)

	i := int(u * float64(t.Image.Width()))
	j := int(v * float64(t.Image.Height()))
	pixel := t.Image.PixelData(i, j)

	colorScale := 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(pixel[0]),
		colorScale*float64(pixel[1]),
		colorScale*float64(pixel[2]),
	)
}
