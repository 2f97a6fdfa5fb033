package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// ImageData holds an 8-bit RGB image for texture lookups
type ImageData struct {
	width  int
	height int
	pixels []uint8 // Row-major RGB triples, row 0 at the top
}

// LoadImage loads an image from disk, honoring EXIF orientation.
// PNG, JPEG and GIF decode through the standard library, BMP, TIFF and WebP through x/image.
func LoadImage(filename string) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}
	return NewImageData(img), nil
}

// NewImageData converts a decoded image into packed RGB bytes, dropping alpha
func NewImageData(img image.Image) *ImageData {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]uint8, 0, width*height*3)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			pixels = append(pixels, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &ImageData{width: width, height: height, pixels: pixels}
}

// Width returns the image width in pixels
func (d *ImageData) Width() int {
	return d.width
}

// Height returns the image height in pixels
func (d *ImageData) Height() int {
	return d.height
}

// PixelData returns the RGB bytes at column i, row j. Coordinates outside the image are
// clamped to the nearest edge; an empty image yields magenta.
func (d *ImageData) PixelData(i, j int) [3]uint8 {
	if d.width <= 0 || d.height <= 0 {
		return [3]uint8{255, 0, 255}
	}

	i = clampInt(i, 0, d.width-1)
	j = clampInt(j, 0, d.height-1)

	offset := (j*d.width + i) * 3
	return [3]uint8{d.pixels[offset], d.pixels[offset+1], d.pixels[offset+2]}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
