package output

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// ToNRGBA converts img to 8-bit pixels with the same gamma encoding as the PPM writer
func ToNRGBA(img Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for j := 0; j < img.Height(); j++ {
		for i := 0; i < img.Width(); i++ {
			b := ColorToBytes(img.Color(i, j))
			out.SetNRGBA(i, j, color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255})
		}
	}
	return out
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img Image) error {
	if err := imaging.Encode(w, ToNRGBA(img), imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteThumbnail encodes a PNG of img scaled to width pixels, keeping the aspect ratio
func WriteThumbnail(w io.Writer, img Image, width int) error {
	if width <= 0 {
		return fmt.Errorf("thumbnail width must be positive, got %d", width)
	}

	thumb := resize.Resize(uint(width), 0, ToNRGBA(img), resize.Bilinear)
	if err := imaging.Encode(w, thumb, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}

// WriteFile writes img to path, creating parent directories. The format follows the extension:
// .ppm writes P3 PPM; anything imaging knows (.png, .jpg, .gif, .tif, .bmp) goes through it.
func WriteFile(path string, img Image) error {
	return writeFile(path, func(f io.Writer) error {
		if strings.EqualFold(filepath.Ext(path), ".ppm") {
			return WritePPM(f, img)
		}

		format, err := imaging.FormatFromFilename(path)
		if err != nil {
			return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
		}
		return imaging.Encode(f, ToNRGBA(img), format, imaging.JPEGQuality(95))
	})
}

// WriteThumbnailFile writes a PNG thumbnail of img to path
func WriteThumbnailFile(path string, img Image, width int) error {
	return writeFile(path, func(f io.Writer) error {
		return WriteThumbnail(f, img, width)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
