package output

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image is a grid of linear-space colors with row 0 at the top
type Image interface {
	Width() int
	Height() int
	Color(i, j int) core.Vec3
}

// intensity is the range a gamma-encoded component is clamped to before scaling to a byte
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2 encoding. Non-positive and NaN components map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ColorToBytes gamma-encodes a linear color and scales it to [0,254]
func ColorToBytes(c core.Vec3) [3]uint8 {
	return [3]uint8{
		uint8(int(255 * intensity.Clamp(LinearToGamma(c.X)))),
		uint8(int(255 * intensity.Clamp(LinearToGamma(c.Y)))),
		uint8(int(255 * intensity.Clamp(LinearToGamma(c.Z)))),
	}
}

// WriteColor writes one pixel as "r g b\n"
func WriteColor(w io.Writer, c core.Vec3) error {
	b := ColorToBytes(c)
	_, err := fmt.Fprintf(w, "%d %d %d\n", b[0], b[1], b[2])
	return err
}

// WritePPM writes img as an ASCII (P3) PPM, rows top to bottom
func WritePPM(w io.Writer, img Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("failed to write ppm header: %w", err)
	}

	for j := 0; j < img.Height(); j++ {
		for i := 0; i < img.Width(); i++ {
			if err := WriteColor(bw, img.Color(i, j)); err != nil {
				return fmt.Errorf("failed to write pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush ppm: %w", err)
	}
	return nil
}
