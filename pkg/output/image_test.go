package output

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func solidImage(width, height int, c core.Vec3) *testImage {
	colors := make([]core.Vec3, width*height)
	for i := range colors {
		colors[i] = c
	}
	return &testImage{width: width, height: height, colors: colors}
}

func TestWritePNG_MatchesPPMEncoding(t *testing.T) {
	img := &testImage{
		width:  2,
		height: 1,
		colors: []core.Vec3{core.NewVec3(1, 0.25, 0), core.NewVec3(0, 0, 0)},
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", decoded.Bounds())
	}

	r, g, b, a := decoded.At(0, 0).RGBA()
	if r>>8 != 254 || g>>8 != 127 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("Expected (254,127,0,255), got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestWriteThumbnail(t *testing.T) {
	img := solidImage(40, 20, core.NewVec3(1, 1, 1))

	var buf bytes.Buffer
	if err := WriteThumbnail(&buf, img, 10); err != nil {
		t.Fatalf("WriteThumbnail failed: %v", err)
	}

	thumb, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode thumbnail: %v", err)
	}
	if thumb.Bounds().Dx() != 10 || thumb.Bounds().Dy() != 5 {
		t.Errorf("Expected 10x5 thumbnail, got %dx%d", thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}

	if err := WriteThumbnail(&buf, img, 0); err == nil {
		t.Error("Expected error for zero thumbnail width")
	}
}

func TestWriteFile(t *testing.T) {
	img := solidImage(3, 2, core.NewVec3(0.25, 0.25, 0.25))
	dir := t.TempDir()

	t.Run("ppm", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "render.ppm")
		if err := WriteFile(path, img); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "P3\n3 2\n255\n127 127 127\n") {
			t.Errorf("Unexpected PPM contents %q", data)
		}
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "render.png")
		if err := WriteFile(path, img); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if _, err := png.Decode(f); err != nil {
			t.Errorf("Expected a PNG file: %v", err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		if err := WriteFile(filepath.Join(dir, "render.xyz"), img); err == nil {
			t.Error("Expected error for unknown extension")
		}
	})
}

func TestWriteThumbnailFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thumbs", "t.png")
	if err := WriteThumbnailFile(path, solidImage(8, 8, core.Vec3{}), 4); err != nil {
		t.Fatalf("WriteThumbnailFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected thumbnail on disk: %v", err)
	}
}
