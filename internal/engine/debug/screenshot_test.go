package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// glPixels returns a 2x2 buffer in OpenGL row order: the first row is the
// bottom of the screen (red), the second row the top (green).
func glPixels() []byte {
	return []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 255, 0, 255, 0, 255, 0, 255,
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.UTC)
}

func newCapture(t *testing.T, format string) *ScreenshotCapture {
	t.Helper()
	sc, err := NewScreenshotCapture(filepath.Join(t.TempDir(), "shots"), "heliosim", format)
	if err != nil {
		t.Fatalf("NewScreenshotCapture failed: %v", err)
	}
	sc.now = fixedClock
	return sc
}

func decodeFile(t *testing.T, path string, decode func(f *os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func checkFlipped(t *testing.T, img image.Image) {
	t.Helper()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("size = %v, want 2x2", img.Bounds())
	}
	top := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	bottom := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if top != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("top row = %v, want green", top)
	}
	if bottom != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("bottom row = %v, want red", bottom)
	}
}

func TestCaptureFromPixelsPNG(t *testing.T) {
	sc := newCapture(t, FormatPNG)

	path, err := sc.CaptureFromPixels(glPixels(), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path %q should end in .png", path)
	}

	img := decodeFile(t, path, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	checkFlipped(t, img)
}

func TestCaptureFromPixelsWebP(t *testing.T) {
	sc := newCapture(t, FormatWebP)

	path, err := sc.CaptureFromPixels(glPixels(), 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}
	if !strings.HasSuffix(path, ".webp") {
		t.Errorf("path %q should end in .webp", path)
	}

	img := decodeFile(t, path, func(f *os.File) (image.Image, error) { return nativewebp.Decode(f) })
	checkFlipped(t, img)
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := newCapture(t, FormatPNG)

	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty size")
	}
}

func TestNewScreenshotCaptureRejectsFormat(t *testing.T) {
	if _, err := NewScreenshotCapture("", "x", "gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := newCapture(t, FormatWebP)
	sc.SetOutputDir("out")

	want := filepath.Join("out", "heliosim_2024-03-09_14-05-06.789.webp")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}

	sc.SetOutputDir("")
	if got := sc.GenerateFilename(); got != "heliosim_2024-03-09_14-05-06.789.webp" {
		t.Errorf("GenerateFilename() without dir = %q", got)
	}
	if sc.Format() != FormatWebP {
		t.Errorf("Format() = %q, want webp", sc.Format())
	}
}
