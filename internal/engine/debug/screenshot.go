// Package debug holds developer aids: screenshots and a frame-rate meter.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screenshots writes captured frames as PNG files named
// <prefix>_<timestamp>_<n>.png under a directory.
type Screenshots struct {
	dir    string
	prefix string
	seq    int
	now    func() time.Time
}

// NewScreenshots creates a capture handler. The directory is created on
// the first save.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// SetDir changes the output directory.
func (s *Screenshots) SetDir(dir string) {
	s.dir = dir
}

// ReadFramebuffer reads the bound framebuffer as bottom-up RGBA rows.
func ReadFramebuffer(width, height int32) []byte {
	pixels := make([]byte, int(width)*int(height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Capture reads the bound framebuffer and saves it.
func (s *Screenshots) Capture(width, height int32) (string, error) {
	return s.SavePixels(ReadFramebuffer(width, height), int(width), int(height))
}

// SavePixels saves bottom-up RGBA pixels, flipping them so the file is
// upright.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return s.SaveImage(img)
}

// SaveImage saves img as is.
func (s *Screenshots) SaveImage(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := s.nextName()
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return name, nil
}

func (s *Screenshots) nextName() string {
	s.seq++
	name := fmt.Sprintf("%s_%s_%d.png", s.prefix, s.now().Format("2006-01-02_15-04-05"), s.seq)
	return filepath.Join(s.dir, name)
}
