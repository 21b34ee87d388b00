package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSavePixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "durham")
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	// 1x2, bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	name, err := s.SavePixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if want := filepath.Join(dir, "durham_2024-05-01_12-00-00_1.png"); name != want {
		t.Errorf("name = %s, want %s", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue, got r=%d b=%d", r, b)
	}

	second, err := s.SavePixels(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if second == name {
		t.Error("two captures in the same second share a name")
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	if _, err := s.SavePixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestFPS(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewFPS(5*time.Second, start)

	for i := 1; i < 300; i++ {
		if _, ok := f.Tick(start.Add(time.Duration(i) * time.Second / 60)); ok {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	rate, ok := f.Tick(start.Add(5 * time.Second))
	if !ok || rate != 60 {
		t.Errorf("rate = %v, %v; want 60", rate, ok)
	}
	if _, ok := f.Tick(start.Add(6 * time.Second)); ok {
		t.Error("window did not restart")
	}
}
