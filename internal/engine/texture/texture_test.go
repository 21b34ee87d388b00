package texture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/durham-house/internal/engine/mesh"
)

type fakeUploader struct {
	mu      sync.Mutex
	next    uint32
	fail    error
	sizes   map[uint32]image.Point
	deleted []uint32
}

func (f *fakeUploader) Upload(img *image.RGBA) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return 0, f.fail
	}
	f.next++
	if f.sizes == nil {
		f.sizes = make(map[uint32]image.Point)
	}
	f.sizes[f.next] = img.Rect.Size()
	return f.next, nil
}

func (f *fakeUploader) Delete(handle uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, handle)
}

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func writeFile(t *testing.T, dir, name string, encode func(*bytes.Buffer) error) {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// loadAll starts the registry, waits for every loader and applies the results.
func loadAll(t *testing.T, r *Registry) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r.LoadAsync(ctx)
	if err := r.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	return r.Poll()
}

func TestDecodeTGA(t *testing.T) {
	header := func(imageType, bpp, desc byte) []byte {
		return []byte{0, 0, imageType, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 2, 0, bpp, desc}
	}

	tests := []struct {
		name    string
		data    []byte
		topLeft color.RGBA
		botLeft color.RGBA
	}{
		{
			name: "uncompressed bottom-up",
			data: append(header(TGATypeUncompressed, 24, 0),
				0, 0, 255, 0, 0, 255, // bottom row: red
				255, 0, 0, 255, 0, 0, // top row: blue
			),
			topLeft: color.RGBA{0, 0, 255, 255},
			botLeft: color.RGBA{255, 0, 0, 255},
		},
		{
			name: "uncompressed top-down with alpha",
			data: append(header(TGATypeUncompressed, 32, 0x20),
				0, 255, 0, 128, 0, 255, 0, 128,
				0, 0, 0, 255, 0, 0, 0, 255,
			),
			topLeft: color.RGBA{0, 255, 0, 128},
			botLeft: color.RGBA{0, 0, 0, 255},
		},
		{
			name: "rle run and raw packet",
			data: append(header(TGATypeRLE, 24, 0x20),
				0x81, 0, 0, 255, // run of 2 red
				0x01, 255, 255, 255, 0, 0, 0, // raw white, black
			),
			topLeft: color.RGBA{255, 0, 0, 255},
			botLeft: color.RGBA{255, 255, 255, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data, "test.tga")
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got := img.RGBAAt(0, 0); got != tt.topLeft {
				t.Errorf("top-left = %v, want %v", got, tt.topLeft)
			}
			if got := img.RGBAAt(0, 1); got != tt.botLeft {
				t.Errorf("bottom-left = %v, want %v", got, tt.botLeft)
			}
		})
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", []byte{0, 1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 24, 0}},
		{"unsupported type", []byte{0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 8, 0}},
		{"unsupported depth", []byte{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 16, 0}},
		{"truncated pixels", []byte{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 1, 0, 24, 0, 1, 2, 3}},
		{"truncated rle", []byte{0, 0, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 1, 0, 24, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeFormats(t *testing.T) {
	src := checker(4, 3)
	encoders := map[string]func(*bytes.Buffer) error{
		"a.png": func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"a.jpg": func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) },
		"a.bmp": func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := enc(&buf); err != nil {
				t.Fatal(err)
			}
			img, err := Decode(buf.Bytes(), name)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Rect != image.Rect(0, 0, 4, 3) {
				t.Errorf("bounds = %v, want 4x3 at origin", img.Rect)
			}
		})
	}

	if _, err := Decode([]byte("not an image"), "x.png"); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := checker(4, 4).SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	got := ToRGBA(src)
	if got.Rect != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got.Rect)
	}
	if got.RGBAAt(0, 0) != src.RGBAAt(1, 1) {
		t.Error("pixel (0,0) does not match source (1,1)")
	}

	packed := checker(2, 2)
	if ToRGBA(packed) != packed {
		t.Error("packed RGBA image should be returned as is")
	}
}

func TestRegistryLoads(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "grass.png", func(b *bytes.Buffer) error { return png.Encode(b, checker(8, 8)) })
	writeFile(t, dir, "wall.jpg", func(b *bytes.Buffer) error { return jpeg.Encode(b, checker(16, 4), nil) })

	up := &fakeUploader{}
	r := NewRegistry(Config{
		Dir:   dir,
		Files: map[string]string{"grass": "grass.png", "wall": "wall.jpg", "door": "door.jpg"},
	}, up, nil)

	if r.Ready("grass") {
		t.Fatal("texture ready before loading")
	}
	if r.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", r.Pending())
	}

	if n := loadAll(t, r); n != 2 {
		t.Errorf("Poll readied %d textures, want 2", n)
	}
	if !r.Ready("grass") || !r.Ready("wall") {
		t.Error("grass and wall should be ready")
	}
	if r.Ready("door") {
		t.Error("missing door.jpg should not be ready")
	}
	if st, err := r.State("door"); st != StateFailed || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("door state = %v, %v; want failed with ErrNotExist", st, err)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending = %d after poll", r.Pending())
	}

	h, ok := r.Handle("wall")
	if !ok || up.sizes[h] != (image.Point{16, 4}) {
		t.Errorf("wall handle %d ok=%v size=%v", h, ok, up.sizes[h])
	}

	if n := r.Poll(); n != 0 {
		t.Errorf("second Poll readied %d", n)
	}

	r.Close()
	if len(up.deleted) != 2 {
		t.Errorf("deleted %d textures, want 2", len(up.deleted))
	}
	if r.Ready("grass") {
		t.Error("texture still ready after Close")
	}
}

func TestRegistryProcedural(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(Config{Dir: t.TempDir(), Procedural: true}, up, nil)

	if n := loadAll(t, r); n != len(DefaultFiles) {
		t.Errorf("Poll readied %d, want %d", n, len(DefaultFiles))
	}
	for _, name := range r.Names() {
		if !r.Ready(name) {
			t.Errorf("%s not ready with procedural fallback", name)
		}
	}
}

func TestRegistryUploadFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "glass.jpg", func(b *bytes.Buffer) error { return jpeg.Encode(b, checker(2, 2), nil) })

	up := &fakeUploader{fail: errors.New("no context")}
	r := NewRegistry(Config{Dir: dir, Files: map[string]string{"glass": "glass.jpg"}}, up, nil)
	loadAll(t, r)

	if r.Ready("glass") {
		t.Error("texture ready after failed upload")
	}
	if _, err := r.State("glass"); err == nil || err.Error() != "no context" {
		t.Errorf("state error = %v", err)
	}
}

func TestRegistryWaitBeforeStart(t *testing.T) {
	r := NewRegistry(Config{Dir: t.TempDir()}, &fakeUploader{}, nil)
	if err := r.Wait(context.Background()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Wait = %v, want ErrNotStarted", err)
	}
	if _, err := r.State("nope"); err == nil {
		t.Error("unknown texture should report an error")
	}
}

func TestGenerateAtlas(t *testing.T) {
	img := Generate("color")
	for s, want := range swatchColors {
		u0, v0, u1, v1 := mesh.SwatchBounds(s)
		x := int((u0 + u1) / 2 * proceduralSize)
		y := int((v0 + v1) / 2 * proceduralSize)
		if got := img.RGBAAt(x, y); got != want {
			t.Errorf("swatch %d centre = %v, want %v", s, got, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := Generate("wall"), Generate("wall")
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Generate is not deterministic")
	}
	if a.Rect.Dx() != proceduralSize {
		t.Errorf("width = %d", a.Rect.Dx())
	}
}
