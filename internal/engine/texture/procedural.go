package texture

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/Faultbox/durham-house/internal/engine/mesh"
)

const proceduralSize = 64

var swatchColors = map[mesh.Swatch]color.RGBA{
	mesh.SwatchRed:    {200, 30, 30, 255},
	mesh.SwatchGrey:   {128, 128, 128, 255},
	mesh.SwatchBlue:   {30, 60, 200, 255},
	mesh.SwatchYellow: {230, 200, 40, 255},
	mesh.SwatchBlack:  {20, 20, 20, 255},
}

var flatColors = map[string]color.RGBA{
	"grassroad":     {96, 140, 70, 255},
	"asphalt":       {70, 70, 75, 255},
	"white_asphalt": {225, 225, 220, 255},
	"grass":         {80, 150, 60, 255},
	"wall":          {190, 150, 120, 255},
	"glass":         {150, 190, 220, 255},
	"door":          {110, 70, 40, 255},
}

// Generate builds a stand-in image for a texture whose file could not be
// read. "color" gets an atlas with every swatch in its region; every
// other name gets a lightly speckled flat tint. Output is deterministic.
func Generate(name string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, proceduralSize, proceduralSize))
	if name == "color" {
		paintAtlas(img)
		return img
	}

	base, ok := flatColors[name]
	if !ok {
		base = color.RGBA{255, 0, 255, 255}
	}
	rng := rand.New(rand.NewSource(int64(len(name))))
	for y := 0; y < proceduralSize; y++ {
		for x := 0; x < proceduralSize; x++ {
			d := uint8(rng.Intn(16))
			img.SetRGBA(x, y, color.RGBA{sub(base.R, d), sub(base.G, d), sub(base.B, d), 255})
		}
	}
	return img
}

func sub(v, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}

// paintAtlas fills each swatch rectangle. Rows are uploaded top-first, so
// pixel row y samples at v = y/size.
func paintAtlas(img *image.RGBA) {
	for s, c := range swatchColors {
		u0, v0, u1, v1 := mesh.SwatchBounds(s)
		x0, x1 := int(u0*proceduralSize), int(u1*proceduralSize)
		y0, y1 := int(v0*proceduralSize), int(v1*proceduralSize)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
