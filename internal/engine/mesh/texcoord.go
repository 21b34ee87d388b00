package mesh

// Faces is a set of logical faces.
type Faces uint8

const (
	FaceFront Faces = 1 << iota
	FaceRight
	FaceUp
	FaceLeft
	FaceDown
	FaceBack

	FacesNone Faces = 0
	FacesAll        = FaceFront | FaceRight | FaceUp | FaceLeft | FaceDown | FaceBack
)

// UVFloats is the length of a per-draw texture-coordinate array.
const UVFloats = VertexCount * 2

// FacesOf builds a face set from six flags in front, right, up, left,
// down, back order.
func FacesOf(front, right, up, left, down, back bool) Faces {
	var f Faces
	for i, on := range [FaceCount]bool{front, right, up, left, down, back} {
		if on {
			f |= 1 << i
		}
	}
	return f
}

// Has reports whether face is in the set.
func (f Faces) Has(face Faces) bool {
	return f&face == face
}

// Tiling describes texture coordinates that repeat a texture once per
// Offset world units across a primitive scaled by (X, Y, Z).
type Tiling struct {
	Offset  float32
	X, Y, Z float32
	Faces   Faces
}

// Coords returns the per-vertex coordinates of t.
func (t Tiling) Coords() []float32 {
	return TileUV(t.Offset, t.X, t.Y, t.Z, t.Faces)
}

// TileUV computes texture coordinates for a primitive scaled by
// (sx, sy, sz) so that the texture repeats sx/offset times along x, and
// likewise for y and z. Faces outside the set get all-zero coordinates.
func TileUV(offset, sx, sy, sz float32, faces Faces) []float32 {
	x, y, z := sx/offset, sy/offset, sz/offset
	quads := [FaceCount][8]float32{
		{x, y, 0, y, 0, 0, x, 0},
		{0, y, 0, 0, z, 0, z, y},
		{x, 0, x, z, 0, z, 0, 0},
		{z, y, 0, y, 0, 0, z, 0},
		{0, 0, x, 0, x, z, 0, z},
		{0, 0, x, 0, x, y, 0, y},
	}
	out := make([]float32, 0, UVFloats)
	for i, q := range quads {
		if !faces.Has(1 << i) {
			q = [8]float32{}
		}
		out = append(out, q[:]...)
	}
	return out
}

// Swatch names a region of the color atlas.
type Swatch int

const (
	SwatchRed Swatch = iota
	SwatchGrey
	SwatchBlue
	SwatchYellow
	SwatchBlack
)

var swatchQuads = [...][8]float32{
	SwatchRed:    {0, 0.6, 0.4, 0.6, 0.4, 1, 0, 1},
	SwatchGrey:   {0.6, 0, 0.7, 0, 0.7, 0.4, 0.6, 0.4},
	SwatchBlue:   {0.6, 0.6, 1, 0.6, 1, 1, 0.6, 1},
	SwatchYellow: {0, 0, 0, 0.4, 0.4, 0.4, 0.4, 0},
	SwatchBlack:  {0.8, 0, 1, 0, 1, 0.4, 0.8, 0.4},
}

// SwatchBounds returns the atlas rectangle (u0, v0, u1, v1) covered by s.
func SwatchBounds(s Swatch) (u0, v0, u1, v1 float32) {
	q := swatchQuads[s]
	u0, v0, u1, v1 = q[0], q[1], q[0], q[1]
	for i := 0; i < 8; i += 2 {
		u0, u1 = min(u0, q[i]), max(u1, q[i])
		v0, v1 = min(v0, q[i+1]), max(v1, q[i+1])
	}
	return u0, v0, u1, v1
}

// AtlasQuad maps every face onto the same atlas swatch.
func AtlasQuad(s Swatch) []float32 {
	return repeatQuad(swatchQuads[s])
}

// WindowUV maps the whole texture onto every face of a pane.
func WindowUV() []float32 {
	return faceQuads([FaceCount][8]float32{
		{1, 1, 0, 1, 0, 0, 1, 0},
		{0, 1, 0, 0, 1, 0, 1, 1},
		{1, 0, 1, 1, 0, 1, 0, 0},
		{1, 1, 0, 1, 0, 0, 1, 0},
		{0, 0, 1, 0, 1, 1, 0, 1},
		{0, 0, 1, 0, 1, 1, 0, 1},
	})
}

// RightDoorUV maps the door texture onto the front and back faces only.
func RightDoorUV() []float32 {
	return faceQuads([FaceCount][8]float32{
		{0, 0, 1, 0, 1, 1, 0, 1},
		{}, {}, {}, {},
		{0, 1, 1, 1, 1, 0, 0, 0},
	})
}

// LeftDoorUV is RightDoorUV mirrored horizontally.
func LeftDoorUV() []float32 {
	return faceQuads([FaceCount][8]float32{
		{1, 0, 0, 0, 0, 1, 1, 1},
		{}, {}, {}, {},
		{1, 1, 0, 1, 0, 0, 1, 0},
	})
}

func repeatQuad(q [8]float32) []float32 {
	var faces [FaceCount][8]float32
	for i := range faces {
		faces[i] = q
	}
	return faceQuads(faces)
}

func faceQuads(faces [FaceCount][8]float32) []float32 {
	out := make([]float32, 0, UVFloats)
	for _, q := range faces {
		out = append(out, q[:]...)
	}
	return out
}
