package mesh

// RGB is an 8-bit color.
type RGB [3]uint8

// White leaves the texture color untouched.
var White = RGB{255, 255, 255}

// Uniform returns the same color for all six faces.
func Uniform(c RGB) [FaceCount]RGB {
	return [FaceCount]RGB{c, c, c, c, c, c}
}

// ColorFloats is the length of a per-draw vertex color array.
const ColorFloats = VertexCount * 3

// FaceColors expands one color per face into normalized per-vertex colors.
func FaceColors(sides [FaceCount]RGB) []float32 {
	out := make([]float32, 0, ColorFloats)
	for _, c := range sides {
		r, g, b := float32(c[0])/255, float32(c[1])/255, float32(c[2])/255
		for j := 0; j < VertsPerFace; j++ {
			out = append(out, r, g, b)
		}
	}
	return out
}
