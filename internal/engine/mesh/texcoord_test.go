package mesh

import "testing"

func TestTileUVMaxEqualsScaleOverOffset(t *testing.T) {
	tests := []struct {
		name       string
		offset     float32
		sx, sy, sz float32
		face       int
		wantU      float32
		wantV      float32
	}{
		{"front", 0.5, 2, 1, 3, 0, 4, 2},
		{"right", 0.5, 2, 1, 3, 1, 6, 2},
		{"up", 0.4, 2, 0.02, 0.3, 2, 5, 0.75},
		{"left", 0.5, 2, 1, 3, 3, 6, 2},
		{"down", 0.35, 0.23, 0.02, 1.18, 4, 0.23 / 0.35, 1.18 / 0.35},
		{"back", 0.5, 1, 0.6, 0.03, 5, 2, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := TileUV(tt.offset, tt.sx, tt.sy, tt.sz, FacesAll)
			if len(uv) != UVFloats {
				t.Fatalf("len = %d, want %d", len(uv), UVFloats)
			}
			var maxU, maxV float32
			for i := 0; i < 4; i++ {
				maxU = max(maxU, uv[tt.face*8+i*2])
				maxV = max(maxV, uv[tt.face*8+i*2+1])
			}
			if abs(maxU-tt.wantU) > 1e-5 || abs(maxV-tt.wantV) > 1e-5 {
				t.Errorf("max (u,v) = (%f,%f), want (%f,%f)", maxU, maxV, tt.wantU, tt.wantV)
			}
		})
	}
}

func TestTileUVDisabledFacesAreZero(t *testing.T) {
	uv := TileUV(0.5, 2, 2, 2, FaceUp)
	for i, v := range uv {
		face := i / 8
		if face == 2 {
			continue
		}
		if v != 0 {
			t.Fatalf("uv[%d] (face %d) = %f, want 0", i, face, v)
		}
	}
	if uv[16] != 4 {
		t.Errorf("up face first u = %f, want 4", uv[16])
	}
}

func TestFacesOf(t *testing.T) {
	if got := FacesOf(true, true, true, true, true, true); got != FacesAll {
		t.Errorf("all flags = %b, want %b", got, FacesAll)
	}
	got := FacesOf(true, true, false, true, false, true)
	if got.Has(FaceUp) || got.Has(FaceDown) || !got.Has(FaceFront|FaceBack) {
		t.Errorf("FacesOf mixed = %b", got)
	}
}

func TestAtlasQuadRepeats(t *testing.T) {
	uv := AtlasQuad(SwatchRed)
	for f := 1; f < FaceCount; f++ {
		for i := 0; i < 8; i++ {
			if uv[f*8+i] != uv[i] {
				t.Fatalf("face %d differs from face 0", f)
			}
		}
	}
	u0, v0, u1, v1 := SwatchBounds(SwatchRed)
	if u0 != 0 || v0 != 0.6 || u1 != 0.4 || v1 != 1 {
		t.Errorf("SwatchBounds(red) = %v %v %v %v", u0, v0, u1, v1)
	}
}

func TestDoorUVOnlyFrontAndBack(t *testing.T) {
	for name, uv := range map[string][]float32{"right": RightDoorUV(), "left": LeftDoorUV()} {
		for i := 8; i < 40; i++ {
			if uv[i] != 0 {
				t.Errorf("%s door uv[%d] = %f, want 0", name, i, uv[i])
				break
			}
		}
	}
}

func TestFaceColors(t *testing.T) {
	c := FaceColors(Uniform(RGB{180, 180, 180}))
	if len(c) != ColorFloats {
		t.Fatalf("len = %d, want %d", len(c), ColorFloats)
	}
	want := float32(180) / 255
	for i, v := range c {
		if abs(v-want) > 1e-6 {
			t.Fatalf("color[%d] = %f, want %f", i, v, want)
		}
	}
	if abs(want-0.7059) > 1e-4 {
		t.Errorf("180/255 = %f", want)
	}
}

func TestFaceColorsPerFace(t *testing.T) {
	sides := [FaceCount]RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, White, {}, {51, 102, 153}}
	c := FaceColors(sides)
	for f, s := range sides {
		for v := 0; v < VertsPerFace; v++ {
			i := (f*VertsPerFace + v) * 3
			for k := 0; k < 3; k++ {
				if want := float32(s[k]) / 255; c[i+k] != want {
					t.Fatalf("face %d vertex %d channel %d = %f, want %f", f, v, k, c[i+k], want)
				}
			}
		}
	}
}
