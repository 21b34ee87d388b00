package scene

import (
	"github.com/Faultbox/durham-house/internal/engine/mesh"
	"github.com/Faultbox/durham-house/pkg/math"
	"github.com/chewxy/math32"
)

// Texture repeat lengths in world units.
const (
	roadTile float32 = 0.4
	lawnTile float32 = 0.35
	wallTile float32 = 0.5
)

// Bay window side panels sit at 67 and 113 degrees; mullions slide along
// the panel by these amounts.
const (
	windowShift float32 = 0.046
	wallShift   float32 = 0.04
)

var bayTan = math32.Tan(math.Radians(67))

// roads lays the grass verge, the two asphalt lanes and the centre line.
func roads(b *builder) {
	b.texture(TexGrassRoad)
	b.group("road/verge")
	b.mesh(mesh.CubeKey)
	b.tile(roadTile, 2, 0.02, 0.5, mesh.FaceUp)
	b.add(tr(0, -1, 2.08), sc(2, 0.02, 0.3))
	b.texture(TexAsphalt)
	b.group("road/asphalt")
	b.add(tr(0, -1, 2.68), sc(2, 0.02, 0.3))
	b.add(tr(0, -1, 3.36), sc(2, 0.02, 0.3))
	b.texture(TexWhiteAsphalt)
	b.group("road/centre-line")
	b.add(tr(0, -1, 3.02), sc(2, 0.02, 0.04))
}

// lawn covers the ground around the house, including the wedges that
// fill the gaps under the bay windows.
func lawn(b *builder) {
	b.texture(TexGrass)
	b.mesh(mesh.CubeKey)
	b.group("lawn")
	b.tile(lawnTile, 2, 0.02, 0.41, mesh.FaceUp)
	b.add(tr(0, -1, 1.48), sc(2, 0.02, 0.3))
	b.add(tr(0, -1, -1.59), sc(2, 0.02, 0.41))
	b.tile(lawnTile, 0.23, 0.02, 1.18, mesh.FaceUp)
	b.add(tr(1.77, -1, 0), sc(0.23, 0.02, 1.18))
	b.add(tr(-1.77, -1, 0), sc(0.23, 0.02, 1.18))
	b.tile(lawnTile, 0.3, 0.02, 0.17, mesh.FaceUp)
	b.add(tr(-1.24, -1, 1.01), sc(0.3, 0.02, 0.17))
	b.add(tr(-1.24, -1, -1.01), sc(0.3, 0.02, 0.17))
	b.add(tr(1.24, -1, 1.01), sc(0.3, 0.02, 0.17))
	b.add(tr(1.24, -1, -1.01), sc(0.3, 0.02, 0.17))
	b.mesh(mesh.PrismKey(0.54, false))
	b.group("lawn/bay-gap")
	b.tile(lawnTile, 0.195, 0.02, 0.12, mesh.FaceUp)
	b.add(tr(0, -1, 1.06), rotY(180), sc(0.195, 0.02, 0.12))
	b.add(tr(0, -1, -1.06), sc(0.195, 0.02, 0.12))
	b.mesh(mesh.PrismKey(0.86, true))
	b.group("lawn/corner-gap")
	b.tile(lawnTile, 0.118, 0.02, 0.12, mesh.FaceUp)
	b.add(tr(-0.827, -1, 1.06), rotY(180), sc(0.118, 0.02, 0.12))
	b.tile(lawnTile, 0.118, 0.02, 0.12, mesh.FaceDown)
	b.add(tr(0.827, -1, 1.06), rotX(180), sc(0.118, 0.02, 0.12))
	b.tile(lawnTile, 0.118, 0.02, 0.12, mesh.FaceDown)
	b.add(tr(-0.827, -1, -1.06), rotZ(180), sc(0.118, 0.02, 0.12))
	b.tile(lawnTile, 0.118, 0.02, 0.12, mesh.FaceUp)
	b.add(tr(0.827, -1, -1.06), sc(0.118, 0.02, 0.12))
}

// walls builds the main building, its four bay window frames, the two
// annexes, the chimney, the fences and the attic blocks.
func walls(b *builder) {
	b.texture(TexWall)
	b.mesh(mesh.CubeKey)
	b.group("main/facade")
	b.tile(wallTile, 1, 0.18, 0.03, mesh.FacesAll)
	b.add(tr(0, 0.435, 0.97), sc(1, 0.18, 0.03))
	b.add(tr(0, 0.435, -0.97), sc(1, 0.18, 0.03))
	b.tile(wallTile, 0.095, 0.62, 0.03, mesh.FacesAll &^ mesh.FaceDown)
	b.add(tr(-0.905, -0.365, 0.97), sc(0.095, 0.62, 0.03))
	b.add(tr(0, -0.365, 0.97), sc(0.095, 0.62, 0.03))
	b.add(tr(0.905, -0.365, 0.97), sc(0.095, 0.62, 0.03))
	b.add(tr(-0.905, -0.365, -0.97), sc(0.095, 0.62, 0.03))
	b.add(tr(0, -0.365, -0.97), sc(0.095, 0.62, 0.03))
	b.add(tr(0.905, -0.365, -0.97), sc(0.095, 0.62, 0.03))
	b.group("main/annex-joint")
	b.tile(wallTile, 0.03, 0.6, 0.08, mesh.FacesAll)
	b.add(tr(0.97, -0.38, 0.92), sc(0.03, 0.6, 0.08))
	b.add(tr(0.97, -0.38, -0.92), sc(0.03, 0.6, 0.08))
	b.add(tr(-0.97, -0.38, 0.92), sc(0.03, 0.6, 0.08))
	b.add(tr(-0.97, -0.38, -0.92), sc(0.03, 0.6, 0.08))
	b.group("main/side-wall")
	b.tile(wallTile, 0.03, 0.2, 1, mesh.FacesAll)
	b.add(tr(-0.97, 0.42, 0), sc(0.03, 0.2, 1))
	b.add(tr(0.97, 0.42, 0), sc(0.03, 0.2, 1))
	b.group("main/ceiling")
	b.tile(wallTile, 1, 0.02, 1, mesh.FacesAll)
	b.add(tr(0, 0.6, 0), sc(1, 0.02, 1))
	b.group("bay/front-east")
	b.tile(wallTile, 0.3, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(0.45, 0.225, 1.21), sc(0.3, 0.09, 0.03))
	b.add(tr(0.45, -0.89, 1.21), sc(0.3, 0.09, 0.03))
	b.tile(wallTile, 0.3, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(0.45, -0.34, 1.21), sc(0.3, 0.07, 0.03))
	b.tile(wallTile, 0.04, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0.71, -0.605, 1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(0.19, -0.605, 1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(0.71, -0.067, 1.21), sc(0.04, 0.21, 0.03))
	b.add(tr(0.19, -0.067, 1.21), sc(0.04, 0.21, 0.03))
	b.group("bay/front-east-inner")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(0.12, 0.225, 1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.add(tr(0.12, -0.89, 1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(0.12, -0.34, 1.09), rotY(113), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0.12+windowShift, -0.605, 1.09+bayTan*windowShift), rotY(113), sc(0.03, 0.2, 0.03))
	b.add(tr(0.12+windowShift, -0.067, 1.09+bayTan*windowShift), rotY(113), sc(0.03, 0.21, 0.03))
	b.add(tr(0.12-wallShift, -0.605, 1.09-bayTan*wallShift), rotY(113), sc(0.02, 0.2, 0.03))
	b.add(tr(0.12-wallShift, -0.067, 1.09-bayTan*wallShift), rotY(113), sc(0.02, 0.21, 0.03))
	b.group("bay/front-east-outer")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(0.78, 0.225, 1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.add(tr(0.78, -0.89, 1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(0.78, -0.34, 1.09), rotY(67), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0.78-windowShift, -0.605, 1.09+bayTan*windowShift), rotY(67), sc(0.03, 0.2, 0.03))
	b.add(tr(0.78-windowShift, -0.067, 1.09+bayTan*windowShift), rotY(67), sc(0.03, 0.21, 0.03))
	b.add(tr(0.78+wallShift, -0.605, 1.09-bayTan*wallShift), rotY(67), sc(0.02, 0.2, 0.03))
	b.add(tr(0.78+windowShift, -0.067, 1.09-bayTan*windowShift), rotY(67), sc(0.03, 0.21, 0.03))
	b.group("bay/front-west")
	b.tile(wallTile, 0.3, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(-0.45, 0.225, 1.21), sc(0.3, 0.09, 0.03))
	b.add(tr(-0.45, -0.89, 1.21), sc(0.3, 0.09, 0.03))
	b.tile(wallTile, 0.3, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(-0.45, -0.34, 1.21), sc(0.3, 0.07, 0.03))
	b.tile(wallTile, 0.04, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.71, -0.605, 1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(-0.19, -0.605, 1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(-0.71, -0.067, 1.21), sc(0.04, 0.21, 0.03))
	b.add(tr(-0.19, -0.067, 1.21), sc(0.04, 0.21, 0.03))
	b.group("bay/front-west-inner")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(-0.12, 0.225, 1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.add(tr(-0.12, -0.89, 1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(-0.12, -0.34, 1.09), rotY(67), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.12-windowShift, -0.605, 1.09+bayTan*windowShift), rotY(67), sc(0.03, 0.2, 0.03))
	b.add(tr(-0.12-windowShift, -0.067, 1.09+bayTan*windowShift), rotY(67), sc(0.03, 0.21, 0.03))
	b.add(tr(-0.12+wallShift, -0.605, 1.09-bayTan*wallShift), rotY(67), sc(0.02, 0.2, 0.03))
	b.add(tr(-0.12+wallShift, -0.067, 1.09-bayTan*wallShift), rotY(67), sc(0.02, 0.21, 0.03))
	b.group("bay/front-west-outer")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(-0.78, 0.225, 1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.add(tr(-0.78, -0.89, 1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(-0.78, -0.34, 1.09), rotY(113), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.78+windowShift, -0.605, 1.09+bayTan*windowShift), rotY(113), sc(0.03, 0.2, 0.03))
	b.add(tr(-0.78+windowShift, -0.067, 1.09+bayTan*windowShift), rotY(113), sc(0.03, 0.21, 0.03))
	b.add(tr(-0.78-wallShift, -0.605, 1.09-bayTan*wallShift), rotY(113), sc(0.02, 0.2, 0.03))
	b.add(tr(-0.78-windowShift, -0.067, 1.09-bayTan*windowShift), rotY(113), sc(0.03, 0.21, 0.03))
	b.group("bay/back-west")
	b.tile(wallTile, 0.3, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(-0.45, 0.225, -1.21), sc(0.3, 0.09, 0.03))
	b.add(tr(-0.45, -0.89, -1.21), sc(0.3, 0.09, 0.03))
	b.tile(wallTile, 0.3, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(-0.45, -0.34, -1.21), sc(0.3, 0.07, 0.03))
	b.tile(wallTile, 0.04, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.71, -0.605, -1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(-0.19, -0.605, -1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(-0.71, -0.067, -1.21), sc(0.04, 0.21, 0.03))
	b.add(tr(-0.19, -0.067, -1.21), sc(0.04, 0.21, 0.03))
	b.group("bay/back-west-inner")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(-0.12, 0.225, -1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.add(tr(-0.12, -0.89, -1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(-0.12, -0.34, -1.09), rotY(113), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.12-windowShift, -0.605, -1.09-bayTan*windowShift), rotY(113), sc(0.03, 0.2, 0.03))
	b.add(tr(-0.12-windowShift, -0.067, -1.09-bayTan*windowShift), rotY(113), sc(0.03, 0.21, 0.03))
	b.add(tr(-0.12+wallShift, -0.605, -1.09+bayTan*wallShift), rotY(113), sc(0.02, 0.2, 0.03))
	b.add(tr(-0.12+wallShift, -0.067, -1.09+bayTan*wallShift), rotY(113), sc(0.02, 0.21, 0.03))
	b.group("bay/back-west-outer")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(-0.78, 0.225, -1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.add(tr(-0.78, -0.89, -1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(-0.78, -0.34, -1.09), rotY(67), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.78+windowShift, -0.605, -1.09-bayTan*windowShift), rotY(67), sc(0.03, 0.2, 0.03))
	b.add(tr(-0.78+windowShift, -0.067, -1.09-bayTan*windowShift), rotY(67), sc(0.03, 0.21, 0.03))
	b.add(tr(-0.78-wallShift, -0.605, -1.09+bayTan*wallShift), rotY(67), sc(0.02, 0.2, 0.03))
	b.add(tr(-0.78-windowShift, -0.067, -1.09+bayTan*windowShift), rotY(67), sc(0.03, 0.21, 0.03))
	b.group("bay/back-east")
	b.tile(wallTile, 0.3, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(0.45, 0.225, -1.21), sc(0.3, 0.09, 0.03))
	b.add(tr(0.45, -0.89, -1.21), sc(0.3, 0.09, 0.03))
	b.tile(wallTile, 0.3, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(0.45, -0.34, -1.21), sc(0.3, 0.07, 0.03))
	b.tile(wallTile, 0.04, 0.2, 0.03, mesh.FacesAll)
	b.add(tr(0.71, -0.605, -1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(0.19, -0.605, -1.21), sc(0.04, 0.2, 0.03))
	b.add(tr(0.71, -0.067, -1.21), sc(0.04, 0.21, 0.03))
	b.add(tr(0.19, -0.067, -1.21), sc(0.04, 0.21, 0.03))
	b.group("bay/back-east-inner")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0.12, 0.225, -1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.add(tr(0.12, -0.89, -1.09), rotY(67), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(0.12, -0.34, -1.09), rotY(67), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0.12+windowShift, -0.605, -1.09-bayTan*windowShift), rotY(67), sc(0.03, 0.2, 0.03))
	b.add(tr(0.12+windowShift, -0.067, -1.09-bayTan*windowShift), rotY(67), sc(0.03, 0.21, 0.03))
	b.add(tr(0.12-wallShift, -0.605, -1.09+bayTan*wallShift), rotY(67), sc(0.02, 0.2, 0.03))
	b.add(tr(0.12-wallShift, -0.067, -1.09+bayTan*wallShift), rotY(67), sc(0.02, 0.21, 0.03))
	b.group("bay/back-east-outer")
	b.tile(wallTile, 0.15, 0.09, 0.03, mesh.FacesAll)
	b.add(tr(0.78, 0.225, -1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.add(tr(0.78, -0.89, -1.09), rotY(113), sc(0.15, 0.09, 0.03))
	b.tile(wallTile, 0.15, 0.07, 0.03, mesh.FacesAll)
	b.add(tr(0.78, -0.34, -1.09), rotY(113), sc(0.15, 0.07, 0.03))
	b.tile(wallTile, 0.03, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0.78-windowShift, -0.605, -1.09-bayTan*windowShift), rotY(113), sc(0.03, 0.2, 0.03))
	b.add(tr(0.78-windowShift, -0.067, -1.09-bayTan*windowShift), rotY(113), sc(0.03, 0.21, 0.03))
	b.add(tr(0.78+wallShift, -0.605, -1.09+bayTan*wallShift), rotY(113), sc(0.02, 0.2, 0.03))
	b.add(tr(0.78+windowShift, -0.067, -1.09+bayTan*windowShift), rotY(113), sc(0.03, 0.21, 0.03))
	b.group("annex/west")
	b.tile(wallTile, 0.03, 0.6, 0.9, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-1.57, -0.38, 0), sc(0.03, 0.6, 0.9))
	b.tile(wallTile, 0.3, 0.4, 0.03, mesh.FacesAll &^ (mesh.FaceRight | mesh.FaceUp))
	b.add(tr(-1.3, -0.18, 0.87), sc(0.3, 0.4, 0.03))
	b.tile(wallTile, 0.08, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceLeft | mesh.FaceDown))
	b.add(tr(-1.46, -0.78, 0.87), sc(0.08, 0.2, 0.03))
	b.tile(wallTile, 0.08, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceRight | mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-1.08, -0.78, 0.87), sc(0.08, 0.2, 0.03))
	b.tile(wallTile, 0.3, 0.6, 0.03, mesh.FacesAll &^ (mesh.FaceRight | mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-1.3, -0.38, -0.87), sc(0.3, 0.6, 0.03))
	b.group("annex/east")
	b.tile(wallTile, 0.03, 0.6, 0.9, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(1.57, -0.38, 0), sc(0.03, 0.6, 0.9))
	b.tile(wallTile, 0.3, 0.4, 0.03, mesh.FacesAll &^ (mesh.FaceRight | mesh.FaceUp))
	b.add(tr(1.3, -0.18, 0.87), sc(0.3, 0.4, 0.03))
	b.tile(wallTile, 0.08, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceRight | mesh.FaceUp | mesh.FaceDown))
	b.add(tr(1.46, -0.78, 0.87), sc(0.08, 0.2, 0.03))
	b.tile(wallTile, 0.08, 0.2, 0.03, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceLeft | mesh.FaceDown))
	b.add(tr(1.08, -0.78, 0.87), sc(0.08, 0.2, 0.03))
	b.tile(wallTile, 0.3, 0.6, 0.03, mesh.FacesAll &^ (mesh.FaceRight | mesh.FaceUp | mesh.FaceDown))
	b.add(tr(1.3, -0.38, -0.87), sc(0.3, 0.6, 0.03))
	b.group("chimney")
	b.tile(wallTile, 0.15, 0.25, 0.15, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0, 1.3, 0), sc(0.15, 0.25, 0.15))
	b.group("fence/front")
	b.tile(wallTile, 1, 0.07, 0.035, mesh.FacesAll &^ mesh.FaceDown)
	b.add(tr(0, -0.91, 1.5), sc(1, 0.07, 0.035))
	b.group("fence/west")
	b.tile(wallTile, 0.035, 0.07, 0.33, mesh.FacesAll &^ mesh.FaceDown)
	b.add(tr(-1.52, -0.91, 1.2), sc(0.035, 0.07, 0.33))
	b.group("fence/east")
	b.add(tr(1.52, -0.91, 1.2), sc(0.035, 0.07, 0.33))
	b.group("attic/west-block")
	b.tile(wallTile, 0.4, 0.075, 1, mesh.FacesAll &^ mesh.FaceDown)
	b.add(tr(-0.45, 0.69, 0), sc(0.4, 0.075, 1))
	b.group("attic/east-block")
	b.add(tr(0.45, 0.69, 0), sc(0.4, 0.075, 1))
	b.group("attic/front-west-top")
	b.tile(wallTile, 0.24, 0.075, 0.04, mesh.FacesAll &^ mesh.FaceDown)
	b.add(tr(-0.45, 1.08, 0.96), sc(0.24, 0.075, 0.04))
	b.group("attic/front-east-top")
	b.add(tr(0.45, 1.08, 0.96), sc(0.24, 0.075, 0.04))
	b.group("attic/back-west-top")
	b.add(tr(-0.45, 1.08, -0.96), sc(0.24, 0.075, 0.04))
	b.group("attic/back-east-top")
	b.add(tr(0.45, 1.08, -0.96), sc(0.24, 0.075, 0.04))
}

func roofs(b *builder) {
	b.texture(TexWall)
	b.mesh(mesh.GableKey)
	b.group("roof/main")
	b.tile(wallTile, 0.6, 0.3, 1, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(0, 0.915, 0), rotY(90), sc(0.6, 0.3, 1))
	b.group("attic/front-west-peak")
	b.tile(wallTile, 0.24, 0.075, 0.04, mesh.FacesAll &^ (mesh.FaceUp | mesh.FaceDown))
	b.add(tr(-0.45, 1.23, 0.96), sc(0.24, 0.075, 0.04))
	b.group("attic/front-east-peak")
	b.add(tr(0.45, 1.23, 0.96), sc(0.24, 0.075, 0.04))
	b.group("attic/back-west-peak")
	b.add(tr(-0.45, 1.23, -0.96), sc(0.24, 0.075, 0.04))
	b.group("attic/back-east-peak")
	b.add(tr(0.45, 1.23, -0.96), sc(0.24, 0.075, 0.04))
	b.mesh(mesh.ShedKey)
	b.group("roof/east-annex")
	b.tile(wallTile, 0.3, 0.2, 0.9, mesh.FacesAll &^ mesh.FaceUp)
	b.add(tr(1.3, 0.42, 0), sc(0.3, 0.2, 0.9))
	b.group("roof/west-annex")
	b.add(tr(-1.3, 0.42, 0), rotY(180), sc(0.3, 0.2, 0.9))
	b.mesh(mesh.PrismKey(0.25, false))
	b.group("bay/front-west-top")
	b.tile(wallTile, 0.4, 0.03, 0.12, mesh.FacesAll)
	b.add(tr(-0.45, 0.285, 1.12), sc(0.4, 0.03, 0.12))
	b.group("bay/front-east-top")
	b.add(tr(0.45, 0.285, 1.12), sc(0.4, 0.03, 0.12))
	b.group("bay/back-east-top")
	b.add(tr(0.45, 0.285, -1.12), rotY(180), sc(0.4, 0.03, 0.12))
	b.group("bay/back-west-top")
	b.add(tr(-0.45, 0.285, -1.12), rotY(180), sc(0.4, 0.03, 0.12))
	b.mesh(mesh.PrismKey(0.4, false))
	b.group("attic/west-prism")
	b.tile(wallTile, 0.4, 1, 0.125, mesh.FacesAll)
	b.add(tr(-0.45, 0.89, 0), rotX(270), sc(0.4, 1, 0.125))
	b.group("attic/east-prism")
	b.add(tr(0.45, 0.89, 0), rotX(270), sc(0.4, 1, 0.125))
}

// glazing places the glass panes, each showing the whole glass texture.
func glazing(b *builder) {
	b.texture(TexGlass)
	b.mesh(mesh.CubeKey)
	b.fixed(UVWindow)
	b.group("glass/bay-front-east")
	b.add(tr(0.45, -0.067, 1.21), sc(0.22, 0.21, 0.015))
	b.add(tr(0.45, -0.605, 1.21), sc(0.22, 0.2, 0.015))
	b.add(tr(0.12, -0.067, 1.09), rotY(113), sc(0.085, 0.21, 0.015))
	b.add(tr(0.12, -0.605, 1.09), rotY(113), sc(0.085, 0.2, 0.015))
	b.add(tr(0.78, -0.067, 1.09), rotY(67), sc(0.085, 0.21, 0.015))
	b.add(tr(0.78, -0.605, 1.09), rotY(67), sc(0.085, 0.2, 0.015))
	b.group("glass/bay-front-west")
	b.add(tr(-0.45, -0.067, 1.21), sc(0.22, 0.21, 0.015))
	b.add(tr(-0.45, -0.605, 1.21), sc(0.22, 0.2, 0.015))
	b.add(tr(-0.12, -0.067, 1.09), rotY(67), sc(0.085, 0.21, 0.015))
	b.add(tr(-0.12, -0.605, 1.09), rotY(67), sc(0.085, 0.2, 0.015))
	b.add(tr(-0.78, -0.067, 1.09), rotY(113), sc(0.085, 0.21, 0.015))
	b.add(tr(-0.78, -0.605, 1.09), rotY(113), sc(0.085, 0.2, 0.015))
	b.group("glass/bay-back-east")
	b.add(tr(0.45, -0.067, -1.21), sc(0.22, 0.21, 0.015))
	b.add(tr(0.45, -0.605, -1.21), sc(0.22, 0.2, 0.015))
	b.add(tr(0.12, -0.067, -1.09), rotY(67), sc(0.085, 0.21, 0.015))
	b.add(tr(0.12, -0.605, -1.09), rotY(67), sc(0.085, 0.2, 0.015))
	b.add(tr(0.78, -0.067, -1.09), rotY(113), sc(0.085, 0.21, 0.015))
	b.add(tr(0.78, -0.605, -1.09), rotY(113), sc(0.085, 0.2, 0.015))
	b.group("glass/bay-back-west")
	b.add(tr(-0.45, -0.067, -1.21), sc(0.22, 0.21, 0.015))
	b.add(tr(-0.45, -0.605, -1.21), sc(0.22, 0.2, 0.015))
	b.add(tr(-0.12, -0.067, -1.09), rotY(113), sc(0.085, 0.21, 0.015))
	b.add(tr(-0.12, -0.605, -1.09), rotY(113), sc(0.085, 0.2, 0.015))
	b.add(tr(-0.78, -0.067, -1.09), rotY(67), sc(0.085, 0.21, 0.015))
	b.add(tr(-0.78, -0.605, -1.09), rotY(67), sc(0.085, 0.2, 0.015))
	b.group("glass/attic")
	b.add(tr(0.47, 0.63, 1), sc(0.18, 0.21, 0.001))
	b.add(tr(-0.47, 0.63, 1), sc(0.18, 0.21, 0.001))
	b.add(tr(-0.47, 0.63, -1), sc(0.18, 0.21, 0.001))
	b.add(tr(0.47, 0.63, -1), sc(0.18, 0.21, 0.001))
	b.group("glass/annex")
	b.add(tr(1.27, -0.18, 0.9), sc(0.11, 0.2, 0.001))
	b.add(tr(-1.27, -0.18, 0.9), sc(0.11, 0.2, 0.001))
	b.add(tr(1.27, -0.18, -0.9), sc(0.11, 0.2, 0.001))
	b.add(tr(-1.27, -0.18, -0.9), sc(0.11, 0.2, 0.001))
	b.group("glass/annex-side")
	b.add(tr(-1.6, -0.117, 0), rotY(90), sc(0.22, 0.21, 0.001))
	b.add(tr(1.6, -0.117, 0), rotY(90), sc(0.22, 0.21, 0.001))
	b.group("glass/roof")
	b.add(tr(-1, 0.83, 0), rotY(90), sc(0.15, 0.15, 0.001))
	b.add(tr(1, 0.83, 0), rotY(90), sc(0.15, 0.15, 0.001))
}
