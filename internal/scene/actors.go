package scene

import (
	"github.com/Faultbox/durham-house/internal/engine/mesh"
	"github.com/Faultbox/durham-house/internal/sim"
)

// wheelGrey tints the car wheels.
var wheelGrey = mesh.RGB{180, 180, 180}

// dynamicParts is the number of parts Dynamic returns.
const dynamicParts = 2*carPartCount + 6 + 5

const carPartCount = 9

// Doors returns the two annex doors, each either closed in the wall or
// swung open by 90 degrees.
func Doors(leftOpen, rightOpen bool) []Part {
	b := newBuilder()
	b.texture(TexDoor)
	b.mesh(mesh.CubeKey)

	b.group("door/east")
	b.fixed(UVRightDoor)
	if rightOpen {
		b.add(tr(1.39, -0.78, 0.77), rotY(90), sc(0.13, 0.2, 0.015))
	} else {
		b.add(tr(1.27, -0.78, 0.87), sc(0.11, 0.2, 0.015))
	}

	b.group("door/west")
	b.fixed(UVLeftDoor)
	if leftOpen {
		b.add(tr(-1.39, -0.78, 0.77), rotY(90), sc(0.13, 0.2, 0.015))
	} else {
		b.add(tr(-1.27, -0.78, 0.87), sc(0.11, 0.2, 0.015))
	}
	return b.parts
}

// Dynamic returns the animated parts for s: the red car driving east, the
// blue car driving west, the walking figure and the traffic light.
func Dynamic(s sim.State) []Part {
	b := newBuilder()
	b.texture(TexColor)
	b.mesh(mesh.CubeKey)

	b.group("car/red")
	redCar(b, s.RedOffset, s.WheelRotation)
	b.group("car/blue")
	blueCar(b, s.GreenOffset, s.WheelRotation)

	b.group("walker")
	walker(b, s.WalkOffset, s.SwingAngle)

	b.group("traffic-light")
	trafficLight(b, s.ActiveLight)
	return b.parts
}

func redCar(b *builder, d, wheel float32) {
	b.tint(mesh.White)
	b.swatch(mesh.SwatchRed)
	b.add(tr(d, -0.83, 2.7), sc(0.25, 0.1, 0.2))
	b.add(tr(-0.1+d, -0.67, 2.7), sc(0.15, 0.06, 0.2))

	b.tint(wheelGrey)
	b.add(tr(-0.13+d, -0.92, 2.9), rotZ(wheel), sc(0.06, 0.06, 0.03))
	b.add(tr(0.13+d, -0.92, 2.9), rotZ(wheel), sc(0.06, 0.06, 0.03))
	b.add(tr(-0.13+d, -0.92, 2.5), rotZ(wheel), sc(0.06, 0.06, 0.03))
	b.add(tr(0.13+d, -0.92, 2.5), rotZ(wheel), sc(0.06, 0.06, 0.03))

	b.tint(mesh.White)
	b.swatch(mesh.SwatchGrey)
	b.add(tr(-0.25+d, -0.71, 2.7), sc(0.01, 0.07, 0.16))

	b.swatch(mesh.SwatchYellow)
	b.add(tr(0.25+d, -0.8, 2.82), sc(0.02, 0.04, 0.04))
	b.add(tr(0.25+d, -0.8, 2.58), sc(0.02, 0.04, 0.04))
}

// blueCar mirrors redCar on the far lane: it drives toward -x and its
// wheels turn the other way.
func blueCar(b *builder, d, wheel float32) {
	b.swatch(mesh.SwatchBlue)
	b.add(tr(-d, -0.83, 3.35), sc(0.25, 0.1, 0.2))
	b.add(tr(0.1-d, -0.67, 3.35), sc(0.15, 0.06, 0.2))

	b.tint(wheelGrey)
	b.add(tr(0.13-d, -0.92, 3.55), rotZ(-wheel), sc(0.06, 0.06, 0.03))
	b.add(tr(-0.13-d, -0.92, 3.55), rotZ(-wheel), sc(0.06, 0.06, 0.03))
	b.add(tr(0.13-d, -0.92, 3.15), rotZ(-wheel), sc(0.06, 0.06, 0.03))
	b.add(tr(-0.13-d, -0.92, 3.15), rotZ(-wheel), sc(0.06, 0.06, 0.03))

	b.tint(mesh.White)
	b.swatch(mesh.SwatchGrey)
	b.add(tr(0.25-d, -0.71, 3.35), sc(0.01, 0.07, 0.16))

	b.swatch(mesh.SwatchYellow)
	b.add(tr(-0.25-d, -0.8, 3.47), sc(0.02, 0.04, 0.04))
	b.add(tr(-0.25-d, -0.8, 3.23), sc(0.02, 0.04, 0.04))
}

// walker hangs each limb from its joint; the person mesh has its top at
// the origin so rotating swings it about the hip or shoulder.
func walker(b *builder, w, swing float32) {
	b.mesh(mesh.PersonKey)
	b.swatch(mesh.SwatchGrey)
	b.add(tr(-w, -0.44, 2.1), sc(0.1, 0.1, 0.1))
	b.add(tr(-w, -0.54, 2.1), sc(0.1, 0.26, 0.16))
	b.add(tr(-w, -0.78, 2.055), rotZ(swing), sc(0.07, 0.2, 0.07))
	b.add(tr(-w, -0.78, 2.145), rotZ(-swing), sc(0.07, 0.2, 0.07))
	b.add(tr(-w, -0.545, 1.987), rotZ(swing), sc(0.06, 0.28, 0.06))
	b.add(tr(-w, -0.545, 2.213), rotZ(-swing), sc(0.06, 0.28, 0.06))
}

// lampSwatch maps each lamp to the atlas colour it shows when lit.
var lampSwatch = map[sim.Light]mesh.Swatch{
	sim.LightRed:    mesh.SwatchRed,
	sim.LightYellow: mesh.SwatchYellow,
	sim.LightGreen:  mesh.SwatchBlue,
}

var lampHeights = [...]struct {
	light sim.Light
	y     float32
}{
	{sim.LightRed, -0.44},
	{sim.LightYellow, -0.56},
	{sim.LightGreen, -0.68},
}

func trafficLight(b *builder, active sim.Light) {
	b.mesh(mesh.CubeKey)
	b.swatch(mesh.SwatchBlack)
	b.add(tr(1.85, -0.86, 2.25), rotY(45), sc(0.03, 0.14, 0.03))
	b.add(tr(1.85, -0.56, 2.25), rotY(45), sc(0.06, 0.2, 0.06))

	for _, lamp := range lampHeights {
		if lamp.light == active {
			b.swatch(lampSwatch[lamp.light])
		} else {
			b.swatch(mesh.SwatchBlack)
		}
		b.add(tr(1.81, lamp.y, 2.29), rotY(-45), sc(0.04, 0.04, 0.005))
	}
}
