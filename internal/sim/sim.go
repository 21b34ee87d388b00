// Package sim advances the animated parts of the scene: the two cars, the
// walking figure, the traffic light and the doors.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
)

// Bounds of the sawtooth loops.
const (
	RoadHalfLength float32 = 1.75
	WalkHalfLength float32 = 1.95

	// SwingHalfPeriod is the phase at which the limb swing reverses.
	SwingHalfPeriod float32 = 17.5
	// TrafficPeriod is the number of seconds each light stays on.
	TrafficPeriod float32 = 3

	CarSpeedStep  float32 = 0.02
	CarSpeedFloor float32 = 0.03
	WalkSpeedStep float32 = 0.01
	WalkFloor     float32 = 0.015
)

const degPerRad = 180 / math32.Pi

// ErrSpeedFloor is returned when a speed decrement would make a speed
// non-positive.
var ErrSpeedFloor = errors.New("speed floor")

// Light is the active lamp of the traffic light.
type Light int

const (
	LightRed Light = iota + 1
	LightYellow
	LightGreen
)

func (l Light) String() string {
	switch l {
	case LightRed:
		return "red"
	case LightYellow:
		return "yellow"
	case LightGreen:
		return "green"
	default:
		return fmt.Sprintf("light(%d)", int(l))
	}
}

// Config holds the initial speeds.
type Config struct {
	RedSpeed   float32
	GreenSpeed float32
	WalkSpeed  float32
}

// DefaultConfig returns the initial speeds of the scene.
func DefaultConfig() Config {
	return Config{RedSpeed: 0.04, GreenSpeed: 0.06, WalkSpeed: 0.02}
}

// State is the whole animation state. It is advanced once per frame and
// mutated by user controls between frames.
type State struct {
	// WheelRotation is in degrees and only ever decreases.
	WheelRotation float32

	RedOffset   float32
	RedSpeed    float32
	GreenOffset float32
	GreenSpeed  float32

	// WalkPhase drives SwingAngle, the limb rotation in degrees.
	WalkPhase  float32
	SwingAngle float32
	WalkOffset float32
	WalkSpeed  float32

	TrafficTimer float32
	ActiveLight  Light

	LeftDoorOpen  bool
	RightDoorOpen bool
}

// NewState returns the state at the first frame.
func NewState(cfg Config) State {
	return State{
		RedOffset:   -RoadHalfLength,
		RedSpeed:    cfg.RedSpeed,
		GreenOffset: -RoadHalfLength,
		GreenSpeed:  cfg.GreenSpeed,
		WalkOffset:  -WalkHalfLength,
		WalkSpeed:   cfg.WalkSpeed,
		ActiveLight: LightRed,
	}
}

// Advance moves the state forward by dt seconds.
// Vehicle and walk offsets move by their speed once per call, not per second.
func (s *State) Advance(dt float32, rng *rand.Rand) {
	s.WheelRotation -= dt * degPerRad

	s.RedOffset = sawtooth(s.RedOffset+s.RedSpeed, RoadHalfLength)
	s.GreenOffset = sawtooth(s.GreenOffset+s.GreenSpeed, RoadHalfLength)

	s.WalkPhase += dt * degPerRad
	s.SwingAngle = s.WalkPhase
	if s.WalkPhase >= SwingHalfPeriod {
		s.WalkPhase = math32.Mod(s.WalkPhase, SwingHalfPeriod)
		s.SwingAngle = -s.SwingAngle
	}
	s.WalkOffset = sawtooth(s.WalkOffset+s.WalkSpeed, WalkHalfLength)

	s.TrafficTimer += dt
	if s.TrafficTimer > TrafficPeriod {
		s.ActiveLight = NextLight(s.ActiveLight, rng)
		s.TrafficTimer -= TrafficPeriod
	}
}

// sawtooth wraps v to -bound once it passes bound.
func sawtooth(v, bound float32) float32 {
	if v > bound {
		return -bound
	}
	return v
}

// NextLight picks a light uniformly from the two that are not current.
func NextLight(current Light, rng *rand.Rand) Light {
	for {
		next := Light(rng.Intn(3) + 1)
		if next != current {
			return next
		}
	}
}

// AdjustRedSpeed raises or lowers the red car's speed.
func (s *State) AdjustRedSpeed(up bool) error {
	return adjust(&s.RedSpeed, up, CarSpeedStep, CarSpeedFloor, "red car")
}

// AdjustGreenSpeed raises or lowers the green car's speed.
func (s *State) AdjustGreenSpeed(up bool) error {
	return adjust(&s.GreenSpeed, up, CarSpeedStep, CarSpeedFloor, "green car")
}

// AdjustWalkSpeed raises or lowers the walking speed.
func (s *State) AdjustWalkSpeed(up bool) error {
	return adjust(&s.WalkSpeed, up, WalkSpeedStep, WalkFloor, "walking")
}

func adjust(v *float32, up bool, step, floor float32, what string) error {
	if up {
		*v += step
		return nil
	}
	if *v < floor {
		return &SpeedError{Actor: what}
	}
	*v -= step
	return nil
}

// SpeedError reports a rejected speed decrement.
type SpeedError struct {
	Actor string
}

func (e *SpeedError) Error() string {
	if e.Actor == "walking" {
		return "Cannot set the walking speed to non-positive"
	}
	return fmt.Sprintf("Cannot set the %s speed to non-positive", e.Actor)
}

// Unwrap lets errors.Is match ErrSpeedFloor.
func (e *SpeedError) Unwrap() error {
	return ErrSpeedFloor
}

// ToggleLeftDoor opens or closes the left door.
func (s *State) ToggleLeftDoor() {
	s.LeftDoorOpen = !s.LeftDoorOpen
}

// ToggleRightDoor opens or closes the right door.
func (s *State) ToggleRightDoor() {
	s.RightDoorOpen = !s.RightDoorOpen
}

// SetSpeeds replaces the three speeds, ignoring non-positive values.
func (s *State) SetSpeeds(cfg Config) {
	if cfg.RedSpeed > 0 {
		s.RedSpeed = cfg.RedSpeed
	}
	if cfg.GreenSpeed > 0 {
		s.GreenSpeed = cfg.GreenSpeed
	}
	if cfg.WalkSpeed > 0 {
		s.WalkSpeed = cfg.WalkSpeed
	}
}
