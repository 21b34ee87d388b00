// Package camera provides the user-controlled scene camera.
package camera

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/Faultbox/durham-house/pkg/math"
)

// ErrFOVRange is returned when a field-of-view change would leave the
// allowed range. The camera keeps its previous value.
var ErrFOVRange = errors.New("The perspective parameter should be in range (1,51).")

// Config holds the initial camera parameters.
type Config struct {
	FOV       float32 // degrees
	Eye       math.Vec3
	Center    math.Vec3
	Up        math.Vec3
	Near      float32
	Far       float32
	AngleStep float32 // degrees per arrow key press
	ZoomStep  float32 // degrees per wheel notch
	MinFOV    float32 // narrowing is rejected at or below this
	MaxFOV    float32 // widening is rejected at or above this
}

// DefaultConfig returns the camera the scene was composed for.
func DefaultConfig() Config {
	return Config{
		FOV:       20,
		Eye:       math.Vec3{Z: 15},
		Center:    math.Vec3{Z: -100},
		Up:        math.Vec3{Y: 1},
		Near:      1,
		Far:       100,
		AngleStep: 3,
		ZoomStep:  2,
		MinFOV:    2,
		MaxFOV:    50,
	}
}

// Camera looks at the scene from a fixed eye while the scene itself is
// rotated about the X and Y axes by the arrow keys.
type Camera struct {
	// Scene rotation in degrees, wrapped into (-360, 360).
	XAngle float32
	YAngle float32

	FOV float32

	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3

	cfg Config
}

// New creates a camera in its initial pose.
func New(cfg Config) *Camera {
	c := &Camera{cfg: cfg}
	c.Reset()
	return c
}

// Reset restores the initial pose.
func (c *Camera) Reset() {
	c.XAngle, c.YAngle = 0, 0
	c.FOV = c.cfg.FOV
	c.Eye = c.cfg.Eye
	c.Center = c.cfg.Center
	c.Up = c.cfg.Up
}

// RotateUp tilts the scene forward by one step.
func (c *Camera) RotateUp() { c.XAngle = wrap(c.XAngle + c.cfg.AngleStep) }

// RotateDown tilts the scene back by one step.
func (c *Camera) RotateDown() { c.XAngle = wrap(c.XAngle - c.cfg.AngleStep) }

// RotateRight turns the scene by one step about Y.
func (c *Camera) RotateRight() { c.YAngle = wrap(c.YAngle + c.cfg.AngleStep) }

// RotateLeft turns the scene back by one step about Y.
func (c *Camera) RotateLeft() { c.YAngle = wrap(c.YAngle - c.cfg.AngleStep) }

func wrap(deg float32) float32 {
	return math32.Mod(deg, 360)
}

// Zoom widens the field of view for positive delta and narrows it
// otherwise, one step per call.
func (c *Camera) Zoom(delta float32) error {
	if delta > 0 {
		if c.FOV >= c.cfg.MaxFOV {
			return ErrFOVRange
		}
		c.FOV += c.cfg.ZoomStep
		return nil
	}
	if c.FOV <= c.cfg.MinFOV {
		return ErrFOVRange
	}
	c.FOV -= c.cfg.ZoomStep
	return nil
}

// SetFOV sets the field of view directly. Values outside (1,51) are rejected.
func (c *Camera) SetFOV(deg float32) error {
	if deg <= c.cfg.MinFOV-1 || deg >= c.cfg.MaxFOV+1 {
		return ErrFOVRange
	}
	c.FOV = deg
	return nil
}

// SetEye moves the eye; the camera keeps looking at its center.
func (c *Camera) SetEye(eye math.Vec3) {
	c.Eye = eye
}

// SetLimits replaces the step sizes and field-of-view bounds.
func (c *Camera) SetLimits(cfg Config) {
	c.cfg.AngleStep = cfg.AngleStep
	c.cfg.ZoomStep = cfg.ZoomStep
	c.cfg.MinFOV = cfg.MinFOV
	c.cfg.MaxFOV = cfg.MaxFOV
}

// View returns the view matrix.
func (c *Camera) View() math.Mat4 {
	return math.LookAt(c.Eye, c.Center, c.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.cfg.Near, c.cfg.Far)
}

// Root returns the scene rotation every part is composed under.
func (c *Camera) Root() math.Mat4 {
	return math.Rotate(c.YAngle, math.AxisY).Mul(math.Rotate(c.XAngle, math.AxisX))
}
