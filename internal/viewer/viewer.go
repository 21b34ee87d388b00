// Package viewer drives the scene: it advances the animation, applies
// user controls and issues one draw per scene part every frame.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/durham-house/internal/config"
	"github.com/Faultbox/durham-house/internal/engine/camera"
	"github.com/Faultbox/durham-house/internal/engine/lighting"
	"github.com/Faultbox/durham-house/internal/engine/matstack"
	"github.com/Faultbox/durham-house/internal/engine/mesh"
	"github.com/Faultbox/durham-house/internal/engine/renderer"
	"github.com/Faultbox/durham-house/internal/logger"
	"github.com/Faultbox/durham-house/internal/scene"
	"github.com/Faultbox/durham-house/internal/sim"
	"github.com/Faultbox/durham-house/pkg/math"
)

// Drawer is the part of the renderer the viewer needs.
type Drawer interface {
	Begin(view, proj math.Mat4, light lighting.Light, width, height int32)
	Draw(stack *matstack.Stack, model math.Mat4, d renderer.DrawCall) error
	Close()
}

// Textures is the part of the texture registry the viewer needs.
type Textures interface {
	LoadAsync(ctx context.Context)
	Poll() int
	Handle(name string) (uint32, bool)
	Pending() int
	Close()
}

// Options are the viewer's collaborators.
type Options struct {
	Drawer   Drawer
	Textures Textures
	Alerts   Alerter    // nil drops alerts after logging them
	Rand     *rand.Rand // nil seeds from the config, or the clock when the seed is 0
}

// Snapshot is the state shown by the control panel.
type Snapshot struct {
	XAngle, YAngle float32
	FOV            float32
	Eye            math.Vec3
	State          sim.State

	Frames          uint64
	Drawn           int // parts drawn in the last frame
	Skipped         int // parts whose texture was not ready
	Failed          int // parts that have failed to draw at least once
	TexturesPending int
}

// Viewer owns the per-run state of the scene.
type Viewer struct {
	cam    *camera.Camera
	state  sim.State
	rng    *rand.Rand
	light  lighting.Light
	stack  *matstack.Stack
	meshes *mesh.Library

	drawer   Drawer
	textures Textures
	alerts   Alerter
	log      *zap.Logger

	// loaded is the last config taken by New or Apply.
	loaded config.Config

	uvs    map[scene.UV][]float32
	colors map[scene.Colors][]float32
	failed map[string]bool

	frames  uint64
	drawn   int
	skipped int
}

// New creates a viewer from cfg. Texture loading starts immediately.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Viewer, error) {
	if opts.Drawer == nil || opts.Textures == nil {
		return nil, errors.New("viewer: drawer and textures are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Simulation.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	v := &Viewer{
		cam:      camera.New(cfg.CameraSettings()),
		state:    sim.NewState(cfg.SimSettings()),
		rng:      rng,
		light:    cfg.LightSettings(),
		stack:    matstack.New(4),
		meshes:   mesh.NewLibrary(),
		drawer:   opts.Drawer,
		textures: opts.Textures,
		alerts:   opts.Alerts,
		log:      logger.Named("viewer"),
		uvs:      make(map[scene.UV][]float32),
		colors:   make(map[scene.Colors][]float32),
		failed:   make(map[string]bool),
		loaded:   *cfg,
	}
	v.textures.LoadAsync(ctx)
	return v, nil
}

// Update advances the animation by dt seconds and uploads any textures
// that finished loading. The animation runs whether or not textures are
// ready.
func (v *Viewer) Update(dt float32) {
	v.state.Advance(dt, v.rng)
	if n := v.textures.Poll(); n > 0 {
		v.log.Debug("textures uploaded", zap.Int("count", n), zap.Int("pending", v.textures.Pending()))
	}
}

// Render draws every part of the current frame in order. Parts whose
// texture is not ready are skipped; a part that fails to draw is logged
// the first time and skipped.
func (v *Viewer) Render(width, height int32) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	aspect := float32(width) / float32(height)
	v.drawer.Begin(v.cam.View(), v.cam.Projection(aspect), v.light, width, height)

	root := v.cam.Root()
	v.drawn, v.skipped = 0, 0
	for _, p := range scene.Frame(v.state) {
		tex, ok := v.textures.Handle(p.Texture)
		if !ok {
			v.skipped++
			continue
		}
		m, err := v.meshes.Get(p.Mesh)
		if err != nil {
			v.fail(p, err)
			continue
		}
		call := renderer.DrawCall{
			Mesh:    m,
			Texture: tex,
			UV:      v.uvFor(p.UV),
			Colors:  v.colorsFor(p.Colors, m),
		}
		if err := v.drawer.Draw(v.stack, root.Mul(p.Model()), call); err != nil {
			v.fail(p, err)
			continue
		}
		v.drawn++
	}
	v.frames++

	if depth := v.stack.Depth(); depth != 0 {
		v.stack.Reset()
		return fmt.Errorf("matrix stack holds %d transforms after frame %d", depth, v.frames)
	}
	return nil
}

func (v *Viewer) fail(p scene.Part, err error) {
	if v.failed[p.Name] {
		return
	}
	v.failed[p.Name] = true
	v.log.Error("part not drawn",
		zap.String("part", p.Name),
		zap.Stringer("mesh", p.Mesh),
		zap.Error(err))
}

func (v *Viewer) uvFor(uv scene.UV) []float32 {
	if c, ok := v.uvs[uv]; ok {
		return c
	}
	c := uv.Coords()
	v.uvs[uv] = c
	return c
}

func (v *Viewer) colorsFor(c scene.Colors, m *mesh.Mesh) []float32 {
	if !c.Set {
		return m.Colors
	}
	if f, ok := v.colors[c]; ok {
		return f
	}
	f := c.Floats(m)
	v.colors[c] = f
	return f
}

// Handle applies a user control. A rejected control leaves the state
// unchanged, raises an alert and returns the error.
func (v *Viewer) Handle(a Action) error {
	var err error
	switch a.Kind {
	case RotateUp:
		v.cam.RotateUp()
	case RotateDown:
		v.cam.RotateDown()
	case RotateLeft:
		v.cam.RotateLeft()
	case RotateRight:
		v.cam.RotateRight()
	case ZoomIn:
		err = v.cam.Zoom(-1)
	case ZoomOut:
		err = v.cam.Zoom(1)
	case ToggleLeftDoor:
		v.state.ToggleLeftDoor()
	case ToggleRightDoor:
		v.state.ToggleRightDoor()
	case RedSlower:
		err = v.state.AdjustRedSpeed(false)
	case RedFaster:
		err = v.state.AdjustRedSpeed(true)
	case GreenSlower:
		err = v.state.AdjustGreenSpeed(false)
	case GreenFaster:
		err = v.state.AdjustGreenSpeed(true)
	case WalkSlower:
		err = v.state.AdjustWalkSpeed(false)
	case WalkFaster:
		err = v.state.AdjustWalkSpeed(true)
	case SetEye:
		v.cam.SetEye(a.Eye)
	case SetFOV:
		err = v.cam.SetFOV(a.FOV)
	case ResetCamera:
		v.cam.Reset()
	default:
		return fmt.Errorf("unknown action %v", a.Kind)
	}

	if err != nil {
		v.log.Warn("control rejected", zap.Stringer("action", a.Kind), zap.Error(err))
		if v.alerts != nil {
			v.alerts.Alert(err.Error())
		}
		return err
	}
	v.log.Debug("control", zap.Stringer("action", a.Kind))
	return nil
}

// Apply takes the reloadable settings from cfg. Lighting, clear color and
// camera steps always follow cfg. Speeds and field of view are only taken
// when they differ from the previously loaded config, so runtime changes
// survive edits to unrelated settings. An invalid cfg is ignored.
func (v *Viewer) Apply(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		v.log.Warn("ignoring invalid config", zap.String("source", cfg.Source), zap.Error(err))
		return
	}
	prev := v.loaded
	v.loaded = *cfg

	v.state.SetSpeeds(changedSpeeds(prev.SimSettings(), cfg.SimSettings()))
	v.light = cfg.LightSettings()

	cc := cfg.CameraSettings()
	v.cam.SetLimits(cc)
	if cc.FOV != prev.Camera.FOV {
		if err := v.cam.SetFOV(cc.FOV); err != nil {
			v.log.Warn("config field of view rejected", zap.Float32("fov", cc.FOV), zap.Error(err))
		}
	}
	if cs, ok := v.drawer.(interface{ SetClearColor([3]float32) }); ok {
		cs.SetClearColor(cfg.Graphics.ClearColor)
	}
	v.log.Info("config applied", zap.String("source", cfg.Source))
}

// changedSpeeds keeps the speeds of next that differ from prev. The others
// are zero, which SetSpeeds leaves alone.
func changedSpeeds(prev, next sim.Config) sim.Config {
	var out sim.Config
	if next.RedSpeed != prev.RedSpeed {
		out.RedSpeed = next.RedSpeed
	}
	if next.GreenSpeed != prev.GreenSpeed {
		out.GreenSpeed = next.GreenSpeed
	}
	if next.WalkSpeed != prev.WalkSpeed {
		out.WalkSpeed = next.WalkSpeed
	}
	return out
}

// Snapshot returns the current state for display.
func (v *Viewer) Snapshot() Snapshot {
	return Snapshot{
		XAngle:          v.cam.XAngle,
		YAngle:          v.cam.YAngle,
		FOV:             v.cam.FOV,
		Eye:             v.cam.Eye,
		State:           v.state,
		Frames:          v.frames,
		Drawn:           v.drawn,
		Skipped:         v.skipped,
		Failed:          len(v.failed),
		TexturesPending: v.textures.Pending(),
	}
}

// Close releases the textures and the renderer.
func (v *Viewer) Close() {
	v.textures.Close()
	v.drawer.Close()
}
