package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/durham-house/internal/viewer"
	"github.com/Faultbox/durham-house/pkg/math"
)

// Controller is the viewer as seen by the panel.
type Controller interface {
	Snapshot() viewer.Snapshot
	Handle(a viewer.Action) error
}

// keyActions maps keys held over the viewport to controls.
var keyActions = []struct {
	key    imgui.Key
	action viewer.ActionKind
}{
	{imgui.KeyUpArrow, viewer.RotateDown},
	{imgui.KeyDownArrow, viewer.RotateUp},
	{imgui.KeyLeftArrow, viewer.RotateLeft},
	{imgui.KeyRightArrow, viewer.RotateRight},
	{imgui.KeyLeftBracket, viewer.ToggleLeftDoor},
	{imgui.KeyRightBracket, viewer.ToggleRightDoor},
	{imgui.KeyR, viewer.ResetCamera},
}

// wheelAction maps a wheel movement to a zoom step. Scrolling away
// widens the view.
func wheelAction(wheel float32) (viewer.ActionKind, bool) {
	switch {
	case wheel > 0:
		return viewer.ZoomOut, true
	case wheel < 0:
		return viewer.ZoomIn, true
	}
	return 0, false
}

// Panel draws the viewport window and the control window.
type Panel struct {
	ctl Controller

	eye [3]float32
	fov float32

	// Screenshot is called when the screenshot button is pressed.
	Screenshot func()
	// Status is shown under the readout, e.g. the last screenshot path.
	Status string
}

// NewPanel creates a panel for ctl.
func NewPanel(ctl Controller) *Panel {
	return &Panel{ctl: ctl}
}

// Viewport draws the scene texture filling the left part of the
// workspace and forwards keys and the wheel while it is hovered. It
// returns the size in pixels the scene should be rendered at next frame.
func (p *Panel) Viewport(texture uint32, panelWidth float32) (int32, int32) {
	x, y, w, h := Workspace()
	viewW := max(w-panelWidth, 1)

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(viewW, h))
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse |
		imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoTitleBar
	defer imgui.End()
	if !imgui.BeginV("Scene", nil, flags) {
		return 1, 1
	}

	avail := imgui.ContentRegionAvail()
	tex := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(*tex,
		avail,
		imgui.NewVec2(0, 1), // GL textures are bottom-up
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if imgui.IsItemHovered() {
		for _, ka := range keyActions {
			if IsKeyPressed(ka.key) {
				p.do(viewer.Do(ka.action))
			}
		}
		if kind, ok := wheelAction(imgui.CurrentIO().MouseWheel()); ok {
			p.do(viewer.Do(kind))
		}
	}

	sx, sy := FramebufferScale()
	return int32(avail.X * sx), int32(avail.Y * sy)
}

// Controls draws the control window on the right of the workspace.
func (p *Panel) Controls(width float32) {
	x, y, w, h := Workspace()
	snap := p.ctl.Snapshot()

	imgui.SetNextWindowPos(imgui.NewVec2(x+w-width, y))
	imgui.SetNextWindowSize(imgui.NewVec2(width, h))
	defer imgui.End()
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNoResize|imgui.WindowFlagsNoMove|imgui.WindowFlagsNoCollapse) {
		return
	}

	imgui.Text("Camera")
	imgui.Separator()
	p.eye = [3]float32{snap.Eye.X, snap.Eye.Y, snap.Eye.Z}
	changed := imgui.SliderFloatV("Eye X", &p.eye[0], -30, 30, "%.2f", imgui.SliderFlagsNone)
	changed = imgui.SliderFloatV("Eye Y", &p.eye[1], -30, 30, "%.2f", imgui.SliderFlagsNone) || changed
	changed = imgui.SliderFloatV("Eye Z", &p.eye[2], -30, 30, "%.2f", imgui.SliderFlagsNone) || changed
	if changed {
		p.do(viewer.Action{Kind: viewer.SetEye, Eye: math.Vec3{X: p.eye[0], Y: p.eye[1], Z: p.eye[2]}})
	}

	p.fov = snap.FOV
	if imgui.SliderFloatV("FOV", &p.fov, 1, 51, "%.1f", imgui.SliderFlagsNone) {
		p.do(viewer.Action{Kind: viewer.SetFOV, FOV: p.fov})
	}
	if imgui.Button("Reset camera") {
		p.do(viewer.Do(viewer.ResetCamera))
	}

	imgui.Spacing()
	imgui.Text("Doors")
	imgui.Separator()
	if imgui.Button("Left door") {
		p.do(viewer.Do(viewer.ToggleLeftDoor))
	}
	imgui.SameLine()
	if imgui.Button("Right door") {
		p.do(viewer.Do(viewer.ToggleRightDoor))
	}

	imgui.Spacing()
	imgui.Text("Speeds")
	imgui.Separator()
	p.speedRow("Red car", viewer.RedSlower, viewer.RedFaster)
	p.speedRow("Green car", viewer.GreenSlower, viewer.GreenFaster)
	p.speedRow("Walker", viewer.WalkSlower, viewer.WalkFaster)

	imgui.Spacing()
	imgui.Text("State")
	imgui.Separator()
	for _, line := range StatusLines(snap) {
		imgui.TextUnformatted(line)
	}

	if p.Screenshot != nil {
		imgui.Spacing()
		if imgui.ButtonV("Screenshot", imgui.NewVec2(-1, 0)) {
			p.Screenshot()
		}
	}
	if p.Status != "" {
		imgui.TextWrapped(p.Status)
	}
}

func (p *Panel) speedRow(label string, slower, faster viewer.ActionKind) {
	if imgui.Button("-##" + label) {
		p.do(viewer.Do(slower))
	}
	imgui.SameLine()
	if imgui.Button("+##" + label) {
		p.do(viewer.Do(faster))
	}
	imgui.SameLine()
	imgui.Text(label)
}

// do forwards a control. Rejections are already alerted and logged by the
// viewer.
func (p *Panel) do(a viewer.Action) {
	_ = p.ctl.Handle(a)
}

// StatusLines formats the readout shown in the control window.
func StatusLines(s viewer.Snapshot) []string {
	door := func(open bool) string {
		if open {
			return "open"
		}
		return "closed"
	}
	return []string{
		fmt.Sprintf("Rotation: x %.0f, y %.0f", s.XAngle, s.YAngle),
		fmt.Sprintf("FOV: %.1f", s.FOV),
		fmt.Sprintf("Eye: (%.2f, %.2f, %.2f)", s.Eye.X, s.Eye.Y, s.Eye.Z),
		fmt.Sprintf("Speeds: red %.3f, green %.3f, walk %.3f", s.State.RedSpeed, s.State.GreenSpeed, s.State.WalkSpeed),
		fmt.Sprintf("Traffic light: %s", s.State.ActiveLight),
		fmt.Sprintf("Doors: left %s, right %s", door(s.State.LeftDoorOpen), door(s.State.RightDoorOpen)),
		fmt.Sprintf("Parts: %d drawn, %d waiting, %d failed", s.Drawn, s.Skipped, s.Failed),
		fmt.Sprintf("Textures loading: %d", s.TexturesPending),
		fmt.Sprintf("Frames: %d", s.Frames),
	}
}
