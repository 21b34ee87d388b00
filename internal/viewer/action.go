package viewer

import (
	"fmt"

	"github.com/Faultbox/durham-house/pkg/math"
)

// ActionKind is a user control.
type ActionKind int

const (
	RotateUp ActionKind = iota
	RotateDown
	RotateLeft
	RotateRight
	ZoomIn
	ZoomOut
	ToggleLeftDoor
	ToggleRightDoor
	RedSlower
	RedFaster
	GreenSlower
	GreenFaster
	WalkSlower
	WalkFaster
	SetEye
	SetFOV
	ResetCamera
)

var actionNames = [...]string{
	RotateUp:        "rotate-up",
	RotateDown:      "rotate-down",
	RotateLeft:      "rotate-left",
	RotateRight:     "rotate-right",
	ZoomIn:          "zoom-in",
	ZoomOut:         "zoom-out",
	ToggleLeftDoor:  "toggle-left-door",
	ToggleRightDoor: "toggle-right-door",
	RedSlower:       "red-slower",
	RedFaster:       "red-faster",
	GreenSlower:     "green-slower",
	GreenFaster:     "green-faster",
	WalkSlower:      "walk-slower",
	WalkFaster:      "walk-faster",
	SetEye:          "set-eye",
	SetFOV:          "set-fov",
	ResetCamera:     "reset-camera",
}

func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is one user control. Eye is read by SetEye and FOV by SetFOV.
type Action struct {
	Kind ActionKind
	Eye  math.Vec3
	FOV  float32
}

// Do returns an action without parameters.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}
