// Package input turns key presses into discrete camera steps.
package input

import (
	"github.com/taigrr/scanline/pkg/render"
)

// Command is one discrete camera action.
type Command int

const (
	None Command = iota
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	TiltUp
	TiltDown
	TurnLeft
	TurnRight
	Reset
	Quit
)

var commandNames = [...]string{
	None:        "none",
	MoveForward: "move-forward",
	MoveBack:    "move-back",
	MoveLeft:    "move-left",
	MoveRight:   "move-right",
	MoveUp:      "move-up",
	MoveDown:    "move-down",
	TiltUp:      "tilt-up",
	TiltDown:    "tilt-down",
	TurnLeft:    "turn-left",
	TurnRight:   "turn-right",
	Reset:       "reset",
	Quit:        "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Steps are the fixed amounts one command moves or turns the camera.
type Steps struct {
	Move float64 // World units per move command
	Turn float64 // Radians per tilt or turn command
}

// DefaultSteps returns the default step sizes.
func DefaultSteps() Steps {
	return Steps{Move: 0.1, Turn: 0.05}
}

// Controller applies commands to a camera. Reset returns the camera to the
// position and orientation it had when the controller was created.
type Controller struct {
	Camera *render.Camera
	Steps  Steps
	Keymap Keymap

	home render.Camera
}

// NewController creates a controller for cam with the default keymap.
func NewController(cam *render.Camera, steps Steps) *Controller {
	return &Controller{
		Camera: cam,
		Steps:  steps,
		Keymap: DefaultKeymap(),
		home:   *cam,
	}
}

// Apply performs exactly one step of cmd. It returns false for Quit.
//
// Moves follow the camera's current forward and right axes; MoveUp and
// MoveDown use world Y. Tilting changes the polar angle (smaller is up) and
// turning changes the azimuth (larger turns right).
func (c *Controller) Apply(cmd Command) bool {
	cam, s := c.Camera, c.Steps

	switch cmd {
	case MoveForward:
		cam.MoveForward(s.Move)
	case MoveBack:
		cam.MoveForward(-s.Move)
	case MoveLeft:
		cam.MoveRight(-s.Move)
	case MoveRight:
		cam.MoveRight(s.Move)
	case MoveUp:
		cam.MoveUp(s.Move)
	case MoveDown:
		cam.MoveUp(-s.Move)
	case TiltUp:
		cam.Rotate(-s.Turn, 0)
	case TiltDown:
		cam.Rotate(s.Turn, 0)
	case TurnLeft:
		cam.Rotate(0, -s.Turn)
	case TurnRight:
		cam.Rotate(0, s.Turn)
	case Reset:
		cam.Position = c.home.Position
		cam.Orientation = c.home.Orientation
	case Quit:
		return false
	}
	return true
}

// HandleKey looks up a key name and applies its command. Unbound keys are
// ignored. It returns false when the key means quit.
func (c *Controller) HandleKey(name string) bool {
	cmd, ok := c.Keymap.Lookup(name)
	if !ok {
		return true
	}
	render.Logger().Debug("key", "name", name, "command", cmd)
	return c.Apply(cmd)
}
