package input

import (
	"fmt"
	"sync"
)

// Action represents a scene action, not a physical key
type Action int

const (
	ActionCubeUp Action = iota
	ActionCubeDown
	ActionCameraLeft
	ActionCameraRight
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionCubeUp:      "cube_up",
	ActionCubeDown:    "cube_down",
	ActionCameraLeft:  "camera_left",
	ActionCameraRight: "camera_right",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction returns the action with the given config name.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// KeyState is the phase of a key event as reported by the window system.
type KeyState int

const (
	KeyRelease KeyState = iota
	KeyPress
	KeyRepeat
)

// DefaultStep is the distance one key-down moves the cube or the camera.
const DefaultStep float32 = 0.1

// Target is what the actions move.
type Target interface {
	MoveCube(dy float32)
	MoveCamera(dx float32)
}

// InputManager maps printable key characters to actions and applies them to
// a target on key-down. It keeps no key state: every press and every repeat
// moves the target by one step.
type InputManager struct {
	mu sync.RWMutex

	// One key maps to at most one action; several keys may share an action.
	keyToAction map[rune]Action

	step   float32
	target Target
}

// NewInputManager creates an InputManager with the default w/s/a/d bindings.
// A non-positive step falls back to DefaultStep.
func NewInputManager(target Target, step float32) *InputManager {
	if step <= 0 {
		step = DefaultStep
	}
	im := &InputManager{
		keyToAction: make(map[rune]Action),
		step:        step,
		target:      target,
	}

	im.BindKey('w', ActionCubeUp)
	im.BindKey('s', ActionCubeDown)
	im.BindKey('a', ActionCameraLeft)
	im.BindKey('d', ActionCameraRight)

	return im
}

// BindKey binds a key character to an action, replacing any earlier binding.
func (im *InputManager) BindKey(key rune, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToAction[key] = action
}

// Rebind replaces all bindings with the given key-to-action-name table, as
// read from the config file. Nothing changes if any entry is invalid.
func (im *InputManager) Rebind(bindings map[string]string) error {
	next := make(map[rune]Action, len(bindings))
	for k, name := range bindings {
		r := []rune(k)
		if len(r) != 1 {
			return fmt.Errorf("binding key %q must be a single character", k)
		}
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", k, err)
		}
		next[r[0]] = a
	}

	im.mu.Lock()
	im.keyToAction = next
	im.mu.Unlock()
	return nil
}

// Lookup returns the action bound to key.
func (im *InputManager) Lookup(key rune) (Action, bool) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	a, ok := im.keyToAction[key]
	return a, ok
}

// HandleKeyEvent processes a key event. Releases and unbound keys are ignored.
// It reports whether an action was applied.
func (im *InputManager) HandleKeyEvent(key rune, state KeyState) bool {
	if state != KeyPress && state != KeyRepeat {
		return false
	}
	return im.KeyDown(key)
}

// KeyDown applies the action bound to key, if any.
func (im *InputManager) KeyDown(key rune) bool {
	action, ok := im.Lookup(key)
	if !ok {
		return false
	}
	im.Apply(action)
	return true
}

// Apply moves the target by one step in the action's direction.
func (im *InputManager) Apply(action Action) {
	switch action {
	case ActionCubeUp:
		im.target.MoveCube(im.step)
	case ActionCubeDown:
		im.target.MoveCube(-im.step)
	case ActionCameraLeft:
		im.target.MoveCamera(-im.step)
	case ActionCameraRight:
		im.target.MoveCamera(im.step)
	}
}
