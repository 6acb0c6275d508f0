package input

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
)

var (
	// ErrUnknownKey is returned when a key name cannot be mapped to a key code.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownPreset is returned when a binding preset name is not registered.
	ErrUnknownPreset = errors.New("unknown binding preset")
)

// DefaultPreset is the preset used when none is configured.
const DefaultPreset = "arrows"

// KeySource reports whether a physical key is currently held.
type KeySource interface {
	Pressed(key uint32) bool
}

// Snapshotter is a KeySource that can capture every held key under one lock.
type Snapshotter interface {
	KeySource
	Snapshot() KeySet
}

// KeySet is a copy of the held keys taken at one instant.
type KeySet map[uint32]struct{}

var _ KeySource = KeySet{}

// Pressed reports whether the key was held when the set was captured.
func (s KeySet) Pressed(key uint32) bool {
	_, ok := s[key]
	return ok
}

// Bindings maps each logical action to the physical key that drives it.
type Bindings map[Action]uint32

var presets = map[string]Bindings{
	// arrow keys look, WASD moves
	"arrows": {
		YawLeft:     common.KeyLeft,
		YawRight:    common.KeyRight,
		PitchUp:     common.KeyUp,
		PitchDown:   common.KeyDown,
		StrafeLeft:  common.KeyA,
		StrafeRight: common.KeyD,
		MoveBack:    common.KeyS,
		MoveForward: common.KeyW,
	},
	// IJKL looks, WASD moves
	"ijkl": {
		YawLeft:     common.KeyJ,
		YawRight:    common.KeyL,
		PitchUp:     common.KeyI,
		PitchDown:   common.KeyK,
		StrafeLeft:  common.KeyA,
		StrafeRight: common.KeyD,
		MoveBack:    common.KeyS,
		MoveForward: common.KeyW,
	},
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Preset returns a copy of a named preset.
//
// Parameters:
//   - name: preset name, case-insensitive
//
// Returns:
//   - Bindings: the preset's bindings
//   - error: wraps ErrUnknownPreset when the name is not registered
func Preset(name string) (Bindings, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q (have %s): %w", name, strings.Join(Presets(), ", "), ErrUnknownPreset)
	}
	return maps.Clone(p), nil
}

// ParseBindings starts from a preset and applies per-action overrides.
//
// Parameters:
//   - preset: preset name; empty selects DefaultPreset
//   - overrides: action name to key name, e.g. {"pitchUp": "q"}
//
// Returns:
//   - Bindings: the resolved bindings
//   - error: wraps ErrUnknownPreset, ErrUnknownAction or ErrUnknownKey
func ParseBindings(preset string, overrides map[string]string) (Bindings, error) {
	b, err := Preset(common.Coalesce(preset, DefaultPreset))
	if err != nil {
		return nil, err
	}
	for actionName, keyName := range overrides {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		key, ok := common.ParseKey(keyName)
		if !ok {
			return nil, fmt.Errorf("binding %s=%q: %w", action, keyName, ErrUnknownKey)
		}
		b[action] = key
	}
	return b, nil
}

// Key returns the key bound to an action.
func (b Bindings) Key(a Action) (uint32, bool) {
	k, ok := b[a]
	return k, ok
}

// Resolve reads the bound keys from a source and returns the active actions.
// Unbound actions are never active. A Snapshotter is read once, so every action
// in the frame sees the same key state.
//
// Parameters:
//   - source: the held-key state to read
//
// Returns:
//   - camera.Actions: the logical actions for this frame
func (b Bindings) Resolve(source KeySource) camera.Actions {
	if s, ok := source.(Snapshotter); ok {
		source = s.Snapshot()
	}
	pressed := func(a Action) bool {
		k, ok := b[a]
		return ok && source.Pressed(k)
	}
	return camera.Actions{
		YawLeft:     pressed(YawLeft),
		YawRight:    pressed(YawRight),
		PitchUp:     pressed(PitchUp),
		PitchDown:   pressed(PitchDown),
		StrafeLeft:  pressed(StrafeLeft),
		StrafeRight: pressed(StrafeRight),
		MoveBack:    pressed(MoveBack),
		MoveForward: pressed(MoveForward),
	}
}

// String renders the bindings as "action=key" pairs in action order.
func (b Bindings) String() string {
	parts := make([]string, 0, len(b))
	for _, a := range Actions() {
		if k, ok := b[a]; ok {
			parts = append(parts, a.String()+"="+common.KeyName(k))
		}
	}
	return strings.Join(parts, " ")
}
