// Package input maps physical key state to the logical camera actions.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action name does not match any logical action.
var ErrUnknownAction = errors.New("unknown action")

// Action is a logical camera input, independent of the physical key bound to it.
type Action int

const (
	YawLeft Action = iota
	YawRight
	PitchUp
	PitchDown
	StrafeLeft
	StrafeRight
	MoveBack
	MoveForward

	actionCount
)

var actionNames = [actionCount]string{
	YawLeft:     "yawLeft",
	YawRight:    "yawRight",
	PitchUp:     "pitchUp",
	PitchDown:   "pitchDown",
	StrafeLeft:  "strafeLeft",
	StrafeRight: "strafeRight",
	MoveBack:    "moveBack",
	MoveForward: "moveForward",
}

// Actions returns every logical action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves an action name. Matching ignores case, so "yawleft" and
// "yawLeft" are equivalent (configuration keys are lower-cased by viper).
//
// Parameters:
//   - name: the action name
//
// Returns:
//   - Action: the matching action
//   - error: wraps ErrUnknownAction when no action matches
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAction)
}
