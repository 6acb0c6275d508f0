package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW = 87 // W key (ASCII)
	KeyA = 65 // A key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyD = 68 // D key (ASCII)
	KeyI = 73 // I key (ASCII)
	KeyJ = 74 // J key (ASCII)
	KeyK = 75 // K key (ASCII)
	KeyL = 76 // L key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyE = 69 // E key (ASCII)

	KeySpace     = 32  // Spacebar (ASCII)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyBackspace = 259 // Backspace key (GLFW)
)

// Arrow keys
const (
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// keyNames maps lower-case configuration names to key codes.
var keyNames = map[string]uint32{
	"space":      KeySpace,
	"escape":     KeyEsc,
	"backspace":  KeyBackspace,
	"right":      KeyRight,
	"left":       KeyLeft,
	"down":       KeyDown,
	"up":         KeyUp,
	"leftshift":  KeyLeftShift,
	"rightshift": KeyRightShift,
}

// ParseKey resolves a configuration key name to its key code.
// Single letters and digits map to their upper-case ASCII value; arrow and modifier keys
// use names such as "up", "left" or "leftshift". Matching is case-insensitive.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is not recognized
func ParseKey(name string) (uint32, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if code, ok := keyNames[n]; ok {
		return code, true
	}
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint32(c - 'a' + 'A'), true
		case c >= '0' && c <= '9':
			return uint32(c), true
		}
	}
	return 0, false
}

// KeyName returns the configuration name of a key code, or "" if it has none.
//
// Parameters:
//   - code: the key code
//
// Returns:
//   - string: the lower-case key name
func KeyName(code uint32) string {
	for name, c := range keyNames {
		if c == code {
			return name
		}
	}
	if (code >= 'A' && code <= 'Z') || (code >= '0' && code <= '9') {
		return strings.ToLower(string(rune(code)))
	}
	return ""
}
