package input

import "sync"

// KeyState is the held-key set for hosts that report both key down and key up events.
// Window callbacks write to it while the tick goroutine reads it.
type KeyState struct {
	mu   sync.RWMutex
	held map[uint32]struct{}
}

var _ Snapshotter = &KeyState{}

// NewKeyState creates an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{held: make(map[uint32]struct{})}
}

// KeyDown marks a key as held.
func (k *KeyState) KeyDown(key uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[key] = struct{}{}
}

// KeyUp marks a key as released.
func (k *KeyState) KeyUp(key uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
}

// Pressed reports whether a key is currently held.
func (k *KeyState) Pressed(key uint32) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.held[key]
	return ok
}

// Snapshot copies the held set.
func (k *KeyState) Snapshot() KeySet {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make(KeySet, len(k.held))
	for key := range k.held {
		out[key] = struct{}{}
	}
	return out
}

// Reset releases every key, e.g. when the window loses focus.
func (k *KeyState) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
}
