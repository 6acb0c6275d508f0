package input

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// DefaultHoldWindow covers the gap between the first key press and the terminal's
// auto-repeat events, which typically start after 250-500 ms.
const DefaultHoldWindow = 550 * time.Millisecond

// HoldState approximates held keys for hosts that only report presses, such as terminals.
// A key counts as held until the hold window elapses without another press or repeat event.
type HoldState struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time
	last   map[uint32]time.Time
}

var _ Snapshotter = &HoldState{}

// NewHoldState creates a HoldState.
//
// Parameters:
//   - window: how long a press keeps a key held; zero selects DefaultHoldWindow
//   - now: clock used for timestamps; nil selects time.Now
//
// Returns:
//   - *HoldState: the new state
func NewHoldState(window time.Duration, now func() time.Time) *HoldState {
	window = common.PositiveOr(window, DefaultHoldWindow)
	if now == nil {
		now = time.Now
	}
	return &HoldState{
		window: window,
		now:    now,
		last:   make(map[uint32]time.Time),
	}
}

// Press records a press or repeat event for a key.
func (h *HoldState) Press(key uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[key] = h.now()
}

// Release forgets a key immediately.
func (h *HoldState) Release(key uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.last, key)
}

// Pressed reports whether the key was pressed within the hold window.
// Expired entries are dropped as they are observed.
func (h *HoldState) Pressed(key uint32) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, ok := h.last[key]
	if !ok {
		return false
	}
	if h.now().Sub(t) > h.window {
		delete(h.last, key)
		return false
	}
	return true
}

// Snapshot returns the keys still inside the hold window, judged against a single clock reading.
func (h *HoldState) Snapshot() KeySet {
	h.mu.Lock()
	defer h.mu.Unlock()
	now := h.now()
	out := make(KeySet, len(h.last))
	for key, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, key)
			continue
		}
		out[key] = struct{}{}
	}
	return out
}
