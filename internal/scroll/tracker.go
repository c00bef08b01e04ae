// Package scroll restores and persists per-route scroll offsets. Restore
// waits for content to actually outgrow the viewport before applying the
// saved offset, polling once per render tick with a bounded attempt
// budget so a view that never fills up still gets revealed.
package scroll

import (
	"time"

	"game-library/internal/prefs"
)

const (
	// writes are debounced so a fling does not hammer the store
	debounceInterval = 150 * time.Millisecond

	// restore gives up after this many ticks and reveals content anyway
	maxRestoreAttempts = 60
)

// Container is the scrollable surface being tracked. For 1-D lists Left
// stays zero; virtualized grids use both axes.
type Container interface {
	Offset() prefs.Offset
	SetOffset(prefs.Offset)
	ContentHeight() float64
	ViewportHeight() float64
}

// Store persists offsets per scroll key.
type Store interface {
	SaveScroll(key string, off prefs.Offset) error
	LoadScroll(key string) (prefs.Offset, bool, error)
}

// Tracker drives restore-then-persist for one container under one scroll
// key ("route" or "route:viewMode").
type Tracker struct {
	key       string
	store     Store
	container Container

	// restore state; restoring doubles as the guard that suppresses
	// scroll-event persistence until the saved offset has been applied
	restoring bool
	target    prefs.Offset
	attempts  int
	gaveUp    bool

	// debounced write state
	pending    bool
	pendingOff prefs.Offset
	lastScroll time.Time
}

func NewTracker(key string, store Store, container Container) *Tracker {
	return &Tracker{key: key, store: store, container: container}
}

// Begin starts a restore for the current key. Only one restore is active
// at a time; calling Begin during a restore restarts it. When nothing was
// persisted this session the tracker settles immediately.
func (t *Tracker) Begin() {
	t.attempts = 0
	t.gaveUp = false
	t.pending = false

	off, ok, err := t.store.LoadScroll(t.key)
	if err != nil || !ok {
		t.restoring = false
		return
	}

	t.restoring = true
	t.target = off
}

// Restoring reports whether a restore is still pending.
func (t *Tracker) Restoring() bool { return t.restoring }

// GaveUp reports whether the last restore exhausted its attempt budget.
func (t *Tracker) GaveUp() bool { return t.gaveUp }

// Tick advances the tracker by one render tick: while restoring it polls
// layout and applies the saved offset once content exceeds the viewport;
// afterwards it flushes a debounced write when the scroll has been idle
// long enough.
func (t *Tracker) Tick(now time.Time) {
	if t.restoring {
		if t.container.ContentHeight() > t.container.ViewportHeight() {
			t.container.SetOffset(t.target)
			t.restoring = false
			return
		}

		t.attempts++
		if t.attempts >= maxRestoreAttempts {
			// liveness over fidelity: reveal at the top instead of
			// hanging on a view that never grows
			t.restoring = false
			t.gaveUp = true
		}
		return
	}

	if t.pending && now.Sub(t.lastScroll) >= debounceInterval {
		t.flush()
	}
}

// OnScroll records a scroll movement. Movements during a restore are
// dropped so a stale read cannot overwrite the just-restored value.
func (t *Tracker) OnScroll(now time.Time) {
	if t.restoring {
		return
	}
	t.pending = true
	t.pendingOff = t.container.Offset()
	t.lastScroll = now
}

// Stop cancels any pending restore and flushes an unwritten offset; it is
// the navigation-away cleanup.
func (t *Tracker) Stop() {
	t.restoring = false
	if t.pending {
		t.flush()
	}
}

func (t *Tracker) flush() {
	t.pending = false
	// a failed write only loses a scroll position
	_ = t.store.SaveScroll(t.key, t.pendingOff)
}
