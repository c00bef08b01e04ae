package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-library/internal/prefs"
)

type fakeContainer struct {
	offset   prefs.Offset
	content  float64
	viewport float64
}

func (c *fakeContainer) Offset() prefs.Offset       { return c.offset }
func (c *fakeContainer) SetOffset(off prefs.Offset) { c.offset = off }
func (c *fakeContainer) ContentHeight() float64     { return c.content }
func (c *fakeContainer) ViewportHeight() float64    { return c.viewport }

type fakeStore struct {
	offsets map[string]prefs.Offset
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{offsets: make(map[string]prefs.Offset)}
}

func (s *fakeStore) SaveScroll(key string, off prefs.Offset) error {
	s.offsets[key] = off
	s.saves++
	return nil
}

func (s *fakeStore) LoadScroll(key string) (prefs.Offset, bool, error) {
	off, ok := s.offsets[key]
	return off, ok, nil
}

func TestRestoreAppliesOnceContentGrows(t *testing.T) {
	store := newFakeStore()
	store.offsets["/library:grid"] = prefs.Offset{Top: 500}

	c := &fakeContainer{viewport: 40, content: 0}
	tr := NewTracker("/library:grid", store, c)

	tr.Begin()
	require.True(t, tr.Restoring())

	now := time.Now()
	// content still smaller than the viewport, keep polling
	tr.Tick(now)
	tr.Tick(now)
	assert.True(t, tr.Restoring())
	assert.Zero(t, c.offset.Top)

	// layout commits
	c.content = 400
	tr.Tick(now)

	assert.False(t, tr.Restoring())
	assert.Equal(t, float64(500), c.offset.Top)
	assert.False(t, tr.GaveUp())
}

func TestRestoreGivesUpWithinBudget(t *testing.T) {
	store := newFakeStore()
	store.offsets["/library"] = prefs.Offset{Top: 500}

	c := &fakeContainer{viewport: 40, content: 10} // never outgrows viewport
	tr := NewTracker("/library", store, c)
	tr.Begin()

	now := time.Now()
	for i := 0; i < maxRestoreAttempts; i++ {
		tr.Tick(now)
	}

	assert.False(t, tr.Restoring(), "restore must not hang forever")
	assert.True(t, tr.GaveUp())
	assert.Zero(t, c.offset.Top)
}

func TestNoSavedOffsetSettlesImmediately(t *testing.T) {
	tr := NewTracker("/library", newFakeStore(), &fakeContainer{viewport: 40, content: 400})
	tr.Begin()
	assert.False(t, tr.Restoring())
}

func TestScrollDuringRestoreIsSuppressed(t *testing.T) {
	store := newFakeStore()
	store.offsets["/library"] = prefs.Offset{Top: 500}

	c := &fakeContainer{viewport: 40, content: 0}
	tr := NewTracker("/library", store, c)
	tr.Begin()

	now := time.Now()
	// a stale scroll reading arrives while the restore is pending
	c.offset = prefs.Offset{Top: 3}
	tr.OnScroll(now)
	tr.Tick(now.Add(time.Second))

	assert.Equal(t, prefs.Offset{Top: 500}, store.offsets["/library"],
		"the guarded scroll event must not overwrite the saved offset")
}

func TestDebouncedPersistence(t *testing.T) {
	store := newFakeStore()
	c := &fakeContainer{viewport: 40, content: 400}
	tr := NewTracker("/library", store, c)
	tr.Begin()

	now := time.Now()
	c.offset = prefs.Offset{Top: 100}
	tr.OnScroll(now)
	c.offset = prefs.Offset{Top: 200}
	tr.OnScroll(now.Add(50 * time.Millisecond))

	// debounce window still open
	tr.Tick(now.Add(100 * time.Millisecond))
	assert.Zero(t, store.saves)

	// window elapsed since the last movement
	tr.Tick(now.Add(250 * time.Millisecond))
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, prefs.Offset{Top: 200}, store.offsets["/library"])
}

func TestStopFlushesPendingWrite(t *testing.T) {
	store := newFakeStore()
	c := &fakeContainer{viewport: 40, content: 400}
	tr := NewTracker("/library", store, c)
	tr.Begin()

	c.offset = prefs.Offset{Top: 123, Left: 45}
	tr.OnScroll(time.Now())
	tr.Stop()

	assert.Equal(t, prefs.Offset{Top: 123, Left: 45}, store.offsets["/library"])
}

func TestBeginRestartsInFlightRestore(t *testing.T) {
	store := newFakeStore()
	store.offsets["/library"] = prefs.Offset{Top: 500}

	c := &fakeContainer{viewport: 40, content: 0}
	tr := NewTracker("/library", store, c)
	tr.Begin()

	for i := 0; i < maxRestoreAttempts-1; i++ {
		tr.Tick(time.Now())
	}

	// re-navigation restarts the attempt budget
	tr.Begin()
	require.True(t, tr.Restoring())
	tr.Tick(time.Now())
	assert.True(t, tr.Restoring())
	assert.False(t, tr.GaveUp())
}

func TestTwoDimensionalOffsets(t *testing.T) {
	store := newFakeStore()
	store.offsets["/library:grid"] = prefs.Offset{Top: 500, Left: 250}

	c := &fakeContainer{viewport: 40, content: 400}
	tr := NewTracker("/library:grid", store, c)
	tr.Begin()
	tr.Tick(time.Now())

	assert.Equal(t, prefs.Offset{Top: 500, Left: 250}, c.offset)
}
