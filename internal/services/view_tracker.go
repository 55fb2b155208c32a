package services

import (
	"sync"
)

type viewEntry struct {
	ticket uint64
	target string
}

// ViewTracker remembers, per view id, the latest request that was started.
// A response may be committed only by the request holding the latest ticket;
// anything older arrived late and must be discarded.
type ViewTracker struct {
	mu    sync.Mutex
	next  uint64
	views map[string]viewEntry
}

func NewViewTracker() *ViewTracker {
	return &ViewTracker{
		views: make(map[string]viewEntry),
	}
}

// Begin registers target as the latest request of viewID and returns its ticket
func (vt *ViewTracker) Begin(viewID, target string) uint64 {
	vt.mu.Lock()
	defer vt.mu.Unlock()

	vt.next++
	vt.views[viewID] = viewEntry{ticket: vt.next, target: target}
	return vt.next
}

// Commit reports whether ticket is still the latest request of viewID. The
// winning commit forgets the view, so a stale ticket presented afterwards is
// rejected as well.
func (vt *ViewTracker) Commit(viewID string, ticket uint64) bool {
	vt.mu.Lock()
	defer vt.mu.Unlock()

	entry, ok := vt.views[viewID]
	if !ok || entry.ticket != ticket {
		return false
	}
	delete(vt.views, viewID)
	return true
}

// Len is the number of views with a request in flight
func (vt *ViewTracker) Len() int {
	vt.mu.Lock()
	defer vt.mu.Unlock()
	return len(vt.views)
}
