// Package store holds the app's per-session state: one in-memory,
// id-keyed collection per domain, mutated only through the owning store and
// announced to subscribers synchronously after every mutation. Reads hand
// out copies; screens re-query for a fresh snapshot when notified.
package store

import "sync"

// Change describes one completed mutation. By the time a subscriber sees it
// the collection already reflects the change, so a cascade (list + its
// items) is observed as a single consistent step.
type Change struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionToggled   = "toggled"
	ActionLoggedIn  = "logged_in"
	ActionLoggedOut = "logged_out"
	ActionRestored  = "restored"
	ActionJoined    = "joined"
	ActionLeft      = "left"
)

type subscriber struct {
	id int
	fn func(Change)
}

// broadcaster is the subscribe/notify half shared by every store.
// Notification runs on the mutating goroutine, in subscription order,
// before the mutating call returns.
type broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

// Subscribe registers fn and returns a cancel func that removes it.
func (b *broadcaster) Subscribe(fn func(Change)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// notify calls every subscriber with c. Callers must not hold the store's
// collection lock, so subscribers can re-query freely.
func (b *broadcaster) notify(c Change) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(c)
	}
}
