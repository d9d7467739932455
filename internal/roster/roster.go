// Package roster holds the client-visible contact list and keeps it in
// sync with the remote collection. Deletes are optimistic: the entry
// disappears from the visible list before the network call resolves,
// comes back on failure, and every outcome settles with an
// authoritative re-fetch.
package roster

import (
	"context"
	"errors"
	"sync"

	"contactdesk/pkg/models"
)

// Gateway is the remote side of the roster. *client.Client satisfies it.
type Gateway interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ErrStale is returned by Refresh when its result was discarded: either
// it arrived after a more recent refresh had already been applied, or
// the refresh was cancelled because a newer refresh or a beginning
// delete superseded it.
var ErrStale = errors.New("roster: stale refresh discarded")

// List is the client cache of the remote contact collection. All
// mutations go through Refresh and the StartDelete/Wait protocol.
type List struct {
	gateway Gateway

	mu       sync.Mutex
	contacts []models.Contact
	deleting map[string]int

	// Refresh generations. Every refresh takes the next token when it
	// starts; a result only lands if no later-started refresh has
	// already landed.
	nextGen       uint64
	appliedGen    uint64
	cancelRefresh context.CancelFunc
}

func NewList(gateway Gateway) *List {
	return &List{
		gateway:  gateway,
		deleting: make(map[string]int),
	}
}

// Snapshot returns a copy of the visible contact list.
func (l *List) Snapshot() []models.Contact {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Contact(nil), l.contacts...)
}

// Deleting reports whether a delete for id is currently in flight.
// UI affordances use this to disable the trigger; it imposes no
// de-duplication.
func (l *List) Deleting(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deleting[id] > 0
}

// Refresh fetches the authoritative list and replaces the visible one.
// A refresh that loses the race to a later-started refresh returns
// ErrStale and leaves the list untouched.
func (l *List) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.nextGen++
	gen := l.nextGen
	refreshCtx, cancel := context.WithCancel(ctx)
	if l.cancelRefresh != nil {
		l.cancelRefresh()
	}
	l.cancelRefresh = cancel
	l.mu.Unlock()

	contacts, err := l.gateway.ListContacts(refreshCtx)
	cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		// A cancellation the list issued itself, when a newer refresh
		// or a beginning delete superseded this one. The caller's own
		// context is still live, so this is not a failure.
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			return ErrStale
		}
		return err
	}
	if gen <= l.appliedGen {
		return ErrStale
	}
	l.appliedGen = gen
	l.contacts = append([]models.Contact(nil), contacts...)
	return nil
}

// PendingDelete is one delete request moving through the
// begin/resolve/settle protocol. It carries its own snapshot, so
// overlapping deletes roll back independently.
type PendingDelete struct {
	list *List
	id   string
	prev []models.Contact
}

// StartDelete begins the protocol: it cancels any in-flight refresh,
// snapshots the visible list, removes the target synchronously, and
// marks the id as deleting. The caller must finish with Wait.
func (l *List) StartDelete(id string) *PendingDelete {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancelRefresh != nil {
		l.cancelRefresh()
		l.cancelRefresh = nil
	}

	prev := append([]models.Contact(nil), l.contacts...)
	filtered := make([]models.Contact, 0, len(l.contacts))
	for _, c := range l.contacts {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	l.contacts = filtered
	l.deleting[id]++

	return &PendingDelete{list: l, id: id, prev: prev}
}

// Wait resolves the delete against the gateway, rolls the visible list
// back to this request's snapshot on failure, then settles: the
// deleting marker is cleared and an authoritative refresh replaces the
// list. Wait returns the delete outcome; a settle refresh that fails
// has already been surfaced through the gateway's notifier.
func (p *PendingDelete) Wait(ctx context.Context) error {
	err := p.list.gateway.DeleteContact(ctx, p.id)
	if err != nil {
		p.list.mu.Lock()
		p.list.contacts = p.prev
		p.list.mu.Unlock()
	}

	p.list.mu.Lock()
	p.list.deleting[p.id]--
	if p.list.deleting[p.id] <= 0 {
		delete(p.list.deleting, p.id)
	}
	p.list.mu.Unlock()

	p.list.Refresh(ctx) //nolint:errcheck // settle failures surface via the notifier

	return err
}

// Delete runs the whole protocol in one blocking call.
func (l *List) Delete(ctx context.Context, id string) error {
	return l.StartDelete(id).Wait(ctx)
}
