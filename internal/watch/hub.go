// Package watch implements live queries: reads that emit a current
// snapshot immediately and a new snapshot every time one of the tables
// they depend on changes, until they are released.
package watch

import (
	"sync"

	"github.com/google/uuid"
)

// changeBufferSize is the capacity of a subscriber's change channel.
// A subscriber that falls further behind loses change signals, which a
// snapshot-based consumer recovers from at the next recompute.
const changeBufferSize = 16

// Hub fans table-change notifications out to subscribers.
//
// The database layer calls Notify after every committed write; consumers
// register interest in a set of tables with Register.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*subscriber
}

type subscriber struct {
	tables map[string]struct{}
	ch     chan string
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]*subscriber),
	}
}

// Notify informs all subscribers interested in the table of a change.
// It never blocks a writer.
func (h *Hub) Notify(table string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if _, ok := sub.tables[table]; !ok {
			continue
		}

		select {
		case sub.ch <- table:
		default:
		}
	}
}

// Register subscribes to changes of the given tables. The returned channel
// receives the name of a table whenever it changes.
//
// The release function unsubscribes and closes the channel. After it
// returns, no further change is delivered.
func (h *Hub) Register(tables ...string) (<-chan string, func()) {
	sub := &subscriber{
		tables: make(map[string]struct{}, len(tables)),
		ch:     make(chan string, changeBufferSize),
	}
	for _, table := range tables {
		sub.tables[table] = struct{}{}
	}

	id := uuid.New()

	h.mu.Lock()
	h.subs[id] = sub
	h.mu.Unlock()

	return sub.ch, func() {
		h.release(id)
	}
}

// release is idempotent, releasing twice is a no-op.
//
// Closing under the write lock cannot overlap with Notify, which only
// sends while holding the read lock.
func (h *Hub) release(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return
	}

	delete(h.subs, id)
	close(sub.ch)
}
