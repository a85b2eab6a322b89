package watch

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Subscription is a live query for a snapshot of type T.
//
// The first snapshot is available on Updates as soon as Subscribe
// returns. Every relevant table change after that triggers a recompute
// and a new snapshot. A consumer that does not keep up only ever sees
// the most recent snapshot, intermediate ones are dropped.
type Subscription[T any] struct {
	updates chan T
	stop    chan struct{}
	done    chan struct{}
	release func()

	stopOnce sync.Once
}

// Subscribe runs query for the initial snapshot and re-runs it whenever
// one of the tables changes.
func Subscribe[T any](hub *Hub, tables []string, query func() (T, error)) (*Subscription[T], error) {
	initial, err := query()
	if err != nil {
		return nil, err
	}

	changes, release := hub.Register(tables...)

	s := &Subscription[T]{
		updates: make(chan T, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		release: release,
	}

	s.emit(initial)
	go s.run(changes, query)

	return s, nil
}

// Updates returns the snapshot channel. It is closed by Stop.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Stop releases the subscription. When Stop returns, no further snapshot
// is emitted and the updates channel is closed.
func (s *Subscription[T]) Stop() {
	s.stopOnce.Do(func() {
		s.release()
		close(s.stop)
		<-s.done
		close(s.updates)
	})
}

func (s *Subscription[T]) run(changes <-chan string, query func() (T, error)) {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
		}

		// Coalesce queued signals so a single recompute covers them all
	coalesce:
		for {
			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
			default:
				break coalesce
			}
		}

		snapshot, err := query()
		if err != nil {
			// Keep the previous snapshot, the next change triggers
			// another attempt
			log.Error().Err(err).Msg("live query recompute failed")
			continue
		}

		s.emit(snapshot)
	}
}

// emit replaces a pending snapshot that the consumer has not read yet.
func (s *Subscription[T]) emit(snapshot T) {
	for {
		select {
		case s.updates <- snapshot:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}
