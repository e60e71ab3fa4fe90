package forecastapi

import (
	"context"
	"log"
	"sync"

	"github.com/lox/goldview/internal/metrics"
	"github.com/lox/goldview/internal/models"
)

// State is the observable fetch state.
type State int

const (
	Pending State = iota
	Failed
	Succeeded
)

func (s State) String() string {
	switch s {
	case Failed:
		return "failed"
	case Succeeded:
		return "succeeded"
	default:
		return "pending"
	}
}

// Snapshot is the fetch state as seen by a consumer.
type Snapshot struct {
	State   State
	Payload *models.Payload
	Err     error
}

// Message is the user-visible failure text, empty unless State is Failed.
func (s Snapshot) Message() string {
	if s.State != Failed || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Store shares one fetch between every consumer that subscribes to it.
// The first subscription starts the request; later ones join it. The
// result is kept for the life of the Store and never refetched.
type Store struct {
	fetcher Fetcher

	mu      sync.Mutex
	started bool
	refs    int
	done    chan struct{}
	result  Snapshot
}

func NewStore(f Fetcher) *Store {
	return &Store{
		fetcher: f,
		done:    make(chan struct{}),
	}
}

// Subscribe registers a consumer, starting the fetch if none is in flight.
// The request runs detached from ctx's cancellation: a consumer that goes
// away stops waiting but does not abort the shared request.
func (s *Store) Subscribe(ctx context.Context) *Subscription {
	s.mu.Lock()
	s.refs++
	start := !s.started
	s.started = true
	s.mu.Unlock()
	metrics.StoreSubscribers.Inc()

	if start {
		go s.fetch(context.WithoutCancel(ctx))
	}
	return &Subscription{store: s}
}

// Refs returns the number of open subscriptions.
func (s *Store) Refs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}

func (s *Store) fetch(ctx context.Context) {
	payload, err := s.fetcher.Fetch(ctx)

	snap := Snapshot{State: Succeeded, Payload: payload}
	if err != nil {
		log.Printf("forecastapi: fetch: %v", err)
		snap = Snapshot{State: Failed, Err: err}
	}

	s.mu.Lock()
	s.result = snap
	s.mu.Unlock()
	close(s.done)
}

func (s *Store) snapshot() Snapshot {
	select {
	case <-s.done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.result
	default:
		return Snapshot{State: Pending}
	}
}

// Subscription is one consumer's handle on a Store.
type Subscription struct {
	store *Store
	once  sync.Once
}

// Snapshot returns the current state without blocking.
func (sub *Subscription) Snapshot() Snapshot {
	return sub.store.snapshot()
}

// Wait blocks until the fetch resolves or ctx is done. When ctx ends first
// the pending snapshot is returned with ctx's error and any later result is
// discarded for this consumer.
func (sub *Subscription) Wait(ctx context.Context) (Snapshot, error) {
	select {
	case <-sub.store.done:
		return sub.store.snapshot(), nil
	case <-ctx.Done():
		return Snapshot{State: Pending}, ctx.Err()
	}
}

// Close releases the subscription. It is safe to call more than once.
func (sub *Subscription) Close() {
	sub.once.Do(func() {
		sub.store.mu.Lock()
		sub.store.refs--
		sub.store.mu.Unlock()
		metrics.StoreSubscribers.Dec()
	})
}
