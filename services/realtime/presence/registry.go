package presence

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/observability"
	"github.com/ridelink/tripsync/services/realtime"
)

// TransitionFunc is invoked exactly once per contiguous period of
// (non)connectivity: once when an identity's first connection arrives,
// once when its last connection leaves. Never once per connection.
type TransitionFunc func(userID string, online bool)

const shardCount = 32

type entry struct {
	conns    map[string]struct{}
	wentIdle time.Time // zero while connections exist
}

type shard struct {
	mu        sync.RWMutex
	identities map[string]*entry
}

// Registry tracks the set of live connections per identity, sharded by
// identity so unrelated identities never contend on one lock. It does
// no network I/O; the only side effects are the transition callbacks.
type Registry struct {
	shards       [shardCount]*shard
	maxPerUser   int
	onTransition TransitionFunc
	transitionMu sync.RWMutex
}

// NewRegistry creates a presence registry. maxPerUser bounds the number
// of simultaneous connections one identity may hold; excess attempts
// fail rather than evicting an older connection.
func NewRegistry(maxPerUser int) *Registry {
	r := &Registry{maxPerUser: maxPerUser}
	for i := range r.shards {
		r.shards[i] = &shard{identities: make(map[string]*entry)}
	}
	return r
}

// OnTransition registers the callback fired on online/offline flips
func (r *Registry) OnTransition(fn TransitionFunc) {
	r.transitionMu.Lock()
	defer r.transitionMu.Unlock()
	r.onTransition = fn
}

func (r *Registry) shardFor(userID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return r.shards[h.Sum32()%shardCount]
}

// MarkConnected registers the identity/connection pair. Returns whether
// this was the identity's first live connection. Exceeding the per-user
// cap fails with ErrTooManyConnections and registers nothing.
func (r *Registry) MarkConnected(userID, connID string) (first bool, err error) {
	s := r.shardFor(userID)

	s.mu.Lock()
	e, ok := s.identities[userID]
	if !ok {
		e = &entry{conns: make(map[string]struct{})}
		s.identities[userID] = e
	}
	if r.maxPerUser > 0 && len(e.conns) >= r.maxPerUser {
		s.mu.Unlock()
		return false, realtime.ErrTooManyConnections
	}
	first = len(e.conns) == 0
	e.conns[connID] = struct{}{}
	e.wentIdle = time.Time{}
	s.mu.Unlock()

	if first {
		observability.IdentitiesOnline.Inc()
		r.fire(userID, true)
	}
	return first, nil
}

// MarkDisconnected removes the pair and reports whether the identity
// went offline. Unknown pairs are tolerated no-ops.
func (r *Registry) MarkDisconnected(userID, connID string) (last bool) {
	s := r.shardFor(userID)

	s.mu.Lock()
	e, ok := s.identities[userID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	if _, ok := e.conns[connID]; !ok {
		s.mu.Unlock()
		return false
	}
	delete(e.conns, connID)
	last = len(e.conns) == 0
	if last {
		e.wentIdle = time.Now()
	}
	s.mu.Unlock()

	if last {
		observability.IdentitiesOnline.Dec()
		r.fire(userID, false)
	}
	return last
}

// IsOnline reports whether the identity has at least one live connection
func (r *Registry) IsOnline(userID string) bool {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.identities[userID]
	return ok && len(e.conns) > 0
}

// ConnectionsOf returns the identity's live connection IDs
func (r *Registry) ConnectionsOf(userID string) []string {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.identities[userID]
	if !ok {
		return nil
	}
	conns := make([]string, 0, len(e.conns))
	for connID := range e.conns {
		conns = append(conns, connID)
	}
	return conns
}

// Sweep removes identities that have had zero connections for at least
// the grace period. A memory bound, not a correctness mechanism:
// IsOnline is already false for them.
func (r *Registry) Sweep(grace time.Duration) int {
	removed := 0
	cutoff := time.Now().Add(-grace)
	for _, s := range r.shards {
		s.mu.Lock()
		for userID, e := range s.identities {
			if len(e.conns) == 0 && !e.wentIdle.IsZero() && e.wentIdle.Before(cutoff) {
				delete(s.identities, userID)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed
}

// RunSweeper periodically sweeps idle entries until the context is
// cancelled. Run in its own goroutine.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(interval); n > 0 {
				logger.Debug("Swept idle presence entries", logger.Int("removed", n))
			}
		}
	}
}

// fire invokes the transition callback outside the shard lock, so two
// flips racing on the same identity (rapid reconnect churn) may deliver
// their callbacks out of order. Consumers treat the callback as a hint
// and read IsOnline for the authoritative state.
func (r *Registry) fire(userID string, online bool) {
	r.transitionMu.RLock()
	fn := r.onTransition
	r.transitionMu.RUnlock()
	if fn != nil {
		fn(userID, online)
	}
}
