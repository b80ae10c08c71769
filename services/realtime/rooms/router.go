package rooms

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/models"
	"github.com/ridelink/tripsync/internal/pkg/observability"
)

// Member is one connection's view as seen by the router
type Member interface {
	ConnectionID() string
	Identity() models.Actor
	Send(event string, data interface{}) error
}

// Authorizer decides whether an actor may join a room. It is consulted
// on every join; membership is never re-validated afterwards, so a
// revocation takes effect on the next join rather than retroactively.
type Authorizer interface {
	CanJoin(ctx context.Context, room Room, actor models.Actor) error
}

// AuthorizerFunc adapts a plain function to the Authorizer interface
type AuthorizerFunc func(ctx context.Context, room Room, actor models.Actor) error

// CanJoin calls f
func (f AuthorizerFunc) CanJoin(ctx context.Context, room Room, actor models.Actor) error {
	return f(ctx, room, actor)
}

const shardCount = 32

type shard struct {
	mu    sync.RWMutex
	rooms map[string]map[string]Member // roomID -> connID -> member
}

// Router maintains named broadcast groups of live connections. Room
// state is sharded by room ID so unrelated rooms never contend on one
// lock.
type Router struct {
	authorizer Authorizer
	shards     [shardCount]*shard
	roomCount  sync.Map // roomID -> struct{}, for the active-rooms gauge only
}

// NewRouter creates a room router backed by the given authorizer
func NewRouter(authorizer Authorizer) *Router {
	r := &Router{authorizer: authorizer}
	for i := range r.shards {
		r.shards[i] = &shard{rooms: make(map[string]map[string]Member)}
	}
	return r
}

func (r *Router) shardFor(roomID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(roomID))
	return r.shards[h.Sum32()%shardCount]
}

// Join re-derives authorization and adds the member to the room.
// Authorization failure leaves membership untouched.
func (r *Router) Join(ctx context.Context, room Room, member Member) error {
	if err := r.authorizer.CanJoin(ctx, room, member.Identity()); err != nil {
		return err
	}

	roomID := room.ID()
	s := r.shardFor(roomID)
	s.mu.Lock()
	members, ok := s.rooms[roomID]
	if !ok {
		members = make(map[string]Member)
		s.rooms[roomID] = members
	}
	members[member.ConnectionID()] = member
	s.mu.Unlock()

	r.trackRoom(roomID, true)
	logger.Debug("Connection joined room",
		logger.String("room", roomID),
		logger.String("conn_id", member.ConnectionID()))
	return nil
}

// Leave removes the connection from the room. Always permitted; leaving
// a room one is not in is a no-op.
func (r *Router) Leave(roomID, connID string) {
	s := r.shardFor(roomID)
	s.mu.Lock()
	if members, ok := s.rooms[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(s.rooms, roomID)
			defer r.trackRoom(roomID, false)
		}
	}
	s.mu.Unlock()
}

// LeaveAll removes the connection from every room it is in. Called on
// disconnect.
func (r *Router) LeaveAll(connID string) {
	for _, s := range r.shards {
		s.mu.Lock()
		for roomID, members := range s.rooms {
			if _, ok := members[connID]; !ok {
				continue
			}
			delete(members, connID)
			if len(members) == 0 {
				delete(s.rooms, roomID)
				defer r.trackRoom(roomID, false)
			}
		}
		s.mu.Unlock()
	}
}

// Broadcast delivers the event to every current member of the room,
// except the optional sender connection. Delivery is best effort: a
// member whose send fails is dropped from the room, not retried. Within
// one room, events arrive in Broadcast invocation order because each
// member's sends are serialized on its outbound queue.
func (r *Router) Broadcast(roomID, event string, payload interface{}, excludeConnID string) int {
	s := r.shardFor(roomID)

	s.mu.RLock()
	members := s.rooms[roomID]
	targets := make([]Member, 0, len(members))
	for connID, m := range members {
		if connID == excludeConnID {
			continue
		}
		targets = append(targets, m)
	}
	s.mu.RUnlock()

	delivered := 0
	var dead []string
	for _, m := range targets {
		if err := m.Send(event, payload); err != nil {
			logger.Debug("Dropping dead room member",
				logger.String("room", roomID),
				logger.String("conn_id", m.ConnectionID()),
				logger.Err(err))
			dead = append(dead, m.ConnectionID())
			continue
		}
		delivered++
	}
	for _, connID := range dead {
		r.Leave(roomID, connID)
	}

	observability.BroadcastsTotal.WithLabelValues(event).Inc()
	return delivered
}

// Members returns the connection IDs currently joined to the room
func (r *Router) Members(roomID string) []string {
	s := r.shardFor(roomID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.rooms[roomID]))
	for connID := range s.rooms[roomID] {
		ids = append(ids, connID)
	}
	return ids
}

func (r *Router) trackRoom(roomID string, active bool) {
	if active {
		r.roomCount.Store(roomID, struct{}{})
	} else {
		r.roomCount.Delete(roomID)
	}
	n := 0
	r.roomCount.Range(func(_, _ interface{}) bool { n++; return true })
	observability.RoomsActive.Set(float64(n))
}
