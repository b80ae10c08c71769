package seats

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/ridelink/tripsync/internal/pkg/logger"
	"github.com/ridelink/tripsync/internal/pkg/observability"
	"github.com/ridelink/tripsync/services/realtime"
)

const lockShards = 64

// Inventory is the single writer path for a trip's seats_available
// counter. Concurrent reserves for the same trip are linearized by a
// per-trip lock on top of the storage-level guard, so that of two
// racing reserves for the last seat exactly one succeeds.
type Inventory struct {
	store realtime.TripRepo
	locks [lockShards]sync.Mutex
}

// NewInventory creates a seat inventory over the trip repository
func NewInventory(store realtime.TripRepo) *Inventory {
	return &Inventory{store: store}
}

func (i *Inventory) lockFor(tripID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(tripID))
	return &i.locks[h.Sum32()%lockShards]
}

// Reserve atomically decrements the trip's available seats by qty.
// Fails with ErrInsufficientSeats when qty exceeds what remains.
func (i *Inventory) Reserve(ctx context.Context, tripID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, realtime.ErrValidation
	}

	mu := i.lockFor(tripID)
	mu.Lock()
	defer mu.Unlock()

	newAvailable, err := i.store.ReserveSeats(ctx, tripID, qty)
	if err != nil {
		return 0, err
	}

	logger.Debug("Seats reserved",
		logger.String("trip_id", tripID),
		logger.Int("quantity", qty),
		logger.Int("available", newAvailable))
	return newAvailable, nil
}

// Release atomically increments the trip's available seats by qty,
// clamped so the result never exceeds the trip's total. Clamping points
// at a double-release bug somewhere, so it is logged loudly, but it
// never fails: this sits on refund and cancellation paths.
func (i *Inventory) Release(ctx context.Context, tripID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, realtime.ErrValidation
	}

	mu := i.lockFor(tripID)
	mu.Lock()
	defer mu.Unlock()

	newAvailable, clamped, err := i.store.ReleaseSeats(ctx, tripID, qty)
	if err != nil {
		return 0, err
	}
	if clamped {
		observability.SeatClampsTotal.Inc()
		logger.Warn("Seat release clamped at trip capacity",
			logger.String("trip_id", tripID),
			logger.Int("quantity", qty),
			logger.Int("available", newAvailable))
	}
	return newAvailable, nil
}
