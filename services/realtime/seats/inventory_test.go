package seats

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/tripsync/services/realtime"
	"github.com/ridelink/tripsync/services/realtime/mocks"
)

// countingStore backs ReserveSeats with a real counter so concurrent
// reserves exercise the inventory's linearization, not mock ordering
type countingStore struct {
	realtime.TripRepo

	mu        sync.Mutex
	available int
	total     int
}

func (s *countingStore) ReserveSeats(_ context.Context, _ string, qty int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.available < qty {
		return 0, realtime.ErrInsufficientSeats
	}
	s.available -= qty
	return s.available, nil
}

func (s *countingStore) ReleaseSeats(_ context.Context, _ string, qty int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clamped := false
	s.available += qty
	if s.available > s.total {
		s.available = s.total
		clamped = true
	}
	return s.available, clamped, nil
}

func TestInventory_ConcurrentReservesForLastSeat(t *testing.T) {
	// Arrange
	store := &countingStore{available: 1, total: 4}
	inv := NewInventory(store)

	// Act: many goroutines race for the single remaining seat
	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := inv.Reserve(context.Background(), "trip-1", 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	// Assert: exactly one reserve won
	won, lost := 0, 0
	for err := range results {
		if err == nil {
			won++
			continue
		}
		require.ErrorIs(t, err, realtime.ErrInsufficientSeats)
		lost++
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, lost)
	assert.Zero(t, store.available)
}

func TestInventory_ReserveRejectsNonPositiveQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The store must never be consulted for an invalid quantity
	inv := NewInventory(mocks.NewMockTripRepo(ctrl))

	_, err := inv.Reserve(context.Background(), "trip-1", 0)
	assert.ErrorIs(t, err, realtime.ErrValidation)

	_, err = inv.Reserve(context.Background(), "trip-1", -2)
	assert.ErrorIs(t, err, realtime.ErrValidation)

	_, err = inv.Release(context.Background(), "trip-1", 0)
	assert.ErrorIs(t, err, realtime.ErrValidation)
}

func TestInventory_ReservePropagatesInsufficientSeats(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripRepo := mocks.NewMockTripRepo(ctrl)
	tripRepo.EXPECT().
		ReserveSeats(gomock.Any(), "trip-1", 3).
		Return(0, realtime.ErrInsufficientSeats)
	inv := NewInventory(tripRepo)

	// Act
	_, err := inv.Reserve(context.Background(), "trip-1", 3)

	// Assert
	assert.ErrorIs(t, err, realtime.ErrInsufficientSeats)
}

func TestInventory_ReleaseClampsAtCapacity(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tripRepo := mocks.NewMockTripRepo(ctrl)
	tripRepo.EXPECT().
		ReleaseSeats(gomock.Any(), "trip-1", 5).
		Return(4, true, nil)
	inv := NewInventory(tripRepo)

	// Act: releasing more seats than were ever taken succeeds but clamps
	available, err := inv.Release(context.Background(), "trip-1", 5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, available)
}

func TestInventory_ReserveThenReleaseRoundTrip(t *testing.T) {
	// Arrange
	store := &countingStore{available: 3, total: 4}
	inv := NewInventory(store)

	// Act
	available, err := inv.Reserve(context.Background(), "trip-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, available)

	available, err = inv.Release(context.Background(), "trip-1", 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, available)
}

func TestInventory_MixedReservationScenario(t *testing.T) {
	// Arrange: fresh trip with four seats
	store := &countingStore{available: 4, total: 4}
	inv := NewInventory(store)
	ctx := context.Background()

	// Act / Assert: first rider takes two
	available, err := inv.Reserve(ctx, "trip-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	// A three-seat request no longer fits and changes nothing
	_, err = inv.Reserve(ctx, "trip-1", 3)
	assert.ErrorIs(t, err, realtime.ErrInsufficientSeats)
	assert.Equal(t, 2, store.available)

	// The remaining two seats still go through
	available, err = inv.Reserve(ctx, "trip-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, available)
}
