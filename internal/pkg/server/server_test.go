package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownManager_RunsInRegistrationOrder(t *testing.T) {
	// Arrange
	sm := NewShutdownManager()
	var order []string
	sm.Register(func(context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "redis")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "nats")
		return nil
	})

	// Act
	err := sm.Shutdown(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"postgres", "redis", "nats"}, order)
}

func TestShutdownManager_FailureDoesNotStopRemainingCleanups(t *testing.T) {
	// Arrange
	sm := NewShutdownManager()
	first := errors.New("connection already closed")
	var ranLast bool
	sm.Register(func(context.Context) error { return first })
	sm.Register(func(context.Context) error { return errors.New("later failure") })
	sm.Register(func(context.Context) error {
		ranLast = true
		return nil
	})

	// Act
	err := sm.Shutdown(context.Background())

	// Assert: every cleanup ran and the first error is the one reported
	assert.ErrorIs(t, err, first)
	assert.True(t, ranLast)
}
