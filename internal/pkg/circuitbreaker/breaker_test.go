package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_TripsAfterThreshold(t *testing.T) {
	cb := New(Config{
		Name:             "test",
		Timeout:          time.Minute,
		FailureThreshold: 3,
		SuccessThreshold: 1,
	})

	fail := func(context.Context) error { return errors.New("boom") }

	for i := 0; i < 3; i++ {
		assert.Equal(t, StateClosed, cb.State())
		err := cb.Execute(context.Background(), fail)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrOpen)
	}

	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), fail), ErrOpen)
}

func TestBreaker_SuccessResetsFailureStreak(t *testing.T) {
	cb := New(Config{
		Name:             "test",
		Timeout:          time.Minute,
		FailureThreshold: 2,
		SuccessThreshold: 1,
	})

	fail := func(context.Context) error { return errors.New("boom") }
	ok := func(context.Context) error { return nil }

	assert.Error(t, cb.Execute(context.Background(), fail))
	assert.NoError(t, cb.Execute(context.Background(), ok))
	assert.Error(t, cb.Execute(context.Background(), fail))

	// Streak was broken, so one more failure is needed to trip.
	assert.Equal(t, StateClosed, cb.State())
	assert.Error(t, cb.Execute(context.Background(), fail))
	assert.Equal(t, StateOpen, cb.State())
}

func TestBreaker_ProbeClosesAfterTimeout(t *testing.T) {
	cb := New(Config{
		Name:             "test",
		Timeout:          10 * time.Millisecond,
		FailureThreshold: 1,
		SuccessThreshold: 1,
	})

	assert.Error(t, cb.Execute(context.Background(), func(context.Context) error {
		return errors.New("boom")
	}))
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	assert.NoError(t, cb.Execute(context.Background(), func(context.Context) error {
		return nil
	}))
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	cb := New(Config{
		Name:             "test",
		Timeout:          10 * time.Millisecond,
		FailureThreshold: 1,
		SuccessThreshold: 1,
	})

	fail := func(context.Context) error { return errors.New("boom") }

	assert.Error(t, cb.Execute(context.Background(), fail))
	time.Sleep(20 * time.Millisecond)

	assert.Error(t, cb.Execute(context.Background(), fail))
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), fail), ErrOpen)
}
