package gateway

import (
	"context"
	"encoding/json"

	"github.com/oktaviandi/ridepulse/internal/pkg/circuitbreaker"
	"github.com/oktaviandi/ridepulse/internal/pkg/constants"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	natspkg "github.com/oktaviandi/ridepulse/internal/pkg/nats"
	"github.com/oktaviandi/ridepulse/internal/pkg/retry"
	"github.com/oktaviandi/ridepulse/services/rides"
)

// RideGW handles NATS publishing for ride lifecycle events. Publishes
// go through a short exponential-backoff retrier behind a circuit
// breaker: when the broker is down, callers fail fast instead of
// burning request latency on doomed retries.
type RideGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		natsClient: client,
		retrier:    retry.NewWithDefaults(),
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig("nats-publish")),
	}
}

func (g *RideGW) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.natsClient.Publish(subject, data)
		})
	})
}

// PublishRideAssigned publishes a ride assigned event
func (g *RideGW) PublishRideAssigned(ctx context.Context, event models.RideAssignedEvent) error {
	return g.publish(ctx, constants.SubjectRideAssigned, event)
}

// PublishRideCompleted publishes a ride completed event
func (g *RideGW) PublishRideCompleted(ctx context.Context, event models.RideCompletedEvent) error {
	return g.publish(ctx, constants.SubjectRideCompleted, event)
}

// PublishRideCancelled publishes a ride cancelled event
func (g *RideGW) PublishRideCancelled(ctx context.Context, event models.RideCancelledEvent) error {
	return g.publish(ctx, constants.SubjectRideCancelled, event)
}
