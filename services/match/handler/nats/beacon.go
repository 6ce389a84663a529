package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oktaviandi/ridepulse/internal/pkg/constants"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	natspkg "github.com/oktaviandi/ridepulse/internal/pkg/nats"
	"github.com/oktaviandi/ridepulse/services/match"
)

// BeaconHandler consumes driver beacon events and applies them to
// driver availability state
type BeaconHandler struct {
	matchUC    match.MatchUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewBeaconHandler creates a new beacon NATS handler
func NewBeaconHandler(matchUC match.MatchUC, natsClient *natspkg.Client) *BeaconHandler {
	return &BeaconHandler{
		matchUC:    matchUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the driver beacon subject within the
// match queue group so only one instance processes each beacon
func (h *BeaconHandler) InitConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectDriverBeacon, constants.QueueGroupMatch, h.handleDriverBeacon)
	if err != nil {
		return fmt.Errorf("failed to subscribe to driver beacons: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("Subscribed to driver beacons",
		logger.String("subject", constants.SubjectDriverBeacon),
		logger.String("queue_group", constants.QueueGroupMatch))
	return nil
}

// Stop unsubscribes all consumers
func (h *BeaconHandler) Stop() {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop beacon consumer", logger.Err(err))
		}
	}
}

// handleDriverBeacon processes a single beacon. An active beacon marks
// the driver available and records the position; an inactive beacon
// takes the driver offline.
func (h *BeaconHandler) handleDriverBeacon(msg []byte) error {
	var event models.DriverBeaconEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal driver beacon: %w", err)
	}

	ctx := context.Background()

	if !event.IsActive {
		if err := h.matchUC.UpdateDriverStatus(ctx, event.DriverID, models.DriverStatusOffline); err != nil {
			return fmt.Errorf("failed to take driver offline: %w", err)
		}
		return nil
	}

	if err := h.matchUC.UpdateDriverStatus(ctx, event.DriverID, models.DriverStatusAvailable); err != nil {
		return fmt.Errorf("failed to mark driver available: %w", err)
	}

	update := models.DriverLocationUpdate{
		DriverID: event.DriverID,
		Location: event.Location,
	}
	if err := h.matchUC.UpdateDriverLocation(ctx, update); err != nil {
		return fmt.Errorf("failed to record beacon location: %w", err)
	}

	logger.Debug("Processed driver beacon",
		logger.String("driver_id", event.DriverID),
		logger.Float64("lat", event.Location.Latitude),
		logger.Float64("lng", event.Location.Longitude))
	return nil
}
