package health

import (
	"context"
	"fmt"

	"github.com/oktaviandi/ridepulse/internal/pkg/database"
	natspkg "github.com/oktaviandi/ridepulse/internal/pkg/nats"
)

// NewPostgresChecker verifies the PostgreSQL connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisChecker verifies the Redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSChecker verifies the NATS connection
func NewNATSChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return fmt.Errorf("nats connection is not established")
		}
		return nil
	})
}
