package nats

import (
	"github.com/nats-io/nats.go"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject, optionally within a queue group,
// and dispatches messages to the handler. Handler errors are logged and
// the message is dropped; NATS core has at-most-once semantics.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	msgHandler := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.QueueSubscribe(subject, queueGroup, msgHandler)
	} else {
		sub, err = client.Subscribe(subject, msgHandler)
	}
	if err != nil {
		return nil, err
	}

	return &Consumer{client: client, subscription: sub}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
