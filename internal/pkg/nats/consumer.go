package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/shegerlabs/transitlive/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject, optionally inside a queue group, and
// dispatches messages to the handler. Handler errors are logged, not fatal.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	dispatch := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.QueueSubscribe(subject, queueGroup, dispatch)
	} else {
		subscription, err = client.Subscribe(subject, dispatch)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{subscription: subscription}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
