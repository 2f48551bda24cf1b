package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/rs/zerolog/log"
)

// Handler processes one decoded event.
type Handler func(Event) error

type EventConsumer struct {
	client   pulsar.Client
	consumer pulsar.Consumer
}

// NewEventConsumer initializes the Pulsar client and consumer. Each replica
// should pass its own subscription name so that every replica sees every event.
func NewEventConsumer(pulsarURL, topic, subscription string) (*EventConsumer, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{URL: pulsarURL})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	consumer, err := client.Subscribe(pulsar.ConsumerOptions{
		Topic:            topic,
		SubscriptionName: subscription,
		Type:             pulsar.Exclusive,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar consumer: %w", err)
	}

	return &EventConsumer{client: client, consumer: consumer}, nil
}

// Run receives events until ctx is cancelled. Messages the handler fails on
// are negatively acknowledged and redelivered; undecodable ones are dropped.
func (c *EventConsumer) Run(ctx context.Context, handle Handler) error {
	for {
		msg, err := c.consumer.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Error().Err(err).Msg("Error receiving message")
			continue
		}

		err = Dispatch(msg.Payload(), handle)
		if err != nil && !errors.Is(err, ErrMalformedEvent) {
			log.Error().Err(err).Msg("Failed to handle event")
			c.consumer.Nack(msg)
			continue
		}
		if err != nil {
			log.Warn().Err(err).Msg("Dropping malformed event")
		}
		c.consumer.Ack(msg)
	}
}

// Close cleans up the Pulsar consumer and client.
func (c *EventConsumer) Close() {
	c.consumer.Close()
	c.client.Close()
}

var ErrMalformedEvent = errors.New("malformed event")

// Dispatch decodes payload and passes it to handle.
func Dispatch(payload []byte, handle Handler) error {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.Type == "" {
		return fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}
	return handle(event)
}
