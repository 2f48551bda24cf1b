package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/rs/zerolog/log"
)

const (
	PostCreated    = "post-created"
	PostDeleted    = "post-deleted"
	ProfileUpdated = "profile-updated"
)

// Event is published whenever a post or profile changes.
type Event struct {
	Type        string `json:"type"`
	UserID      string `json:"userId"`
	PostID      string `json:"postId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType, userID string) Event {
	return Event{Type: eventType, UserID: userID, Timestamp: time.Now().Unix()}
}

// Notifier publishes forum events.
type Notifier interface {
	Publish(event Event) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	log.Info().Str("topic", topic).Msg("Pulsar client and producer initialized successfully")
	return &EventPublisher{client: client, producer: producer}, nil
}

// Publish sends the event keyed by user so one user's events stay ordered.
func (p *EventPublisher) Publish(event Event) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(context.Background(), &pulsar.ProducerMessage{
		Payload: message,
		Key:     event.UserID,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	log.Debug().Str("type", event.Type).Str("user_id", event.UserID).Msg("event sent to Pulsar")
	return nil
}

// Close closes the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
	log.Info().Msg("Pulsar client and producer closed successfully")
}

// NopNotifier drops every event. It is used when Pulsar is not configured.
type NopNotifier struct{}

func (NopNotifier) Publish(Event) error { return nil }

func (NopNotifier) Close() {}
