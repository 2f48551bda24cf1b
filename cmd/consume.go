package cmd

import (
	"context"

	"github.com/forum-civic/forum-services/api/services"
	"github.com/forum-civic/forum-services/internal/events"
	"github.com/rs/zerolog/log"
)

// syncNameCache applies profile-updated events published by other replicas
// to the local name cache. Other event types are acknowledged and ignored.
func syncNameCache(cache *services.NameCache) events.Handler {
	return func(event events.Event) error {
		if event.Type != events.ProfileUpdated || event.UserID == "" || event.DisplayName == "" {
			return nil
		}

		log.Debug().Str("user_id", event.UserID).Msg("Refreshing cached name")
		cache.Set(event.UserID, event.DisplayName)
		return nil
	}
}

// startConsumer runs the Pulsar consumer in the background. It returns a
// function that stops the consumer and waits for it to finish.
func startConsumer(ctx context.Context, cache *services.NameCache) func() {
	pulsarCfg := appCfg.Pulsar
	if pulsarCfg.URL == "" || pulsarCfg.TopicConsumer == "" {
		log.Info().Msg("Pulsar consumer not configured, name cache will not sync between replicas")
		return func() {}
	}

	consumer, err := events.NewEventConsumer(pulsarCfg.URL, pulsarCfg.TopicConsumer, pulsarCfg.Subscription)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize event consumer")
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Run(ctx, syncNameCache(cache)); err != nil {
			log.Error().Err(err).Msg("Event consumer stopped")
		}
	}()

	return func() {
		cancel()
		<-done
		consumer.Close()
	}
}
