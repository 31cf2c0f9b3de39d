// Package events publishes post lifecycle events to Kafka.
//
// Publishing is best effort: callers log a failed Publish and carry on, so
// an unavailable broker never changes an API response.
package events

import (
	"context"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

//go:generate mockgen -source=publisher.go -destination=../mock/events_mock.go -package=mock

// Publisher sends post events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, event models.PostEvent) error
	Close() error
}

// NewPublisher returns a Kafka publisher when brokers are configured and a
// no-op publisher otherwise.
func NewPublisher(cfg config.Events, log *logger.Logger) (Publisher, error) {
	if len(cfg.Brokers) == 0 {
		log.Info().Str("func", "events.NewPublisher").Msg("no brokers configured, post events are disabled")
		return NewNopPublisher(), nil
	}

	return NewKafkaPublisher(cfg, log)
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, models.PostEvent) error { return nil }

func (nopPublisher) Close() error { return nil }
