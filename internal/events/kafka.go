package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
)

// KafkaPublisher writes each event synchronously to one topic, keyed by
// post id so that events of the same post stay ordered within a partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewKafkaPublisher connects a sarama SyncProducer to cfg.Brokers.
func NewKafkaPublisher(cfg config.Events, log *logger.Logger) (*KafkaPublisher, error) {
	saramaCfg := newSaramaConfig(cfg)

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		log.Err(err).Str("func", "events.NewKafkaPublisher").Strs("brokers", cfg.Brokers).Msg("error creating kafka producer")
		return nil, fmt.Errorf("%w: %w", ErrProducerUnavailable, err)
	}

	log.Info().Str("func", "events.NewKafkaPublisher").Str("topic", cfg.Topic).Msg("kafka producer created")
	return newKafkaPublisher(producer, cfg.Topic, log), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   log,
	}
}

func newSaramaConfig(cfg config.Events) *sarama.Config {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = "go-microblog"
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Retry.Max = 3
	if cfg.Timeout > 0 {
		saramaCfg.Producer.Timeout = cfg.Timeout
		saramaCfg.Net.DialTimeout = cfg.Timeout
	}
	return saramaCfg
}

// Publish encodes event as JSON and sends it. The context is checked before
// sending; the send itself is bounded by the producer timeout.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.PostEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingEvent, err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(strconv.FormatInt(event.PostID, 10)),
		Value:     sarama.ByteEncoder(value),
		Timestamp: event.Timestamp,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*KafkaPublisher.Publish").
		Str("type", string(event.Type)).
		Int64("post_id", event.PostID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("post event published")

	return nil
}

// Close flushes and closes the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
