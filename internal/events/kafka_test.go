package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/MKhiriev/go-microblog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockProducer(t *testing.T) *mocks.SyncProducer {
	cfg := newSaramaConfig(config.Events{Timeout: time.Second})
	return mocks.NewSyncProducer(t, cfg)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := newMockProducer(t)
	ts := time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)
	event := models.PostEvent{Type: models.PostCreated, PostID: 42, UserID: 7, Timestamp: ts}

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "post-events" {
			return fmt.Errorf("unexpected topic %q", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "42" {
			return fmt.Errorf("unexpected key %q", key)
		}
		return nil
	})

	publisher := newKafkaPublisher(producer, "post-events", logger.Nop())

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishValue(t *testing.T) {
	producer := newMockProducer(t)
	ts := time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		want := map[string]any{
			"type":      "post.deleted",
			"post_id":   float64(3),
			"user_id":   float64(1),
			"timestamp": "2026-04-05T06:07:08Z",
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return fmt.Errorf("unexpected value %v", got)
		}
		return nil
	})

	publisher := newKafkaPublisher(producer, "post-events", logger.Nop())

	err := publisher.Publish(context.Background(), models.PostEvent{Type: models.PostDeleted, PostID: 3, UserID: 1, Timestamp: ts})
	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishFails(t *testing.T) {
	producer := newMockProducer(t)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "post-events", logger.Nop())

	err := publisher.Publish(context.Background(), models.PostEvent{Type: models.PostCreated, PostID: 1})
	assert.ErrorIs(t, err, ErrPublishingEvent)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	producer := newMockProducer(t)
	publisher := newKafkaPublisher(producer, "post-events", logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.Publish(ctx, models.PostEvent{Type: models.PostCreated, PostID: 1})
	assert.True(t, errors.Is(err, context.Canceled))
	require.NoError(t, publisher.Close())
}

func TestNewSaramaConfig(t *testing.T) {
	cfg := newSaramaConfig(config.Events{Timeout: 3 * time.Second})

	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForLocal, cfg.Producer.RequiredAcks)
	assert.Equal(t, 3*time.Second, cfg.Producer.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestNewPublisher_NoBrokers(t *testing.T) {
	publisher, err := NewPublisher(config.Events{}, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, nopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), models.PostEvent{}))
	assert.NoError(t, publisher.Close())
}
