package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"retreatly/internal/shared/config"

	"github.com/IBM/sarama"
)

// Producer publishes booking events. A nil-safe no-op implementation backs
// deployments without Kafka.
type Producer interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer builds a sync producer with idempotent writes and hash
// partitioning on the booking ID.
func NewKafkaProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka booking-event producer created (topic %s)", cfg.NotificationTopic)
	return &kafkaProducer{producer: producer, topic: cfg.NotificationTopic}, nil
}

func (p *kafkaProducer) PublishBookingEvent(ctx context.Context, event *BookingEvent) error {
	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.ID.String())},
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("booking_ref"), Value: []byte(event.BookingRef)},
		},
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	log.Printf("Booking event published - Topic: %s, Partition: %d, Offset: %d, Type: %s, Ref: %s",
		p.topic, partition, offset, event.Type, event.BookingRef)
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// noopProducer logs events instead of publishing them. Used when Kafka is not
// configured so booking flows still work in local setups.
type noopProducer struct{}

func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) PublishBookingEvent(_ context.Context, event *BookingEvent) error {
	log.Printf("[noop producer] booking event %s for %s", event.Type, event.BookingRef)
	return nil
}

func (noopProducer) Close() error { return nil }
