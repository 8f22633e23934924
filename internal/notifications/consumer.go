package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"retreatly/internal/shared/config"

	"github.com/IBM/sarama"
)

// Consumer drains booking events and turns them into guest emails
type Consumer interface {
	Start(ctx context.Context, numWorkers int) error
	Stop() error
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	emailService  EmailService
	maxRetries    int
	retryBackoff  time.Duration
	cancel        context.CancelFunc
}

func NewKafkaConsumer(cfg config.KafkaConfig, emailService EmailService) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: group,
		topics:        []string{cfg.NotificationTopic},
		emailService:  emailService,
		maxRetries:    3,
		retryBackoff:  time.Second,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context, numWorkers int) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			log.Printf("Consumer group error: %v", err)
		}
	}()

	for i := 0; i < numWorkers; i++ {
		go c.runWorker(ctx, i)
	}

	log.Printf("Started %d booking-event consumer workers for topics %v", numWorkers, c.topics)
	return nil
}

func (c *kafkaConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &eventHandler{
		workerID:     workerID,
		emailService: c.emailService,
		maxRetries:   c.maxRetries,
		retryBackoff: c.retryBackoff,
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("Consumer worker %d shutting down", workerID)
			return
		default:
			if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
				log.Printf("Worker %d error consuming messages: %v", workerID, err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type eventHandler struct {
	workerID     int
	emailService EmailService
	maxRetries   int
	retryBackoff time.Duration
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				log.Printf("Worker %d: error processing message: %v", h.workerID, err)
			} else {
				session.MarkMessage(message, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *eventHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event BookingEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}

	return h.sendWithRetry(ctx, &event)
}

func (h *eventHandler) sendWithRetry(ctx context.Context, event *BookingEvent) error {
	for attempt := 0; ; attempt++ {
		err := h.emailService.SendBookingEmail(ctx, event)
		if err == nil {
			return nil
		}
		if attempt == h.maxRetries {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		delay := h.retryBackoff * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
