package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// BookingHandler processes one decoded booking notification.
type BookingHandler func(ctx context.Context, n *BookingNotification) error

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeoutMs     int
	HeartbeatMs          int
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              []string{"localhost:9092"},
		GroupID:              "eventrental-booking-workers",
		Topics:               []string{"booking-confirmations"},
		SessionTimeoutMs:     30000,
		HeartbeatMs:          3000,
		OffsetOldest:         false,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

// BookingConsumer feeds booking notifications from Kafka to a handler.
type BookingConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	handler       BookingHandler
}

func NewBookingConsumer(config *ConsumerConfig, handler BookingHandler) (*BookingConsumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &BookingConsumer{
		consumerGroup: group,
		config:        config,
		handler:       handler,
	}, nil
}

// Run consumes until ctx is cancelled.
func (c *BookingConsumer) Run(ctx context.Context) error {
	go func() {
		for err := range c.consumerGroup.Errors() {
			log.Printf("📥 Consumer group error: %v", err)
		}
	}()

	groupHandler := &consumerGroupHandler{
		handler:    c.handler,
		maxRetries: c.config.MaxRetries,
		backoff:    c.config.RetryBackoffDuration,
	}

	log.Printf("📥 Consuming booking notifications from %v", c.config.Topics)
	for {
		if err := c.consumerGroup.Consume(ctx, c.config.Topics, groupHandler); err != nil {
			log.Printf("📥 Error consuming messages: %v", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *BookingConsumer) Close() error {
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type consumerGroupHandler struct {
	handler    BookingHandler
	maxRetries int
	backoff    time.Duration
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				log.Printf("📥 Error processing message at offset %d: %v", message.Offset, err)
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *consumerGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var n BookingNotification
	if err := json.Unmarshal(message.Value, &n); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	if n.Type != NotificationTypeBookingConfirmed {
		return nil
	}
	return h.executeWithRetry(ctx, &n)
}

func (h *consumerGroupHandler) executeWithRetry(ctx context.Context, n *BookingNotification) error {
	var err error
	for attempt := 0; attempt <= h.maxRetries; attempt++ {
		if err = h.handler(ctx, n); err == nil {
			return nil
		}
		if attempt == h.maxRetries {
			break
		}

		delay := h.backoff * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("handler failed after %d attempts: %w", h.maxRetries+1, err)
}
