package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventrental/internal/events"

	"github.com/IBM/sarama"
)

// Notifier announces confirmed bookings to downstream consumers.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, e *events.Event) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka booking producer
type KafkaProducerConfig struct {
	Brokers          []string
	BookingTopic     string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		BookingTopic:     "booking-confirmations",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000,
	}
}

// KafkaBookingNotifier publishes booking confirmations to Kafka
type KafkaBookingNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaBookingNotifier(config *KafkaProducerConfig) (*KafkaBookingNotifier, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka booking producer created for topic %s", config.BookingTopic)
	return NewKafkaBookingNotifierWithProducer(producer, config.BookingTopic), nil
}

// NewKafkaBookingNotifierWithProducer wraps an existing producer.
func NewKafkaBookingNotifierWithProducer(producer sarama.SyncProducer, topic string) *KafkaBookingNotifier {
	return &KafkaBookingNotifier{
		producer: producer,
		topic:    topic,
	}
}

func (k *KafkaBookingNotifier) NotifyBookingConfirmed(ctx context.Context, e *events.Event) error {
	notification := NewBookingConfirmed(e)

	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     k.topic,
		Key:       sarama.StringEncoder(notification.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   createHeaders(notification),
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := k.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking notification to Kafka: %w", err)
	}

	log.Printf("📤 Booking notification published - Topic: %s, Partition: %d, Offset: %d, Venue: %s, Date: %s",
		k.topic, partition, offset, notification.VenueCode, notification.EventDate)
	return nil
}

func createHeaders(n *BookingNotification) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("notification_id"), Value: []byte(n.ID.String())},
		{Key: []byte("notification_type"), Value: []byte(n.Type)},
		{Key: []byte("event_id"), Value: []byte(n.EventID.String())},
		{Key: []byte("venue_code"), Value: []byte(n.VenueCode)},
		{Key: []byte("producer"), Value: []byte("eventrental-registry")},
		{Key: []byte("created_at"), Value: []byte(n.CreatedAt.Format(time.RFC3339))},
	}
}

func (k *KafkaBookingNotifier) Close() error {
	if k.producer == nil {
		return nil
	}
	if err := k.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	log.Printf("📤 Kafka booking producer closed")
	return nil
}

// NoopNotifier is used when Kafka is disabled.
type NoopNotifier struct{}

func (NoopNotifier) NotifyBookingConfirmed(ctx context.Context, e *events.Event) error {
	return nil
}

func (NoopNotifier) Close() error {
	return nil
}
