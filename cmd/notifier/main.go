package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"eventrental/internal/notifications"
	"eventrental/internal/shared/config"
	"eventrental/pkg/logger"

	"github.com/joho/godotenv"
)

// Consumes booking confirmations and logs them. Stands in for the mailer
// or CRM sync that would subscribe to the topic.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	appLogger := logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	logger.SetDefault(appLogger)

	consumerConfig := notifications.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup
	consumerConfig.Topics = []string{cfg.Kafka.BookingTopic}

	consumer, err := notifications.NewBookingConsumer(consumerConfig, func(ctx context.Context, n *notifications.BookingNotification) error {
		appLogger.Info("📬 Booking confirmed",
			slog.String("event_id", n.EventID.String()),
			slog.String("category", n.Category),
			slog.String("tier", n.Tier),
			slog.String("venue", n.VenueCode),
			slog.String("date", n.EventDate),
			slog.Int("guests", n.GuestCount),
			slog.Float64("total", n.TotalPrice),
		)
		return nil
	})
	if err != nil {
		appLogger.Error("Failed to create booking consumer", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			appLogger.Error("Error closing booking consumer", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Booking consumer stopped", slog.Any("error", err))
	}
	appLogger.Info("Booking consumer exited")
}
