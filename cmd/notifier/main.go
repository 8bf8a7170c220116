package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/HalisahaBookingService/internal/config"
	"github.com/m04kA/HalisahaBookingService/internal/infra/notify"
	"github.com/m04kA/HalisahaBookingService/pkg/logger"
)

// Notifier читает события о новых бронях из Kafka и шлёт письмо
// администратору. Доставка best-effort: упавшее письмо логируется
// и не блокирует обработку следующих событий
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Halisaha notifier...")

	if !cfg.Kafka.Enabled {
		log.Fatal("Kafka is disabled in config; notifier has nothing to consume")
	}

	consumer := notify.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
	defer consumer.Close()
	log.Info("Kafka consumer initialized (brokers=%v, topic=%s, group=%s)",
		cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down notifier...")
		cancel()
	}()

	err = consumer.Consume(ctx, func(msgCtx context.Context, msg kafka.Message) error {
		var event notify.ReservationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("Skipping malformed event at offset %d: %v", msg.Offset, err)
			return nil
		}

		if event.Type != notify.EventReservationCreated {
			log.Info("Ignoring event type %q at offset %d", event.Type, msg.Offset)
			return nil
		}

		if err := sendAdminEmail(&cfg.SMTP, &event); err != nil {
			log.Error("Failed to send email for reservation %s: %v", event.ReservationID, err)
			return nil
		}

		log.Info("Notified admin about reservation %s (%s %s %s, customer=%q)",
			event.ReservationID, event.Date, event.Field, event.TimeSlot, event.CustomerName)
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Error("Consumer stopped with error: %v", err)
	}

	log.Info("Notifier stopped gracefully")
}

func sendAdminEmail(cfg *config.SMTPConfig, event *notify.ReservationEvent) error {
	subject := fmt.Sprintf("New reservation request: %s %s (%s)", event.Date, event.TimeSlot, event.Field)
	body := fmt.Sprintf(
		"Customer %s requested %s on %s, slot %s.\r\nReservation ID: %s\r\n",
		event.CustomerName, event.Field, event.Date, event.TimeSlot, event.ReservationID,
	)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		cfg.From, cfg.AdminTo, subject, body)

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return smtp.SendMail(cfg.Addr(), auth, cfg.From, []string{cfg.AdminTo}, []byte(msg))
}
