package notify

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Consumer читает события о бронях из Kafka (для notifier-воркера)
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer создает consumer-группу на указанный топик
func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})

	return &Consumer{reader: reader}
}

// Consume читает сообщения в цикле и передаёт их обработчику
// Ошибка обработчика логируется вызывающей стороной; чтение продолжается
// до отмены контекста
func (c *Consumer) Consume(ctx context.Context, handle func(ctx context.Context, msg kafka.Message) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		// Уведомления best-effort: ошибка обработчика не возвращает
		// сообщение в топик и не останавливает чтение
		_ = handle(ctx, msg)
	}
}

// Close закрывает reader
func (c *Consumer) Close() error {
	return c.reader.Close()
}
