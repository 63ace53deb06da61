package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Consumer wraps a kafka-go reader on the command ingest topic.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  group,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
	}
}

// Fetch blocks until the next message or ctx is done.
func (c *Consumer) Fetch(ctx context.Context) (key, value []byte, err error) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return m.Key, m.Value, nil
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
