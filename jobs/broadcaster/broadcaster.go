// Package broadcaster drains the durable outbox to Kafka. It is the
// only component that publishes change events; crash recovery falls out
// of the outbox state machine rather than producer-side bookkeeping.
package broadcaster

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"kestrel/infra/outbox"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: 250 * time.Millisecond,
	}, nil
}

// ------------------------------------------------
// START LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// ------------------------------------------------
// DRAIN LOGIC (CRITICAL)
// ------------------------------------------------

// drainOnce walks NEW and SENT events in seq order and pushes each to
// Kafka. A SENT event whose publish failed last round is retried; a
// SENT event that actually reached the broker may be published twice,
// so downstream consumers must dedupe on seq.
func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanPending(func(rec outbox.Record) error {

		// 1. Mark SENT (idempotent).
		_ = b.outbox.MarkSent(rec.Seq)

		// 2. Publish to Kafka.
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(keyForSeq(rec.Seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			_ = b.outbox.MarkFailed(rec.Seq)
			return nil // retry next round
		}

		// 3. Mark ACKED.
		_ = b.outbox.MarkAcked(rec.Seq)

		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

// keyForSeq keys messages by seq so a partitioned topic still dedupes
// per event and compaction keeps the latest publish.
func keyForSeq(seq uint64) string {
	return strconv.FormatUint(seq, 10)
}
