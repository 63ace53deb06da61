// Package ingest applies write commands arriving on a Kafka topic.
// It is the bulk-load path: producers publish PutRequest payloads and
// the ingester funnels them through the same service write path as
// gRPC, so WAL, outbox, and metrics all see them.
package ingest

import (
	"context"
	"errors"
	"log"

	"google.golang.org/protobuf/proto"

	"kestrel/api/pb"
	"kestrel/infra/kafka"
	"kestrel/service"
)

type Ingester struct {
	consumer *kafka.Consumer
	svc      *service.IndexService
}

func New(consumer *kafka.Consumer, svc *service.IndexService) *Ingester {
	return &Ingester{consumer: consumer, svc: svc}
}

// Run consumes until ctx is done. Malformed payloads are logged and
// skipped; the command stream must keep moving.
func (i *Ingester) Run(ctx context.Context) error {
	log.Println("[ingest] started")

	for {
		_, value, err := i.consumer.Fetch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		var cmd pb.PutRequest
		if err := proto.Unmarshal(value, &cmd); err != nil {
			log.Printf("[ingest] skip malformed command: %v", err)
			continue
		}
		if len(cmd.Key) == 0 {
			log.Println("[ingest] skip command with empty key")
			continue
		}

		if _, err := i.svc.Put(cmd.Key, cmd.Value, cmd.TtlMs); err != nil {
			// WAL append failed; stop rather than drop writes.
			return err
		}
	}
}

func (i *Ingester) Close() error {
	return i.consumer.Close()
}
