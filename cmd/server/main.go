package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"kestrel/api/grpcserver"
	pb "kestrel/api/pb"
	"kestrel/domain/keyspace"
	"kestrel/infra/kafka"
	"kestrel/infra/memory"
	"kestrel/infra/outbox"
	"kestrel/infra/sequence"
	"kestrel/infra/wal"
	"kestrel/jobs/broadcaster"
	"kestrel/jobs/ingest"
	"kestrel/service"
	"kestrel/snapshot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "kestrel-server",
		Short:         "Ordered key index engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.String("listen", ":50051", "gRPC listen address")
	flags.String("metrics-listen", ":9100", "prometheus /metrics listen address")
	flags.String("data-dir", "./data", "directory for WAL, outbox, and snapshots")
	flags.Int("history-cap", keyspace.DefaultHistoryCap, "per-key version history cap")
	flags.Duration("snapshot-interval", time.Minute, "snapshot checkpoint interval")
	flags.Duration("expiry-interval", time.Second, "TTL sweep interval")
	flags.StringSlice("kafka-brokers", nil, "kafka broker addresses (empty disables kafka)")
	flags.String("events-topic", "kestrel.events", "topic change events are published to")
	flags.String("ingest-topic", "", "topic to consume PutRequest commands from (empty disables)")
	flags.String("ingest-group", "kestrel-ingest", "consumer group for the ingest topic")

	v.SetEnvPrefix("KESTREL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func run(v *viper.Viper) error {
	dataDir := v.GetString("data-dir")
	walDir := filepath.Join(dataDir, "wal")
	snapDir := filepath.Join(dataDir, "snapshots")

	// ---------------- WAL ----------------

	w, err := wal.Open(wal.Config{Dir: walDir})
	if err != nil {
		return fmt.Errorf("wal init: %w", err)
	}
	defer w.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(filepath.Join(dataDir, "outbox"))
	if err != nil {
		return fmt.Errorf("outbox init: %w", err)
	}
	defer ob.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *keyspace.Version {
		return &keyspace.Version{}
	})
	ring := memory.NewRetireRing(1 << 18)
	reader := snapshot.NewReader()

	// ---------------- Domain ----------------

	ks := keyspace.New(v.GetInt("history-cap"))

	// ---------------- Recovery ----------------

	snapSeq, err := snapshot.Load(snapDir, ks, pool)
	if err != nil {
		return fmt.Errorf("snapshot load: %w", err)
	}
	if err := service.ReplayFromWAL(walDir, snapSeq, ks, pool, seqGen); err != nil {
		return fmt.Errorf("wal replay: %w", err)
	}

	// ---------------- Service ----------------

	svc := service.NewIndexService(ks, pool, ring, reader, w, ob, seqGen)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(snapDir, v.GetDuration("snapshot-interval"))
	svc.StartExpiryJob(v.GetDuration("expiry-interval"))

	brokers := v.GetStringSlice("kafka-brokers")
	if len(brokers) > 0 {
		bc, err := broadcaster.New(ob, brokers, v.GetString("events-topic"))
		if err != nil {
			return fmt.Errorf("broadcaster init: %w", err)
		}
		defer bc.Close()
		bc.Start(ctx)

		if topic := v.GetString("ingest-topic"); topic != "" {
			ing := ingest.New(
				kafka.NewConsumer(brokers, topic, v.GetString("ingest-group")),
				svc,
			)
			defer ing.Close()
			go func() {
				if err := ing.Run(ctx); err != nil {
					log.Fatalf("ingest exited: %v", err)
				}
			}()
		}
	}

	// ---------------- Metrics ----------------

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(v.GetString("metrics-listen"), mux); err != nil {
			log.Printf("metrics server exited: %v", err)
		}
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", v.GetString("listen"))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterKestrelServer(grpcSrv, grpcserver.NewServer(svc))

	log.Printf("kestrel engine running on %s", v.GetString("listen"))
	return grpcSrv.Serve(lis)
}
