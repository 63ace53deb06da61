// Package metrics registers the engine's prometheus collectors. The
// service updates them on every mutation; cmd/server exposes them over
// the standard /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Ops = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kestrel",
		Name:      "ops_total",
		Help:      "Mutations applied, by kind.",
	}, []string{"kind"})

	LiveKeys = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "kestrel",
		Name:      "live_keys",
		Help:      "Number of live keys in the keyspace.",
	})

	TreeBlackHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "kestrel",
		Name:      "tree_black_height",
		Help:      "Black-height of the ordering tree.",
	})

	SnapshotSeq = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "kestrel",
		Name:      "snapshot_seq",
		Help:      "Sequence of the latest written snapshot.",
	})
)
