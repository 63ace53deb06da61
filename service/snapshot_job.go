package service

import (
	"log"
	"time"

	"kestrel/infra/metrics"
	"kestrel/snapshot"
)

// StartSnapshotJob periodically checkpoints the keyspace, then
// truncates the WAL segments and acked outbox records the checkpoint
// makes redundant. It also advances the reclamation epoch; the
// checkpoint is the natural quiescent point for it.
func (s *IndexService) StartSnapshotJob(
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			s.checkpoint(w)
		}
	}()
}

// checkpoint writes one snapshot and trims the logs behind it. The
// checkpoint seq is the keyspace's own high-water mark, read in the
// same critical section as the state it stamps; a seq read outside it
// can trail mutations the snapshot already contains, and replay would
// apply those twice.
func (s *IndexService) checkpoint(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.ks.LastSeq()
	err := w.Write(seq, s.ks)
	s.mu.Unlock()
	if err != nil {
		log.Printf("[service] snapshot write: %v", err)
		return
	}

	if err := s.wal.TruncateBefore(seq); err != nil {
		log.Printf("[service] wal truncate: %v", err)
	}
	if err := s.outbox.TruncateAckedUpTo(seq); err != nil {
		log.Printf("[service] outbox truncate: %v", err)
	}

	s.AdvanceEpoch()
	metrics.SnapshotSeq.Set(float64(seq))
}
