package service

import (
	"bytes"
	"log"
	"sync"
	"time"

	"google.golang.org/protobuf/proto"

	"kestrel/api/pb"
	"kestrel/domain/keyspace"
	"kestrel/infra/memory"
	"kestrel/infra/metrics"
	"kestrel/infra/outbox"
	"kestrel/infra/sequence"
	"kestrel/infra/wal"
	"kestrel/snapshot"
)

/*
IndexService is the ONLY write entry point into the system.

All coordination between:
- domain (keyspace)
- infra (memory, wal, outbox)
- snapshot
happens here.

Write order per mutation: sequence, WAL, keyspace, outbox. The WAL
append commits the mutation; the outbox write is best-effort and
recoverable from the WAL.
*/

type IndexService struct {
	mu       sync.Mutex
	ks       *keyspace.Keyspace
	versions *memory.Pool[keyspace.Version]
	ring     *memory.RetireRing
	reader   *snapshot.Reader
	wal      *wal.WAL
	outbox   *outbox.Outbox
	seqGen   *sequence.Sequencer

	// now returns wall time in unix milliseconds. Swappable in tests.
	now func() int64
}

// EntryView is a detached copy of a live entry, safe to hold after the
// call that produced it returns.
type EntryView struct {
	Key      []byte
	Value    []byte
	Seq      uint64
	ExpireAt int64
}

// NewIndexService wires all dependencies.
// No globals. No magic.
func NewIndexService(
	ks *keyspace.Keyspace,
	versions *memory.Pool[keyspace.Version],
	ring *memory.RetireRing,
	reader *snapshot.Reader,
	w *wal.WAL,
	ob *outbox.Outbox,
	seqGen *sequence.Sequencer,
) *IndexService {
	return &IndexService{
		ks:       ks,
		versions: versions,
		ring:     ring,
		reader:   reader,
		wal:      w,
		outbox:   ob,
		seqGen:   seqGen,
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Put writes key=value with an optional TTL in milliseconds (0 means no
// expiry). It returns the assigned sequence number.
//
// The seq draw, WAL append, and keyspace apply for every mutation
// happen under one critical section: replay requires the log to carry
// strictly increasing seqs, and the WAL itself is not locked.
func (s *IndexService) Put(key, value []byte, ttlMs int64) (uint64, error) {
	var expireAt int64
	if ttlMs > 0 {
		expireAt = s.now() + ttlMs
	}

	payload, err := proto.Marshal(&pb.Entry{
		Key: key, Value: value, ExpireAt: expireAt,
	})
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	seq := s.seqGen.Next()

	// 1. WAL intent. The record commits the write.
	if err := s.wal.Append(wal.NewRecord(wal.RecordPut, seq, payload)); err != nil {
		s.mu.Unlock()
		return 0, err
	}

	// 2. Deterministic domain apply.
	_, _, trimmed := s.ks.Put(key, value, seq, expireAt, s.versions)
	s.retire(trimmed)
	live := s.ks.Len()
	bh := s.ks.BlackHeight()
	s.mu.Unlock()

	// 3. Outbox event for the broadcaster.
	s.emit("put", key, seq)

	metrics.Ops.WithLabelValues("put").Inc()
	metrics.LiveKeys.Set(float64(live))
	metrics.TreeBlackHeight.Set(float64(bh))
	return seq, nil
}

// Delete tombstones key. The second return reports whether the key was
// live.
func (s *IndexService) Delete(key []byte) (uint64, bool, error) {
	payload, err := proto.Marshal(&pb.DeleteRequest{Key: key})
	if err != nil {
		return 0, false, err
	}

	s.mu.Lock()
	seq := s.seqGen.Next()
	if err := s.wal.Append(wal.NewRecord(wal.RecordDelete, seq, payload)); err != nil {
		s.mu.Unlock()
		return 0, false, err
	}

	e, trimmed := s.ks.Delete(key, seq, s.versions)
	s.retire(trimmed)
	live := s.ks.Len()
	s.mu.Unlock()

	if e == nil {
		return seq, false, nil
	}

	s.emit("delete", key, seq)

	metrics.Ops.WithLabelValues("delete").Inc()
	metrics.LiveKeys.Set(float64(live))
	return seq, true, nil
}

// Sweep expires every key whose TTL elapsed. Intended to be called
// periodically by a background job. Each expiry is logged before it is
// applied; if the append fails the entry stays live and queued, and the
// next sweep retries it.
func (s *IndexService) Sweep() int {
	now := s.now()

	type expired struct {
		key []byte
		seq uint64
	}
	var done []expired

	s.mu.Lock()
	for {
		e := s.ks.NextDue(now)
		if e == nil {
			break
		}
		seq := s.seqGen.Next()
		if err := s.wal.Append(wal.NewRecord(wal.RecordExpire, seq, e.Key)); err != nil {
			log.Printf("[service] expire wal append: %v", err)
			break
		}
		s.ks.MarkExpired(e)
		done = append(done, expired{key: e.Key, seq: seq})
	}
	live := s.ks.Len()
	s.mu.Unlock()

	for _, x := range done {
		s.emit("expire", x.key, x.seq)
		metrics.Ops.WithLabelValues("expire").Inc()
	}

	metrics.LiveKeys.Set(float64(live))
	return len(done)
}

// StartExpiryJob runs Sweep on a fixed interval until ticker users shut
// the process down.
func (s *IndexService) StartExpiryJob(interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			s.Sweep()
		}
	}()
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Get returns a copy of the live entry for key.
func (s *IndexService) Get(key []byte) (EntryView, bool) {
	s.reader.Begin()
	defer s.reader.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.ks.Get(key, s.now())
	if e == nil {
		return EntryView{}, false
	}
	return viewOf(e), true
}

// Scan returns up to limit live entries with start <= key < end, in
// ascending key order. A non-empty pattern additionally filters to keys
// containing it as a substring. limit <= 0 means unbounded.
func (s *IndexService) Scan(start, end, pattern []byte, limit int) []EntryView {
	s.reader.Begin()
	defer s.reader.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]EntryView, 0, 64)
	collect := func(e *keyspace.Entry) bool {
		out = append(out, viewOf(e))
		return limit <= 0 || len(out) < limit
	}

	if len(pattern) > 0 {
		s.ks.Match(pattern, func(e *keyspace.Entry) bool {
			if len(start) > 0 && bytes.Compare(e.Key, start) < 0 {
				return true
			}
			if len(end) > 0 && bytes.Compare(e.Key, end) >= 0 {
				return false
			}
			return collect(e)
		})
		return out
	}

	var lo, hi []byte
	if len(start) > 0 {
		lo = start
	}
	if len(end) > 0 {
		hi = end
	}
	s.ks.Range(lo, hi, collect)
	return out
}

// Snapshot returns a consistent view of all live entries.
func (s *IndexService) Snapshot() []EntryView {
	return s.Scan(nil, nil, nil, 0)
}

// LastSeq reports the highest assigned sequence number.
func (s *IndexService) LastSeq() uint64 {
	return s.seqGen.Current()
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation of trimmed version records.
// Intended to be called periodically by a background job.
func (s *IndexService) AdvanceEpoch() {
	memory.AdvanceEpochAndReclaim(
		s.ring,
		s.versions, // satisfies ReclaimablePool via PutAny
		s.reader.Epoch(),
	)
}

func (s *IndexService) retire(trimmed []*keyspace.Version) {
	for _, v := range trimmed {
		if !s.ring.Enqueue(v) {
			// Ring full; drop on the floor and let GC take it.
			return
		}
	}
}

func (s *IndexService) emit(kind string, key []byte, seq uint64) {
	ev, err := proto.Marshal(&pb.ChangeEvent{
		Type: kind, Key: key, Seq: seq, Time: s.now(),
	})
	if err != nil {
		log.Printf("[service] marshal change event: %v", err)
		return
	}
	if err := s.outbox.PutNew(seq, ev); err != nil {
		log.Printf("[service] outbox put seq=%d: %v", seq, err)
	}
}

func viewOf(e *keyspace.Entry) EntryView {
	return EntryView{
		Key:      append([]byte(nil), e.Key...),
		Value:    append([]byte(nil), e.Value...),
		Seq:      e.Seq,
		ExpireAt: e.ExpireAt,
	}
}
