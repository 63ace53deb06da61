package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"google.golang.org/protobuf/proto"

	"kestrel/api/pb"
	"kestrel/domain/keyspace"
	"kestrel/infra/memory"
	"kestrel/infra/outbox"
	"kestrel/infra/sequence"
	"kestrel/infra/wal"
	"kestrel/snapshot"
)

type testEnv struct {
	svc    *IndexService
	wal    *wal.WAL
	outbox *outbox.Outbox
	walDir string
	ks     *keyspace.Keyspace
	pool   *memory.Pool[keyspace.Version]
	seqGen *sequence.Sequencer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	walDir := filepath.Join(dir, "wal")

	w, err := wal.Open(wal.Config{Dir: walDir})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	ob, err := outbox.Open(filepath.Join(dir, "outbox"))
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() {
		w.Close()
		ob.Close()
	})

	ks := keyspace.New(keyspace.DefaultHistoryCap)
	pool := memory.NewPool(func() *keyspace.Version { return new(keyspace.Version) })
	seqGen := sequence.New(0)
	svc := NewIndexService(
		ks, pool,
		memory.NewRetireRing(1024),
		snapshot.NewReader(),
		w, ob, seqGen,
	)
	return &testEnv{svc: svc, wal: w, outbox: ob, walDir: walDir, ks: ks, pool: pool, seqGen: seqGen}
}

func TestPutGetDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	seq, err := svc.Put([]byte("user/1"), []byte("ada"), 0)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if seq != 1 {
		t.Fatalf("seq = %d, want 1", seq)
	}

	v, ok := svc.Get([]byte("user/1"))
	if !ok {
		t.Fatal("get: not found")
	}
	if !bytes.Equal(v.Value, []byte("ada")) || v.Seq != 1 {
		t.Fatalf("got %q seq=%d", v.Value, v.Seq)
	}

	_, existed, err := svc.Delete([]byte("user/1"))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !existed {
		t.Fatal("delete: key should have been live")
	}
	if _, ok := svc.Get([]byte("user/1")); ok {
		t.Fatal("get after delete: still visible")
	}

	// Deleting a missing key is not an error.
	_, existed, err = svc.Delete([]byte("user/404"))
	if err != nil || existed {
		t.Fatalf("delete missing: existed=%v err=%v", existed, err)
	}
}

func TestScanBoundsAndPattern(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("user/%d", i)
		if _, err := svc.Put([]byte(key), []byte("v"), 0); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}
	if _, err := svc.Put([]byte("session/1"), []byte("v"), 0); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got := svc.Scan([]byte("user/2"), []byte("user/5"), nil, 0)
	want := []string{"user/2", "user/3", "user/4"}
	if len(got) != len(want) {
		t.Fatalf("scan returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if string(got[i].Key) != w {
			t.Fatalf("scan[%d] = %q, want %q", i, got[i].Key, w)
		}
	}

	got = svc.Scan(nil, nil, []byte("session/"), 0)
	if len(got) != 1 || string(got[0].Key) != "session/1" {
		t.Fatalf("pattern scan = %v", got)
	}

	got = svc.Scan(nil, nil, nil, 3)
	if len(got) != 3 {
		t.Fatalf("limited scan returned %d entries, want 3", len(got))
	}
}

func TestSweepExpiresKeys(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	clock := int64(1000)
	svc.now = func() int64 { return clock }

	if _, err := svc.Put([]byte("temp"), []byte("v"), 50); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := svc.Put([]byte("keep"), []byte("v"), 0); err != nil {
		t.Fatalf("put: %v", err)
	}

	if n := svc.Sweep(); n != 0 {
		t.Fatalf("premature sweep expired %d", n)
	}

	clock = 1100
	if n := svc.Sweep(); n != 1 {
		t.Fatalf("sweep expired %d, want 1", n)
	}
	if _, ok := svc.Get([]byte("temp")); ok {
		t.Fatal("expired key still visible")
	}
	if _, ok := svc.Get([]byte("keep")); !ok {
		t.Fatal("unexpired key vanished")
	}
}

func TestReplayRestoresState(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	if _, err := svc.Put([]byte("a"), []byte("1"), 0); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := svc.Put([]byte("b"), []byte("2"), 0); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, _, err := svc.Delete([]byte("a")); err != nil {
		t.Fatalf("delete: %v", err)
	}

	ks := keyspace.New(keyspace.DefaultHistoryCap)
	seqGen := sequence.New(0)
	if err := ReplayFromWAL(env.walDir, 0, ks, env.pool, seqGen); err != nil {
		t.Fatalf("replay: %v", err)
	}

	if seqGen.Current() != 3 {
		t.Fatalf("sequencer resumed at %d, want 3", seqGen.Current())
	}
	if ks.Len() != 1 {
		t.Fatalf("replayed %d live keys, want 1", ks.Len())
	}
	if e := ks.Get([]byte("b"), 0); e == nil || !bytes.Equal(e.Value, []byte("2")) {
		t.Fatalf("replayed entry b = %v", e)
	}
	if e := ks.Get([]byte("a"), 0); e != nil {
		t.Fatal("deleted key a survived replay")
	}
}

func TestConcurrentWritersReplayCleanly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				key := fmt.Sprintf("w%d/k%d", w, i)
				if _, err := svc.Put([]byte(key), []byte("v"), 0); err != nil {
					t.Errorf("put %s: %v", key, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	// Records must have hit the log in seq order; replay refuses a log
	// that goes backwards.
	ks := keyspace.New(keyspace.DefaultHistoryCap)
	seqGen := sequence.New(0)
	if err := ReplayFromWAL(env.walDir, 0, ks, env.pool, seqGen); err != nil {
		t.Fatalf("replay after concurrent writes: %v", err)
	}
	if got := seqGen.Current(); got != workers*perWorker {
		t.Fatalf("sequencer resumed at %d, want %d", got, workers*perWorker)
	}
	if ks.Len() != workers*perWorker {
		t.Fatalf("replayed %d live keys, want %d", ks.Len(), workers*perWorker)
	}
}

func TestSweepKeepsKeyOnAppendFailure(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	clock := int64(1000)
	svc.now = func() int64 { return clock }

	if _, err := svc.Put([]byte("temp"), []byte("v"), 50); err != nil {
		t.Fatalf("put: %v", err)
	}

	clock = 2000
	env.wal.Close() // the expiry can no longer be logged

	if n := svc.Sweep(); n != 0 {
		t.Fatalf("sweep expired %d entries without a log record", n)
	}
	if env.ks.Len() != 1 {
		t.Fatal("entry expired despite failed append")
	}
	if env.ks.NextDue(clock) == nil {
		t.Fatal("entry left the expiry queue; later sweeps cannot retry it")
	}
}

func TestCheckpointStampsKeyspaceSeq(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	if _, err := svc.Put([]byte("k"), []byte("v1"), 0); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := svc.Put([]byte("k"), []byte("v2"), 0); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Draws seq 3 without touching the keyspace.
	if _, _, err := svc.Delete([]byte("missing")); err != nil {
		t.Fatalf("delete: %v", err)
	}

	snapDir := t.TempDir()
	svc.checkpoint(&snapshot.Writer{Dir: snapDir})

	ks := keyspace.New(keyspace.DefaultHistoryCap)
	snapSeq, err := snapshot.Load(snapDir, ks, env.pool)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if snapSeq != 2 {
		t.Fatalf("checkpoint stamped seq %d, want keyspace high-water 2", snapSeq)
	}

	// Restore must not re-apply mutations the snapshot already holds.
	seqGen := sequence.New(0)
	if err := ReplayFromWAL(env.walDir, snapSeq, ks, env.pool, seqGen); err != nil {
		t.Fatalf("replay: %v", err)
	}
	e := ks.Get([]byte("k"), 0)
	if e == nil || !bytes.Equal(e.Value, []byte("v2")) || e.Seq != 2 {
		t.Fatalf("restored entry = %+v", e)
	}
	versions := 0
	ks.Versions(e, func(*keyspace.Version) bool {
		versions++
		return true
	})
	if versions != 0 {
		t.Fatalf("restore duplicated history: %d versions", versions)
	}
}

func TestOutboxReceivesChangeEvents(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc

	seq, err := svc.Put([]byte("k"), []byte("v"), 0)
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := env.outbox.Get(seq)
	if err != nil {
		t.Fatalf("outbox get: %v", err)
	}
	if rec.State != outbox.StateNew {
		t.Fatalf("outbox state = %v, want NEW", rec.State)
	}

	var ev pb.ChangeEvent
	if err := proto.Unmarshal(rec.Payload, &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if ev.Type != "put" || !bytes.Equal(ev.Key, []byte("k")) || ev.Seq != seq {
		t.Fatalf("event = %+v", &ev)
	}
}
