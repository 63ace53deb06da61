package outbox

import "testing"

func openTest(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

func TestStateMachine(t *testing.T) {
	o := openTest(t)

	if err := o.PutNew(1, []byte("ev-1")); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := o.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || string(rec.Payload) != "ev-1" {
		t.Fatalf("unexpected record %+v", rec)
	}

	if err := o.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}

	rec, _ = o.Get(1)
	if rec.State != StateAcked {
		t.Fatalf("expected ACKED, got %v", rec.State)
	}
	if rec.LastAttempt == 0 {
		t.Fatal("expected LastAttempt set")
	}
}

func TestMarkFailedBumpsRetries(t *testing.T) {
	o := openTest(t)

	_ = o.PutNew(5, []byte("ev"))
	_ = o.MarkFailed(5)
	_ = o.MarkFailed(5)

	rec, _ := o.Get(5)
	if rec.State != StateFailed || rec.Retries != 2 {
		t.Fatalf("expected FAILED with 2 retries, got %+v", rec)
	}
}

func TestScanPendingOrder(t *testing.T) {
	o := openTest(t)

	for _, seq := range []uint64{3, 1, 2} {
		_ = o.PutNew(seq, []byte{byte(seq)})
	}
	_ = o.MarkAcked(2)
	_ = o.MarkSent(3) // SENT but unacked stays pending

	var seen []uint64
	err := o.ScanPending(func(rec Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("expected pending [1 3] in seq order, got %v", seen)
	}
}

func TestTruncateAcked(t *testing.T) {
	o := openTest(t)

	for seq := uint64(1); seq <= 4; seq++ {
		_ = o.PutNew(seq, []byte("ev"))
		_ = o.MarkAcked(seq)
	}
	_ = o.PutNew(5, []byte("ev"))

	if err := o.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	for seq := uint64(1); seq <= 3; seq++ {
		if _, err := o.Get(seq); err == nil {
			t.Fatalf("expected seq %d removed", seq)
		}
	}
	if _, err := o.Get(4); err != nil {
		t.Fatal("expected acked seq 4 above the bound to remain")
	}
	if _, err := o.Get(5); err != nil {
		t.Fatal("expected pending seq 5 to remain")
	}
}
