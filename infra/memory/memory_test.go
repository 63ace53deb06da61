package memory

import "testing"

type blob struct{ n int }

func TestRetireRingFIFO(t *testing.T) {
	r := NewRetireRing(4)

	for i := 0; i < 4; i++ {
		if !r.Enqueue(&blob{n: i}) {
			t.Fatalf("enqueue %d failed", i)
		}
	}
	if r.Enqueue(&blob{n: 99}) {
		t.Fatal("expected a full ring to reject enqueue")
	}

	for i := 0; i < 4; i++ {
		v := r.Dequeue()
		if v == nil || v.(*blob).n != i {
			t.Fatalf("expected %d out in FIFO order", i)
		}
	}
	if r.Dequeue() != nil {
		t.Fatal("expected empty ring")
	}
}

func TestReclaimWaitsForReaders(t *testing.T) {
	pool := NewPool(func() *blob { return &blob{} })
	ring := NewRetireRing(8)
	reader := &ReaderEpoch{}
	reader.Exit()

	retired := &blob{n: 7}
	ring.Enqueue(retired)

	// An active reader pins the retired object in the ring.
	reader.Enter()
	AdvanceEpochAndReclaim(ring, pool, reader)
	if ring.Dequeue() == nil {
		t.Fatal("expected the object to stay retired while a reader is active")
	}
	ring.Enqueue(retired)

	// Once the reader exits, the object is reclaimed.
	reader.Exit()
	AdvanceEpochAndReclaim(ring, pool, reader)
	if ring.Dequeue() != nil {
		t.Fatal("expected the ring drained after reclamation")
	}
}

func TestPoolRoundTrip(t *testing.T) {
	pool := NewPool(func() *blob { return &blob{} })

	b := pool.Get()
	b.n = 42
	pool.Put(b)

	if pool.Get() == nil {
		t.Fatal("expected an object from the pool")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected PutAny to panic on a wrong type")
		}
	}()
	pool.PutAny("not a blob")
}
