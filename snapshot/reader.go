package snapshot

import "kestrel/infra/memory"

/*
Snapshot Reader

Thin adapter over memory.ReaderEpoch. Its only job is to mark the
start and end of a consistent read of the keyspace; epoch advance
and reclamation live in infra/memory and the service layer.
*/

type Reader struct {
	epoch *memory.ReaderEpoch
}

func NewReader() *Reader {
	return &Reader{
		epoch: &memory.ReaderEpoch{},
	}
}

// Begin marks the start of a consistent snapshot.
func (r *Reader) Begin() {
	r.epoch.Enter()
}

// End marks the end of a snapshot.
func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for reclaimers.
func (r *Reader) Epoch() *memory.ReaderEpoch {
	return r.epoch
}
