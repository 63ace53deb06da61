package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"kestrel/domain/keyspace"
)

type Writer struct {
	Dir string
}

func (w *Writer) Write(seq uint64, ks *keyspace.Keyspace) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Entries: make([]KeyEntry, 0, 1024),
	}

	ks.Walk(func(e *keyspace.Entry) bool {
		s.Entries = append(s.Entries, KeyEntry{
			Key: e.Key, Value: e.Value,
			Seq: e.Seq, ExpireAt: e.ExpireAt,
		})
		return true
	})

	return gob.NewEncoder(f).Encode(&s)
}
