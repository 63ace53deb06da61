package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"kestrel/domain/keyspace"
	"kestrel/infra/memory"
)

func Load(
	dir string,
	ks *keyspace.Keyspace,
	versions *memory.Pool[keyspace.Version],
) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Entries {
		ks.Put(e.Key, e.Value, e.Seq, e.ExpireAt, versions)
	}

	return s.Seq, nil
}
