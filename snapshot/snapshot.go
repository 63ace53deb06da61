package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Entries []KeyEntry
}

type KeyEntry struct {
	Key      []byte
	Value    []byte
	Seq      uint64
	ExpireAt int64
}
