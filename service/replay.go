package service

import (
	"fmt"
	"log"

	"google.golang.org/protobuf/proto"

	"kestrel/api/pb"
	"kestrel/domain/keyspace"
	"kestrel/infra/memory"
	"kestrel/infra/sequence"
	"kestrel/infra/wal"
)

/*
ReplayFromWAL rebuilds in-memory state from the WAL.

IMPORTANT:
- This MUST run before accepting traffic
- Records at or below fromSeq are skipped (covered by the snapshot)
*/

func ReplayFromWAL(
	walDir string,
	fromSeq uint64,
	ks *keyspace.Keyspace,
	versions *memory.Pool[keyspace.Version],
	seqGen *sequence.Sequencer,
) error {
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Seq <= fromSeq {
			return nil
		}

		switch rec.Type {
		case wal.RecordPut:
			var e pb.Entry
			if err := proto.Unmarshal(rec.Data, &e); err != nil {
				return fmt.Errorf("replay put seq=%d: %w", rec.Seq, err)
			}
			ks.Put(e.Key, e.Value, rec.Seq, e.ExpireAt, versions)

		case wal.RecordDelete:
			var d pb.DeleteRequest
			if err := proto.Unmarshal(rec.Data, &d); err != nil {
				return fmt.Errorf("replay delete seq=%d: %w", rec.Seq, err)
			}
			ks.Delete(d.Key, rec.Seq, versions)

		case wal.RecordExpire:
			// Expire payloads are the raw key. A tombstone is
			// equivalent once the entry is gone.
			ks.Delete(rec.Data, rec.Seq, versions)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay.
	if lastSeq > fromSeq {
		seqGen.Reset(lastSeq)
	} else {
		seqGen.Reset(fromSeq)
	}

	log.Printf("[service] wal replay complete (last seq = %d)", seqGen.Current())
	return nil
}
