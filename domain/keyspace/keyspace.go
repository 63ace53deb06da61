// Package keyspace is the ordered key index at the heart of the engine:
// a red-black tree over []byte keys for ordered scans, a hash table over
// the same entries for exact lookups, a capped version history per key,
// and a TTL queue. It is single-writer and deterministic; all
// coordination with WAL, outbox, and reclamation happens in the service
// layer.
package keyspace

import (
	"bytes"

	"kestrel/container/binheap"
	"kestrel/container/htable"
	"kestrel/container/rbtree"
	"kestrel/search"
)

// DefaultHistoryCap bounds the version history kept per key.
const DefaultHistoryCap = 8

// VersionSource supplies recycled Version records; the service's typed
// pool satisfies it.
type VersionSource interface {
	Get() *Version
}

type expiryItem struct {
	at    int64
	entry *Entry
}

// Keyspace is the ordered key index.
type Keyspace struct {
	tree       *rbtree.Tree
	byKey      *htable.Table
	expiry     *binheap.Heap[expiryItem]
	historyCap int
	live       int
	lastSeq    uint64
}

func New(historyCap int) *Keyspace {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	return &Keyspace{
		tree:       rbtree.New(compareEntries),
		byKey:      htable.New(64, hashEntry, cmpEntryKeys),
		expiry:     binheap.New(func(a, b expiryItem) bool { return a.at < b.at }),
		historyCap: historyCap,
	}
}

// Put upserts key to value. The previous value, if any, is pushed onto
// the entry's version history using a record from versions; history past
// the cap is trimmed and returned so the caller can retire the records.
func (ks *Keyspace) Put(key, value []byte, seq uint64, expireAt int64, versions VersionSource) (e *Entry, created bool, trimmed []*Version) {
	ks.lastSeq = seq

	e = ks.lookup(key)
	if e == nil {
		e = &Entry{
			Key:      append([]byte(nil), key...),
			Value:    value,
			Seq:      seq,
			ExpireAt: expireAt,
			Status:   Live,
		}
		e.versions.Init()
		ks.tree.Insert(&e.node)
		ks.byKey.Insert(&e.he)
		ks.live++
		created = true
	} else {
		trimmed = ks.supersede(e, versions)
		if e.Status != Live {
			ks.live++
		}
		e.Value = value
		e.Seq = seq
		e.ExpireAt = expireAt
		e.Status = Live
	}

	if expireAt > 0 {
		ks.expiry.Push(expiryItem{at: expireAt, entry: e})
	}
	return e, created, trimmed
}

// Delete tombstones key. The entry stays tree-resident; only its status
// and value change. Returns the entry and any trimmed history, or nil if
// the key is not live.
func (ks *Keyspace) Delete(key []byte, seq uint64, versions VersionSource) (*Entry, []*Version) {
	e := ks.lookup(key)
	if e == nil || e.Status != Live {
		return nil, nil
	}

	ks.lastSeq = seq
	trimmed := ks.supersede(e, versions)
	e.Value = nil
	e.Seq = seq
	e.ExpireAt = 0
	e.Status = Tombstone
	ks.live--
	return e, trimmed
}

// Get returns the live entry for key, or nil. Entries past their expiry
// time are treated as absent even before the expiry sweep claims them.
func (ks *Keyspace) Get(key []byte, now int64) *Entry {
	e := ks.lookup(key)
	if e == nil || e.Status != Live {
		return nil
	}
	if e.ExpireAt > 0 && e.ExpireAt <= now {
		return nil
	}
	return e
}

// Range walks live entries with start <= key < end in ascending key
// order. A nil start or end leaves that side unbounded. fn returning
// false stops the walk.
func (ks *Keyspace) Range(start, end []byte, fn func(*Entry) bool) {
	ks.tree.Traverse(func(n *rbtree.Node, _ any) int {
		e := entryOfNode(n)
		if end != nil && bytes.Compare(e.Key, end) >= 0 {
			return 1
		}
		if start != nil && bytes.Compare(e.Key, start) < 0 {
			return 0
		}
		if e.Status != Live {
			return 0
		}
		if !fn(e) {
			return 1
		}
		return 0
	}, nil)
}

// Match walks live entries whose key contains pattern as a substring, in
// ascending key order. fn returning false stops the walk.
func (ks *Keyspace) Match(pattern []byte, fn func(*Entry) bool) {
	ks.tree.Traverse(func(n *rbtree.Node, _ any) int {
		e := entryOfNode(n)
		if e.Status != Live || !search.Contains(e.Key, pattern) {
			return 0
		}
		if !fn(e) {
			return 1
		}
		return 0
	}, nil)
}

// Walk visits every live entry in ascending key order. Used by the
// snapshot writer.
func (ks *Keyspace) Walk(fn func(*Entry) bool) {
	ks.Range(nil, nil, fn)
}

// NextDue returns the next live entry whose TTL elapsed at or before
// now, without expiring it. Heap items made stale by a later Put of the
// same key are dropped on the way. The entry stays queued until
// MarkExpired claims it, so a caller that does not commit sees the same
// entry again.
func (ks *Keyspace) NextDue(now int64) *Entry {
	for {
		item, ok := ks.expiry.Peek()
		if !ok || item.at > now {
			return nil
		}
		e := item.entry
		if e.Status != Live || e.ExpireAt != item.at {
			ks.expiry.Pop() // re-put or already gone; stale item
			continue
		}
		return e
	}
}

// MarkExpired expires the entry NextDue last returned and dequeues its
// heap item.
func (ks *Keyspace) MarkExpired(e *Entry) {
	ks.expiry.Pop()
	e.Status = Expired
	ks.live--
}

// ExpireDue marks entries whose TTL elapsed at or before now and returns
// them.
func (ks *Keyspace) ExpireDue(now int64) []*Entry {
	var out []*Entry
	for {
		e := ks.NextDue(now)
		if e == nil {
			return out
		}
		ks.MarkExpired(e)
		out = append(out, e)
	}
}

// Versions walks an entry's history, newest first. fn returning false
// stops the walk.
func (ks *Keyspace) Versions(e *Entry, fn func(*Version) bool) {
	for le := e.versions.Begin(); le != e.versions.End(); le = le.Next() {
		if !fn(versionOfElem(le)) {
			return
		}
	}
}

// Len returns the number of live keys.
func (ks *Keyspace) Len() int { return ks.live }

// LastSeq returns the sequence of the latest applied mutation.
func (ks *Keyspace) LastSeq() uint64 { return ks.lastSeq }

// BlackHeight exposes the tree's black-height for metrics.
func (ks *Keyspace) BlackHeight() int { return ks.tree.BlackHeight() }

// TreeHeight exposes the tree's height for metrics.
func (ks *Keyspace) TreeHeight() int { return ks.tree.Height() }

func (ks *Keyspace) lookup(key []byte) *Entry {
	probe := Entry{Key: key}
	he := ks.byKey.Get(&probe.he)
	if he == nil {
		return nil
	}
	return entryOfElem(he)
}

// supersede moves the entry's current value into its history and trims
// the history to the cap.
func (ks *Keyspace) supersede(e *Entry, versions VersionSource) []*Version {
	if e.Value != nil {
		v := versions.Get()
		v.Value = e.Value
		v.Seq = e.Seq
		e.versions.PushFront(&v.elem)
	}

	var trimmed []*Version
	for e.versions.Len() > ks.historyCap {
		le := e.versions.PopBack()
		trimmed = append(trimmed, versionOfElem(le))
	}
	return trimmed
}
