package keyspace

import (
	"bytes"
	"unsafe"

	"kestrel/container/htable"
	"kestrel/container/list"
	"kestrel/container/rbtree"
)

type Status int

const (
	Live Status = iota
	Tombstone
	Expired
)

// Entry is one key in the index. It is intrusive on both structures that
// hold it: the ordering tree and the lookup table link the node and elem
// embedded here, so membership costs no allocation beyond the entry
// itself. An entry, once linked, stays tree-resident for the life of the
// keyspace; deletes and expiry flip Status instead of unlinking.
type Entry struct {
	node rbtree.Node // must stay the first field
	he   htable.Elem

	Key      []byte
	Value    []byte
	Seq      uint64
	ExpireAt int64 // unix nanos; 0 means no expiry
	Status   Status

	versions list.List
}

// Version is a superseded value kept in an entry's history list. The
// service recycles these through its pool once history is trimmed.
type Version struct {
	elem list.Elem // must stay the first field

	Value []byte
	Seq   uint64
}

func entryOfNode(n *rbtree.Node) *Entry {
	return (*Entry)(unsafe.Pointer(n))
}

func entryOfElem(e *htable.Elem) *Entry {
	return (*Entry)(unsafe.Add(unsafe.Pointer(e), -int(unsafe.Offsetof(Entry{}.he))))
}

func versionOfElem(e *list.Elem) *Version {
	return (*Version)(unsafe.Pointer(e))
}

func compareEntries(a, b *rbtree.Node) int {
	return bytes.Compare(entryOfNode(a).Key, entryOfNode(b).Key)
}

func hashEntry(e *htable.Elem, buckets int) int {
	// FNV-1a over the key bytes.
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, c := range entryOfElem(e).Key {
		h ^= uint64(c)
		h *= prime
	}
	return int(h % uint64(buckets))
}

func cmpEntryKeys(a, b *htable.Elem) int {
	return bytes.Compare(entryOfElem(a).Key, entryOfElem(b).Key)
}
