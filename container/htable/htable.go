// Package htable implements an intrusive hash table with separate
// chaining. Each bucket is an intrusive list; callers embed Elem inside
// their own record type, so membership costs no allocation per element.
// Hashing and collision comparison are user-provided and will usually act
// on the container rather than the element itself.
package htable

import (
	"unsafe"

	"kestrel/container/list"
)

// Elem is the link record embedded in a caller's type. The table never
// dereferences past it; callers recover their container from an *Elem
// with an offset-based conversion, wherever the field sits in the
// struct.
type Elem struct {
	le list.Elem
}

// Hasher maps an element to a bucket index. The returned value must be
// smaller than buckets. A good hash is deterministic but apparently
// random with respect to the hashed data.
type Hasher func(e *Elem, buckets int) int

// Compare reports the relative order of two elements; only the zero /
// non-zero distinction matters to the table, which uses it to resolve
// collisions within a bucket.
type Compare func(a, b *Elem) int

// Table is a hash table of intrusive elements.
type Table struct {
	buckets []list.List
	hash    Hasher
	cmp     Compare
	size    int
}

// Grow when the average chain gets longer than this.
const maxLoadFactor = 2

// New returns a table with the given initial bucket count.
func New(buckets int, hash Hasher, cmp Compare) *Table {
	if buckets <= 0 {
		panic("htable: bucket count must be positive")
	}
	if hash == nil || cmp == nil {
		panic("htable: nil hash or comparator")
	}
	t := &Table{hash: hash, cmp: cmp}
	t.reset(buckets)
	return t
}

func (t *Table) reset(n int) {
	t.buckets = make([]list.List, n)
	for i := range t.buckets {
		t.buckets[i].Init()
	}
}

// Insert links e into the table. e must not currently be a member of any
// table.
func (t *Table) Insert(e *Elem) {
	if t.size >= maxLoadFactor*len(t.buckets) {
		t.rehash(2 * len(t.buckets))
	}
	b := t.hash(e, len(t.buckets))
	t.buckets[b].PushFront(&e.le)
	t.size++
}

// Get returns the first member comparing equal to key, or nil. key need
// not be a member of the table.
func (t *Table) Get(key *Elem) *Elem {
	b := &t.buckets[t.hash(key, len(t.buckets))]
	for le := b.Begin(); le != b.End(); le = le.Next() {
		he := elemOf(le)
		if t.cmp(key, he) == 0 {
			return he
		}
	}
	return nil
}

// Remove unlinks e from the table. e must be a member.
func (t *Table) Remove(e *Elem) {
	b := &t.buckets[t.hash(e, len(t.buckets))]
	b.Remove(&e.le)
	t.size--
}

// Len returns the number of elements in the table.
func (t *Table) Len() int { return t.size }

// Empty reports whether the table holds no elements.
func (t *Table) Empty() bool { return t.size == 0 }

// Space returns the current bucket count.
func (t *Table) Space() int { return len(t.buckets) }

// rehash moves every element into a fresh bucket array of size n.
func (t *Table) rehash(n int) {
	old := t.buckets
	t.reset(n)
	for i := range old {
		for {
			le := old[i].PopFront()
			if le == nil {
				break
			}
			e := elemOf(le)
			b := t.hash(e, n)
			t.buckets[b].PushFront(&e.le)
		}
	}
}

// elemOf recovers the Elem containing le. le is the first field of Elem.
func elemOf(le *list.Elem) *Elem {
	return (*Elem)(unsafe.Pointer(le))
}
