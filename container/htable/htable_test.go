package htable

import (
	"testing"
	"unsafe"
)

type record struct {
	Elem
	key int
}

func rec(e *Elem) *record {
	return (*record)(unsafe.Pointer(e))
}

func hashRecord(e *Elem, buckets int) int {
	k := rec(e).key
	if k < 0 {
		k = -k
	}
	return k % buckets
}

func cmpRecord(a, b *Elem) int {
	return rec(a).key - rec(b).key
}

func newTable() *Table {
	return New(4, hashRecord, cmpRecord)
}

func TestInsertGetRemove(t *testing.T) {
	ht := newTable()
	a := &record{key: 11}
	b := &record{key: 15} // collides with 11 in 4 buckets

	ht.Insert(&a.Elem)
	ht.Insert(&b.Elem)

	if got := ht.Get(&(&record{key: 11}).Elem); got != &a.Elem {
		t.Fatal("expected to find key 11")
	}
	if got := ht.Get(&(&record{key: 15}).Elem); got != &b.Elem {
		t.Fatal("expected to find key 15 despite the collision")
	}
	if ht.Get(&(&record{key: 12}).Elem) != nil {
		t.Fatal("expected nil for an absent key")
	}

	ht.Remove(&a.Elem)
	if ht.Get(&(&record{key: 11}).Elem) != nil {
		t.Fatal("expected key 11 gone after Remove")
	}
	if ht.Len() != 1 {
		t.Fatalf("expected len 1, got %d", ht.Len())
	}
}

func TestRehashKeepsMembers(t *testing.T) {
	ht := newTable()
	space := ht.Space()

	records := make([]record, 64)
	for i := range records {
		records[i].key = i
		ht.Insert(&records[i].Elem)
	}

	if ht.Space() == space {
		t.Fatal("expected the table to grow under load")
	}
	for i := range records {
		if ht.Get(&(&record{key: i}).Elem) != &records[i].Elem {
			t.Fatalf("key %d lost during rehash", i)
		}
	}
	if ht.Len() != len(records) {
		t.Fatalf("expected len %d, got %d", len(records), ht.Len())
	}
}
