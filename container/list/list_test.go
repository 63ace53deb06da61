package list

import (
	"testing"
	"unsafe"
)

type item struct {
	Elem
	v int
}

func val(e *Elem) int {
	return (*item)(unsafe.Pointer(e)).v
}

func TestPushPopOrder(t *testing.T) {
	l := New()
	items := make([]item, 4)
	for i := range items {
		items[i].v = i
		l.PushBack(&items[i].Elem)
	}

	if l.Len() != 4 {
		t.Fatalf("expected len 4, got %d", l.Len())
	}

	for want := 0; want < 4; want++ {
		e := l.PopFront()
		if e == nil || val(e) != want {
			t.Fatalf("expected %d at the front", want)
		}
	}
	if !l.Empty() {
		t.Fatal("expected empty list")
	}
	if l.PopFront() != nil || l.PopBack() != nil {
		t.Fatal("expected nil pops on empty list")
	}
}

func TestPushFrontAndBack(t *testing.T) {
	l := New()
	a := &item{v: 1}
	b := &item{v: 2}
	c := &item{v: 3}

	l.PushBack(&b.Elem)
	l.PushFront(&a.Elem)
	l.PushBack(&c.Elem)

	got := make([]int, 0, 3)
	for e := l.Begin(); e != l.End(); e = e.Next() {
		got = append(got, val(e))
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestRemoveMiddle(t *testing.T) {
	l := New()
	items := make([]item, 3)
	for i := range items {
		items[i].v = i
		l.PushBack(&items[i].Elem)
	}

	next := l.Remove(&items[1].Elem)
	if val(next) != 2 {
		t.Fatalf("expected Remove to return the successor, got %d", val(next))
	}
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
	if val(l.Front()) != 0 || val(l.Back()) != 2 {
		t.Fatal("unexpected endpoints after removal")
	}
}
