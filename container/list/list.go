// Package list implements an intrusive doubly-linked list. Callers embed
// Elem inside their own record type; the list performs no allocation of
// its own. A sentinel element sits both before the first element and
// after the last, so insertion and removal have no special cases.
package list

// Elem is the link record embedded in a caller's type.
type Elem struct {
	prev *Elem
	next *Elem
}

// List is a doubly-linked list around an embedded sentinel.
type List struct {
	sentinel Elem
	size     int
}

// New returns an initialized empty list.
func New() *List {
	l := &List{}
	l.Init()
	return l
}

// Init resets the list to empty. Must be called before first use of a
// zero-value List.
func (l *List) Init() {
	l.sentinel.prev = &l.sentinel
	l.sentinel.next = &l.sentinel
	l.size = 0
}

// Begin returns the first element, or End() when the list is empty.
func (l *List) Begin() *Elem { return l.sentinel.next }

// End returns the past-the-end sentinel. It is never a valid element.
func (l *List) End() *Elem { return &l.sentinel }

// Front returns the first element, or nil when the list is empty.
func (l *List) Front() *Elem {
	if l.Empty() {
		return nil
	}
	return l.sentinel.next
}

// Back returns the last element, or nil when the list is empty.
func (l *List) Back() *Elem {
	if l.Empty() {
		return nil
	}
	return l.sentinel.prev
}

// Next returns the element after e.
func (e *Elem) Next() *Elem { return e.next }

// Prev returns the element before e.
func (e *Elem) Prev() *Elem { return e.prev }

// InsertBefore links e into the list immediately before at.
func (l *List) InsertBefore(at, e *Elem) {
	e.prev = at.prev
	e.next = at
	at.prev.next = e
	at.prev = e
	l.size++
}

// PushFront links e at the head of the list.
func (l *List) PushFront(e *Elem) {
	l.InsertBefore(l.sentinel.next, e)
}

// PushBack links e at the tail of the list.
func (l *List) PushBack(e *Elem) {
	l.InsertBefore(&l.sentinel, e)
}

// Remove unlinks e and returns the element that followed it. e must be a
// member of l.
func (l *List) Remove(e *Elem) *Elem {
	next := e.next
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.size--
	return next
}

// PopFront unlinks and returns the first element, or nil when empty.
func (l *List) PopFront() *Elem {
	if l.Empty() {
		return nil
	}
	e := l.sentinel.next
	l.Remove(e)
	return e
}

// PopBack unlinks and returns the last element, or nil when empty.
func (l *List) PopBack() *Elem {
	if l.Empty() {
		return nil
	}
	e := l.sentinel.prev
	l.Remove(e)
	return e
}

// Len returns the number of elements in the list.
func (l *List) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List) Empty() bool { return l.sentinel.next == &l.sentinel }
