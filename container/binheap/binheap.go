// Package binheap implements a binary min-heap over a growable slice.
// Ordering comes from an injected less function; negating it yields a max
// heap. The heap is a complete binary tree stored breadth-first, so the
// children of index i sit at 2i+1 and 2i+2.
package binheap

// Heap is a binary min-heap of T.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("binheap: nil comparator")
	}
	return &Heap[T]{less: less}
}

// Len returns the number of elements on the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Peek returns the minimum element without removing it. ok is false when
// the heap is empty.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	return h.data[0], true
}

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the minimum element. ok is false when the heap
// is empty.
func (h *Heap[T]) Pop() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	v = h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	h.siftDown(0)
	return v, true
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := 2*i + 2
		min := i

		if left < n && h.less(h.data[left], h.data[min]) {
			min = left
		}
		if right < n && h.less(h.data[right], h.data[min]) {
			min = right
		}
		if min == i {
			return
		}
		h.data[i], h.data[min] = h.data[min], h.data[i]
		i = min
	}
}
