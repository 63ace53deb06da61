package memory

import "sync/atomic"

// RetireRing buffers trimmed version records between the write path and
// reclamation. Single producer, single consumer: the service enqueues
// under its write lock, the checkpoint job dequeues via
// AdvanceEpochAndReclaim. No other access pattern is safe.
type RetireRing struct {
	head  uint64
	_pad1 [56]byte // head and tail live on separate cache lines
	tail  uint64
	_pad2 [56]byte
	buf   []any
	mask  uint64
}

// NewRetireRing panics unless size is a power of two; indexing relies
// on the mask.
func NewRetireRing(size uint64) *RetireRing {
	if size&(size-1) != 0 {
		panic("RetireRing size must be power of two")
	}
	return &RetireRing{
		buf:  make([]any, size),
		mask: size - 1,
	}
}

// Enqueue reports false when the ring is full. The caller drops the
// record and lets GC take it instead of blocking the write path.
func (r *RetireRing) Enqueue(v any) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	r.head = h + 1
	return true
}

// Dequeue returns nil when the ring is empty. The slot is cleared so
// the ring never pins a reclaimed record.
func (r *RetireRing) Dequeue() any {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return nil
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = nil
	r.tail = t + 1
	return v
}
