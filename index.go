package ringbuffer

// normalize maps any integer, negative included, onto a physical slot in
// [0, capacity).
func (r *RingBuffer[T]) normalize(i int) int {
	return ((i % r.capacity) + r.capacity) % r.capacity
}

// endIndex is the slot immediately after the logical back.
func (r *RingBuffer[T]) endIndex() int {
	return r.normalize(r.first + r.count)
}

// lastIndex is the slot holding the logical back. Only meaningful when count > 0.
func (r *RingBuffer[T]) lastIndex() int {
	return r.normalize(r.endIndex() - 1)
}

// pointersReversed reports whether the occupied region wraps past the end of
// storage back to slot 0.
func (r *RingBuffer[T]) pointersReversed() bool {
	return r.count > 0 && r.first > r.lastIndex()
}
