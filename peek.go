package ringbuffer

// Front returns the logical front without removing it.
func (r *RingBuffer[T]) Front() (v T, ok bool) {
	if r.count == 0 {
		return v, false
	}
	return r.storage[r.first], true
}

// Back returns the logical back without removing it.
func (r *RingBuffer[T]) Back() (v T, ok bool) {
	if r.count == 0 {
		return v, false
	}
	return r.storage[r.lastIndex()], true
}

// ToSlice copies the stored elements into a new slice, front to back.
func (r *RingBuffer[T]) ToSlice() []T {
	out := make([]T, 0, r.count)
	if r.count == 0 {
		return out
	}
	if !r.pointersReversed() {
		return append(out, r.storage[r.first:r.first+r.count]...)
	}
	out = append(out, r.storage[r.first:]...)
	return append(out, r.storage[:r.endIndex()]...)
}

// Clear drops every element and rewinds the front to slot 0. Stats are kept.
func (r *RingBuffer[T]) Clear() {
	clear(r.storage)
	r.first = 0
	r.count = 0
}
