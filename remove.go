package ringbuffer

import "fmt"

// checkRemovalLimitations rejects a removal of n elements when fewer are
// stored, unless overremoving is allowed.
func (r *RingBuffer[T]) checkRemovalLimitations(n int) error {
	if r.options.AllowOverremove {
		return nil
	}
	if n > r.count {
		r.stats.rejected++
		return fmt.Errorf("%w: removing %d elements, %d stored", ErrInsufficientElements, n, r.count)
	}
	return nil
}

// emptyRead reports whether a removal should yield no value instead of
// failing.
func (r *RingBuffer[T]) emptyRead() bool {
	if r.count == 0 && r.options.AllowOverremove {
		r.stats.emptyReads++
		return true
	}
	return false
}

// Shift removes and returns the logical front. ok is false only when the
// buffer is empty and AllowOverremove is set.
func (r *RingBuffer[T]) Shift() (v T, ok bool, err error) {
	if r.emptyRead() {
		return v, false, nil
	}
	if err := r.checkRemovalLimitations(1); err != nil {
		return v, false, err
	}
	v = r.take(r.first)
	r.first = r.normalize(r.first + 1)
	r.count--
	return v, true, nil
}

// Dequeue removes and returns the logical back. ok is false only when the
// buffer is empty and AllowOverremove is set.
func (r *RingBuffer[T]) Dequeue() (v T, ok bool, err error) {
	if r.emptyRead() {
		return v, false, nil
	}
	if err := r.checkRemovalLimitations(1); err != nil {
		return v, false, err
	}
	v = r.take(r.lastIndex())
	r.count--
	return v, true, nil
}

// Pop is an alias for Dequeue.
func (r *RingBuffer[T]) Pop() (T, bool, error) {
	return r.Dequeue()
}

// take reads slot i and clears it so the buffer no longer references the value.
func (r *RingBuffer[T]) take(i int) T {
	var zero T
	v := r.storage[i]
	r.storage[i] = zero
	r.stats.removed++
	return v
}
