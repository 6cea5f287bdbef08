package ringbuffer

import "fmt"

// checkInsertionLimitations rejects an insertion of n elements that would not
// fit, unless overwriting is allowed.
func (r *RingBuffer[T]) checkInsertionLimitations(n int) error {
	if r.options.AllowOverwrite {
		return nil
	}
	if free := r.FreeSpace(); n > free {
		r.stats.rejected++
		return fmt.Errorf("%w: inserting %d elements, %d slots free", ErrCapacityExceeded, n, free)
	}
	return nil
}

// survivors trims elems to the last capacity entries; anything earlier would
// be overwritten within the same call anyway.
func (r *RingBuffer[T]) survivors(elems []T) []T {
	if r.options.AllowOverwrite && len(elems) > r.capacity {
		r.stats.overwritten += uint64(len(elems) - r.capacity)
		r.stats.inserted += uint64(len(elems) - r.capacity)
		return elems[len(elems)-r.capacity:]
	}
	return elems
}

// Enqueue inserts elems at the logical front, one at a time, so the last
// argument ends up as the new front. On a full buffer with AllowOverwrite each
// insertion evicts the logical back. Returns the resulting Size.
func (r *RingBuffer[T]) Enqueue(elems ...T) (int, error) {
	if err := r.checkInsertionLimitations(len(elems)); err != nil {
		return r.count, err
	}
	for _, v := range r.survivors(elems) {
		wasFull := r.IsFull()
		r.first = r.normalize(r.first - 1)
		r.storage[r.first] = v
		r.stats.inserted++
		if wasFull {
			r.stats.overwritten++
			continue
		}
		r.count++
	}
	return r.count, nil
}

// Push inserts elems at the logical back in argument order. On a full buffer
// with AllowOverwrite each insertion evicts the logical front. Returns the
// resulting Size.
func (r *RingBuffer[T]) Push(elems ...T) (int, error) {
	if err := r.checkInsertionLimitations(len(elems)); err != nil {
		return r.count, err
	}
	for _, v := range r.survivors(elems) {
		wasFull := r.IsFull()
		r.storage[r.endIndex()] = v
		r.stats.inserted++
		if wasFull {
			// endIndex == first here: the old front was just overwritten
			r.first = r.normalize(r.first + 1)
			r.stats.overwritten++
			continue
		}
		r.count++
	}
	return r.count, nil
}
