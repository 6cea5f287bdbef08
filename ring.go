package ringbuffer

import "fmt"

// RingBuffer menyediakan buffer melingkar berkapasitas tetap di atas satu
// slice kontigu.  Posisi fisik setiap elemen dihitung dengan aritmetika
// modulo terhadap capacity, sehingga tidak ada alokasi node per elemen.
//
// Tidak aman untuk goroutine; pemanggil wajib menyediakan sinkronisasi sendiri.
type RingBuffer[T any] struct {
	storage  []T     // Slot fisik, panjang selalu == capacity
	capacity int     // Jumlah slot, tetap sejak konstruksi
	first    int     // Slot fisik elemen depan logis
	count    int     // Jumlah slot terisi
	options  Options // Kebijakan overwrite/overremove
	stats    counters
}

// New membuat buffer dengan opsi default (lihat DefaultOptions).
func New[T any](capacity int) (*RingBuffer[T], error) {
	return NewWithOptions[T](capacity, DefaultOptions())
}

// NewWithOptions membuat buffer dengan opsi kustom.
func NewWithOptions[T any](capacity int, opts Options) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &RingBuffer[T]{
		storage:  make([]T, capacity),
		capacity: capacity,
		options:  opts,
	}, nil
}

// Options returns the policy the buffer was constructed with.
func (r *RingBuffer[T]) Options() Options { return r.options }
