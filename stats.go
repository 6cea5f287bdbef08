package ringbuffer

// counters are plain integers; RingBuffer is single-goroutine.
type counters struct {
	inserted    uint64
	removed     uint64
	overwritten uint64
	emptyReads  uint64
	rejected    uint64
}

// Stats menyimpan statistik operasi buffer.
// EvictionRatio dalam persentase (0-100) dari Inserted yang tertimpa.
type Stats struct {
	Inserted      uint64 // elemen ditulis, termasuk yang kemudian tertimpa
	Removed       uint64 // elemen dikembalikan oleh Shift/Dequeue
	Overwritten   uint64 // elemen dibuang karena AllowOverwrite
	EmptyReads    uint64 // pengambilan dari buffer kosong dengan AllowOverremove
	Rejected      uint64 // operasi gagal karena kapasitas/isi tidak cukup
	EvictionRatio float64
}

// GetStats mengambil snapshot statistik.
func (r *RingBuffer[T]) GetStats() Stats {
	s := r.stats
	ratio := 0.0
	if s.inserted > 0 {
		ratio = float64(s.overwritten) / float64(s.inserted) * 100.0
	}
	return Stats{
		Inserted:      s.inserted,
		Removed:       s.removed,
		Overwritten:   s.overwritten,
		EmptyReads:    s.emptyReads,
		Rejected:      s.rejected,
		EvictionRatio: ratio,
	}
}

// ResetStats mengatur ulang semua penghitung.
func (r *RingBuffer[T]) ResetStats() {
	r.stats = counters{}
}

// Capacity mengembalikan jumlah slot total.
func (r *RingBuffer[T]) Capacity() int { return r.capacity }

// Size mengembalikan jumlah elemen yang tersimpan.
func (r *RingBuffer[T]) Size() int { return r.count }

// IsEmpty reports whether no elements are stored.
func (r *RingBuffer[T]) IsEmpty() bool { return r.count == 0 }

// IsFull reports whether every slot is occupied.
func (r *RingBuffer[T]) IsFull() bool { return r.count >= r.capacity }

// FreeSpace mengembalikan jumlah slot kosong.
func (r *RingBuffer[T]) FreeSpace() int { return r.capacity - r.count }
