package ringbuffer

// Options menyediakan opsi kebijakan untuk RingBuffer.
//
//   - AllowOverwrite:  penyisipan ke buffer penuh menimpa elemen tertua di
//     ujung seberang alih-alih gagal dengan ErrCapacityExceeded
//   - AllowOverremove: pengambilan dari buffer kosong menghasilkan ok=false
//     alih-alih gagal dengan ErrInsufficientElements
//
// Kedua opsi ditetapkan saat konstruksi dan tidak berubah selama umur buffer.
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	AllowOverwrite  bool // Timpa elemen tertua saat penuh (default false)
	AllowOverremove bool // Kosong bukan error saat mengambil (default false)
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan New.
func DefaultOptions() Options {
	return Options{
		AllowOverwrite:  false,
		AllowOverremove: false,
	}
}
