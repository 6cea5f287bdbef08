// Package ringbuffer provides a generic, fixed-capacity circular buffer that
// supports insertion and removal at both ends, with optional overwrite (on
// overflow) and overremove (on underflow) policies.
//
// The library is organised into several files for clarity:
//
//	options.go  – configuration struct & defaults
//	ring.go     – constructors & core fields
//	index.go    – modular index arithmetic
//	insert.go   – Enqueue/Push & capacity checks
//	remove.go   – Shift/Dequeue/Pop & occupancy checks
//	peek.go     – Front/Back/ToSlice/Clear
//	stats.go    – queries & lightweight counters
//	errors.go   – sentinel errors
//
// A RingBuffer is not safe for concurrent use; guard it with a mutex when it
// is shared between goroutines.
package ringbuffer
