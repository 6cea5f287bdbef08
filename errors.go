package ringbuffer

import "errors"

var (
	// ErrInvalidCapacity is returned by the constructors for capacity <= 0.
	ErrInvalidCapacity = errors.New("ringbuffer: capacity must be positive")

	// ErrCapacityExceeded is returned when an insertion needs more slots than
	// are free and overwriting is disabled.
	ErrCapacityExceeded = errors.New("ringbuffer: capacity exceeded")

	// ErrInsufficientElements is returned when a removal asks for more
	// elements than are stored and overremoving is disabled.
	ErrInsufficientElements = errors.New("ringbuffer: insufficient elements")
)
