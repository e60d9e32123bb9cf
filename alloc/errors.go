package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlignment is raised when an alignment is neither 0 nor a power of two.
	ErrInvalidAlignment = errors.New("alloc: alignment is not a power of two")

	// ErrInvalidCount is raised for a negative element count.
	ErrInvalidCount = errors.New("alloc: negative element count")

	// ErrSizeOverflow is raised when the byte size of a request does not fit in an int.
	ErrSizeOverflow = errors.New("alloc: size overflow")

	// ErrMemoryLimitExceeded is raised when the allocator's memory budget is exhausted.
	ErrMemoryLimitExceeded = errors.New("alloc: memory limit exceeded")

	// ErrMapFailed is raised when the operating system refuses an anonymous mapping.
	ErrMapFailed = errors.New("alloc: anonymous mapping failed")
)

// Error describes a failed allocation.
type Error struct {
	Op    string // "allocate" or "bytes"
	Count int    // requested element count (or byte count for raw requests)
	Align int    // requested alignment
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %d (align %d): %v", e.Op, e.Count, e.Align, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
