// Package alloc provides aligned element buffers with a single, deterministic
// release point.
//
// # Aligned Allocation
//
// Every buffer starts at an address divisible by the requested alignment (a
// power of two, or 0 for the natural alignment of the element type). The
// byte size is rounded up to a multiple of the alignment, and the padding is
// exposed as slice capacity, so a SIMD load that reads one full alignment
// block past the logical end never leaves the allocation:
//
//	var buf alloc.Buffer[float32]
//	buf.Allocate(nil, 3, 64) // 3 elements, 64 bytes reserved
//	len(buf.Slice())         // 3
//	cap(buf.Slice())         // 16
//	defer buf.Release()
//
// # Backends
//
//   - Heap: memory from the Go heap, over-allocated and offset to the
//     boundary. Release returns accounting immediately; the garbage collector
//     reclaims the memory.
//   - Mapped: off-heap anonymous mappings (mmap/VirtualAlloc). Release unmaps
//     the memory at once. Element types that contain Go pointers always use
//     the heap because the collector cannot see mapped memory.
//
// Mapped blocks accept access hints through Block.Advise, for example
// AdviceSequential before a streaming pass.
//
// # Failure Policy
//
// Allocation failure is fatal. An invalid alignment, a size overflow, an
// exhausted memory budget or a failed mapping is logged, counted and raised
// as a panic carrying an *Error, so callers never observe a partially built
// buffer. errors.Is matches the sentinel errors of this package.
//
// # Ownership
//
// A Buffer has exactly one owner. MoveFrom transfers ownership and leaves the
// source empty; Release frees at most once. Buffers embed a noCopy guard so
// go vet reports accidental copies. Release is the only point where mapped
// memory is unmapped. A runtime cleanup returns the budget of heap blocks
// dropped without Release; a dropped mapped block is logged and counted in
// Stats.Leaked but stays mapped, since slices into it may still be live.
package alloc
