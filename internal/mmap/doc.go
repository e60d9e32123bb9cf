// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Overview
//
// An anonymous mapping is page-aligned, zero-filled memory obtained directly
// from the operating system. It lives outside the Go heap, so the garbage
// collector neither scans nor moves it, and it is returned to the OS the
// moment the mapping is closed. The alloc package uses it for the Mapped
// backend, where container buffers need a deterministic release point.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // len(buf) == 1<<20, page aligned
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close returns.
//
// # Pointers
//
// Mapped memory is invisible to the garbage collector. Never store Go
// pointers in it.
package mmap
