package alloc

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hupe1980/c2d/internal/conv"
	"github.com/hupe1980/c2d/internal/cpu"
	"github.com/hupe1980/c2d/internal/mmap"
	"github.com/hupe1980/c2d/internal/resource"
)

// Allocator hands out aligned blocks and accounts for them.
// It is safe for concurrent use.
type Allocator struct {
	backend Backend
	budget  *resource.Controller
	logger  atomic.Pointer[slog.Logger]
	metrics MetricsCollector

	allocs   atomic.Uint64
	frees    atomic.Uint64
	failures atomic.Uint64
	leaks    atomic.Uint64
	live     atomic.Int64
}

// New creates an Allocator.
func New(optFns ...Option) *Allocator {
	o := applyOptions(optFns)
	a := &Allocator{
		backend: o.backend,
		budget: resource.NewController(resource.Config{
			MemoryLimitBytes: o.memoryLimit,
			MemoryFraction:   o.memoryFraction,
		}),
		metrics: o.metricsCollector,
	}
	a.logger.Store(o.logger)
	return a
}

var defaultAllocator atomic.Pointer[Allocator]

func init() {
	defaultAllocator.Store(New())
}

// Default returns the process-wide allocator used by the containers.
func Default() *Allocator {
	return defaultAllocator.Load()
}

// SetDefault replaces the process-wide allocator and returns the previous one.
// Blocks already handed out keep releasing through the allocator that created
// them. Pass nil to restore a plain heap allocator.
func SetDefault(a *Allocator) *Allocator {
	if a == nil {
		a = New()
	}
	return defaultAllocator.Swap(a)
}

// SetLogger replaces the logger of the default allocator.
// Pass nil to disable logging.
//
// Example:
//
//	alloc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	Default().SetLogger(l)
}

// SetLogger replaces the allocator's logger. It is safe for concurrent use.
func (a *Allocator) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	a.logger.Store(l)
}

func (a *Allocator) log() *slog.Logger {
	return a.logger.Load()
}

// PreferredAlignment returns the alignment that suits the widest SIMD
// register set of the host CPU (16, 32 or 64 bytes).
func PreferredAlignment() int {
	return cpu.PreferredAlignment()
}

// Backend returns the configured backend.
func (a *Allocator) Backend() Backend {
	return a.backend
}

// Stats is a snapshot of allocator accounting.
type Stats struct {
	Backend    Backend
	Allocs     uint64 // blocks handed out
	Frees      uint64 // blocks released (explicitly or reclaimed)
	Failures   uint64 // fatal allocation failures
	Leaked     uint64 // mapped blocks collected without Free; their memory stays mapped
	LiveBlocks int64
	BytesInUse int64 // rounded bytes of live blocks
	PeakBytes  int64
	Limit      int64 // 0 if unlimited
}

// Stats returns a snapshot of the allocator's accounting.
func (a *Allocator) Stats() Stats {
	return Stats{
		Backend:    a.backend,
		Allocs:     a.allocs.Load(),
		Frees:      a.frees.Load(),
		Failures:   a.failures.Load(),
		Leaked:     a.leaks.Load(),
		LiveBlocks: a.live.Load(),
		BytesInUse: a.budget.MemoryUsage(),
		PeakBytes:  a.budget.MemoryPeak(),
		Limit:      a.budget.MemoryLimit(),
	}
}

// Block is one allocation. It is released at most once.
type Block struct {
	owner    *Allocator
	backend  Backend
	bytes    int
	mapping  *mmap.Mapping
	cleanup  runtime.Cleanup
	released bool
}

// Size returns the rounded byte size of the block.
func (b *Block) Size() int {
	if b == nil {
		return 0
	}
	return b.bytes
}

// Backend returns where the block lives. Pointer-carrying element types are
// always heap backed, whatever the allocator's configuration.
func (b *Block) Backend() Backend {
	return b.backend
}

// Free releases the block. Freeing nil or an already freed block is a no-op.
func (b *Block) Free() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.cleanup.Stop()
	b.owner.reclaim(b.backend, b.bytes, b.mapping, false)
}

type reclaimArg struct {
	owner   *Allocator
	backend Backend
	bytes   int
}

// newBlock registers a cleanup for blocks dropped without Free. Slices into
// a block do not keep the Block reachable, so the cleanup may run while the
// memory is still in use: heap blocks only return their budget, mapped
// blocks are reported as leaked and never unmapped.
func (a *Allocator) newBlock(backend Backend, bytes int, mapping *mmap.Mapping) *Block {
	b := &Block{owner: a, backend: backend, bytes: bytes, mapping: mapping}
	b.cleanup = runtime.AddCleanup(b, func(arg reclaimArg) {
		if arg.backend == Mapped {
			arg.owner.leak(arg.bytes)
			return
		}
		arg.owner.reclaim(arg.backend, arg.bytes, nil, true)
	}, reclaimArg{owner: a, backend: backend, bytes: bytes})
	a.allocs.Add(1)
	a.live.Add(1)
	return b
}

// leak records a mapped block that became unreachable before Free.
func (a *Allocator) leak(bytes int) {
	a.leaks.Add(1)
	a.log().Warn("mapped block leaked, release it explicitly", "bytes", bytes)
}

func (a *Allocator) reclaim(backend Backend, bytes int, mapping *mmap.Mapping, reclaimed bool) {
	if mapping != nil {
		if err := mapping.Close(); err != nil {
			a.log().Warn("unmap failed", "bytes", bytes, "error", err)
		}
	}
	a.budget.ReleaseMemory(int64(bytes))
	a.frees.Add(1)
	a.live.Add(-1)
	a.metrics.RecordFree(backend, bytes, reclaimed)
	a.log().Debug("block freed", "backend", backend.String(), "bytes", bytes, "reclaimed", reclaimed)
}

// fail logs, counts and raises a fatal allocation error.
func (a *Allocator) fail(e *Error) {
	a.failures.Add(1)
	a.metrics.RecordAlloc(a.backend, 0, 0, e)
	a.log().Error("allocation failed",
		"op", e.Op,
		"count", e.Count,
		"align", e.Align,
		"error", e.Err,
	)
	panic(e)
}

// checkAlign validates an alignment argument.
func (a *Allocator) checkAlign(op string, count, align int) {
	if align < 0 || (align != 0 && !conv.IsPowerOfTwo(align)) {
		a.fail(&Error{Op: op, Count: count, Align: align, Err: ErrInvalidAlignment})
	}
}

// Bytes allocates size bytes aligned to align (0 means byte alignment).
// The returned slice has length size; its capacity extends to the rounded
// size. Release the memory with Block.Free.
func (a *Allocator) Bytes(size, align int) ([]byte, *Block) {
	a.checkAlign("bytes", size, align)
	if size < 0 {
		a.fail(&Error{Op: "bytes", Count: size, Align: align, Err: ErrInvalidCount})
	}
	if size == 0 {
		return nil, nil
	}
	if align == 0 {
		align = 1
	}
	rounded, err := conv.RoundUp(size, align)
	if err != nil {
		a.fail(&Error{Op: "bytes", Count: size, Align: align, Err: fmt.Errorf("%w: %v", ErrSizeOverflow, err)})
	}

	start := time.Now()
	raw, block := a.acquire("bytes", size, rounded, align, a.backend)
	a.metrics.RecordAlloc(block.backend, rounded, time.Since(start), nil)
	return raw[:size], block
}

// acquire reserves budget and obtains rounded bytes aligned to align from
// the given backend.
func (a *Allocator) acquire(op string, count, rounded, align int, backend Backend) ([]byte, *Block) {
	if err := a.budget.AcquireMemory(int64(rounded)); err != nil {
		a.fail(&Error{Op: op, Count: count, Align: align, Err: fmt.Errorf("%w: %d bytes requested, %d in use, limit %d",
			ErrMemoryLimitExceeded, rounded, a.budget.MemoryUsage(), a.budget.MemoryLimit())})
	}

	var (
		raw     []byte
		mapping *mmap.Mapping
	)
	switch backend {
	case Mapped:
		var err error
		raw, mapping, err = mapAligned(rounded, align)
		if err != nil {
			a.budget.ReleaseMemory(int64(rounded))
			a.fail(&Error{Op: op, Count: count, Align: align, Err: fmt.Errorf("%w: %v", ErrMapFailed, err)})
		}
	default:
		raw = heapAligned(rounded, align)
	}

	block := a.newBlock(backend, rounded, mapping)
	a.log().Debug("block allocated", "backend", backend.String(), "bytes", rounded, "align", align)
	return raw, block
}

// heapAligned returns size bytes from the Go heap starting at a multiple of align.
// It allocates align extra bytes so an aligned offset always exists.
func heapAligned(size, align int) []byte {
	buf := make([]byte, size+align)
	off := alignOffset(uintptr(unsafe.Pointer(&buf[0])), align) //nolint:gosec // unsafe is required for memory alignment
	return buf[off : off+size : off+size]
}

// mapAligned returns size bytes of anonymous memory starting at a multiple of align.
// Mappings are page aligned; only alignments beyond the page size need slack.
func mapAligned(size, align int) ([]byte, *mmap.Mapping, error) {
	total := size
	if align > mmap.PageSize() {
		total += align
	}
	m, err := mmap.MapAnon(total)
	if err != nil {
		return nil, nil, err
	}
	off := alignOffset(m.Addr(), align)
	return m.Bytes()[off : off+size : off+size], m, nil
}

// alignOffset returns the distance from addr to the next multiple of align.
func alignOffset(addr uintptr, align int) int {
	mask := uintptr(align - 1)
	return int((uintptr(align) - (addr & mask)) & mask)
}
