package alloc

import "log/slog"

// Backend selects where buffers live.
type Backend int

const (
	// Heap allocates from the Go heap.
	Heap Backend = iota
	// Mapped allocates off-heap anonymous mappings.
	Mapped
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case Heap:
		return "heap"
	case Mapped:
		return "mapped"
	default:
		return "unknown"
	}
}

type options struct {
	backend          Backend
	memoryLimit      int64
	memoryFraction   float64
	logger           *slog.Logger
	metricsCollector MetricsCollector
}

// Option configures an Allocator.
type Option func(*options)

// WithBackend selects the memory backend. The default is Heap.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithMemoryLimit caps the bytes the allocator may hand out at once.
// Requests beyond the limit are fatal. 0 disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMemoryFraction caps the allocator at a fraction of the host's physical
// memory. It is ignored when WithMemoryLimit sets an explicit limit.
//
// Example:
//
//	a := alloc.New(alloc.WithMemoryFraction(0.5))
func WithMemoryFraction(f float64) Option {
	return func(o *options) {
		o.memoryFraction = f
	}
}

// WithLogger configures structured logging for allocation events.
// Pass nil to disable logging.
//
// Log levels used:
//   - [slog.LevelDebug]: allocate/free of individual blocks
//   - [slog.LevelWarn]: alignment degraded for pointer-carrying element types
//   - [slog.LevelError]: fatal allocation failures (logged before the panic)
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for allocation events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &alloc.BasicMetricsCollector{}
//	alloc.SetDefault(alloc.New(alloc.WithMetricsCollector(metrics)))
//	// ... use containers ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		backend: Heap,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = newNopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
