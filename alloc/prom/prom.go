// Package prom exports allocator metrics to Prometheus.
//
//	c, err := prom.NewCollector(prometheus.DefaultRegisterer, "solver")
//	if err != nil {
//		return err
//	}
//	alloc.SetDefault(alloc.New(alloc.WithMetricsCollector(c)))
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/c2d/alloc"
)

// Collector implements alloc.MetricsCollector on top of Prometheus vectors.
type Collector struct {
	allocs      *prometheus.CounterVec
	allocErrors prometheus.Counter
	allocBytes  *prometheus.CounterVec
	allocTime   *prometheus.HistogramVec
	frees       *prometheus.CounterVec
	liveBlocks  *prometheus.GaugeVec
	liveBytes   *prometheus.GaugeVec
}

var _ alloc.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics under namespace and registers them with
// reg. A nil reg skips registration.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		allocs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "blocks_total",
			Help:      "Blocks allocated",
		}, []string{"backend"}),
		allocErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "failures_total",
			Help:      "Fatal allocation failures",
		}),
		allocBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "bytes_total",
			Help:      "Rounded bytes allocated",
		}, []string{"backend"}),
		allocTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "duration_seconds",
			Help:      "Time spent allocating a block",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 7),
		}, []string{"backend"}),
		frees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "frees_total",
			Help:      "Blocks released, by whether the runtime cleanup reclaimed them",
		}, []string{"backend", "reclaimed"}),
		liveBlocks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "live_blocks",
			Help:      "Blocks currently allocated",
		}, []string{"backend"}),
		liveBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "alloc",
			Name:      "live_bytes",
			Help:      "Rounded bytes currently allocated",
		}, []string{"backend"}),
	}

	if reg != nil {
		for _, m := range []prometheus.Collector{
			c.allocs, c.allocErrors, c.allocBytes, c.allocTime,
			c.frees, c.liveBlocks, c.liveBytes,
		} {
			if err := reg.Register(m); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// RecordAlloc implements alloc.MetricsCollector.
func (c *Collector) RecordAlloc(backend alloc.Backend, bytes int, d time.Duration, err error) {
	if err != nil {
		c.allocErrors.Inc()
		return
	}
	b := backend.String()
	c.allocs.WithLabelValues(b).Inc()
	c.allocBytes.WithLabelValues(b).Add(float64(bytes))
	c.allocTime.WithLabelValues(b).Observe(d.Seconds())
	c.liveBlocks.WithLabelValues(b).Inc()
	c.liveBytes.WithLabelValues(b).Add(float64(bytes))
}

// RecordFree implements alloc.MetricsCollector.
func (c *Collector) RecordFree(backend alloc.Backend, bytes int, reclaimed bool) {
	b := backend.String()
	reason := "false"
	if reclaimed {
		reason = "true"
	}
	c.frees.WithLabelValues(b, reason).Inc()
	c.liveBlocks.WithLabelValues(b).Dec()
	c.liveBytes.WithLabelValues(b).Sub(float64(bytes))
}
