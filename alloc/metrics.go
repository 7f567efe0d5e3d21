// File: alloc/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collectors for instrumented allocators.

package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rawbuf_alloc_total",
		Help: "Total number of region allocations",
	}, []string{"allocator"})

	allocFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rawbuf_alloc_failures_total",
		Help: "Total number of failed region allocations",
	}, []string{"allocator"})

	freeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rawbuf_free_total",
		Help: "Total number of region releases",
	}, []string{"allocator"})

	bytesInUse = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rawbuf_bytes_in_use",
		Help: "Bytes currently held in live regions",
	}, []string{"allocator"})

	regionSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rawbuf_region_size_bytes",
		Help:    "Size distribution of allocated regions",
		Buckets: prometheus.ExponentialBuckets(256, 4, 10), // 256B to 64MB
	}, []string{"allocator"})
)
