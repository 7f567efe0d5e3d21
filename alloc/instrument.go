// File: alloc/instrument.go
// Author: momentics <momentics@gmail.com>
//
// Observability wrapper: Prometheus counters plus structured logging around
// any backend. The logger defaults to a nop so library users pay nothing
// unless they opt in.

package alloc

import (
	"go.uber.org/zap"

	"github.com/momentics/rawbuf/api"
)

// Instrumented decorates a backend with metrics and logging.
type Instrumented struct {
	backend api.Allocator
	name    string
	log     *zap.Logger
}

// NewInstrumented wraps backend. name labels the Prometheus series; a nil
// logger is replaced with zap.NewNop().
func NewInstrumented(backend api.Allocator, name string, log *zap.Logger) *Instrumented {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented{backend: backend, name: name, log: log}
}

func (a *Instrumented) Allocate(size int) (api.Region, error) {
	r, err := a.backend.Allocate(size)
	if err != nil {
		allocFailures.WithLabelValues(a.name).Inc()
		a.log.Warn("region allocation failed",
			zap.String("allocator", a.name),
			zap.Int("size", size),
			zap.Error(err))
		return nil, err
	}
	allocTotal.WithLabelValues(a.name).Inc()
	bytesInUse.WithLabelValues(a.name).Add(float64(r.Size()))
	regionSize.WithLabelValues(a.name).Observe(float64(r.Size()))
	a.log.Debug("region allocated",
		zap.String("allocator", a.name),
		zap.Int("size", r.Size()))
	return r, nil
}

func (a *Instrumented) Free(r api.Region) {
	if r == nil {
		return
	}
	freeTotal.WithLabelValues(a.name).Inc()
	bytesInUse.WithLabelValues(a.name).Sub(float64(r.Size()))
	a.log.Debug("region released",
		zap.String("allocator", a.name),
		zap.Int("size", r.Size()))
	a.backend.Free(r)
}

func (a *Instrumented) Stats() api.AllocatorStats { return a.backend.Stats() }

var _ api.Allocator = (*Instrumented)(nil)
