package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the frame loop and its collaborators
const (
	EngineTicks    = "engine.ticks"
	EngineDropped  = "engine.dropped"
	EngineFrameUS  = "engine.frame_us"
	FieldAmbient   = "field.ambient"
	FieldExplosion = "field.explosion"
	FieldBursts    = "field.bursts"
	FieldRadius    = "field.light_radius"
	AudioPlayed    = "audio.played"
	AudioFailures  = "audio.failures"
	AudioMuted     = "audio.muted"
)

// Registry is the central metrics facade
// Components cache pointers at construction; frame code writes directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Line renders every metric as space separated key=value pairs, ints first, in key order
func (r *Registry) Line() string {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}
	r.Ints.Range(func(key string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		sep()
		fmt.Fprintf(&b, "%s=%.0f", key, v.Get())
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		sep()
		fmt.Fprintf(&b, "%s=%t", key, v.Load())
	})
	return b.String()
}
