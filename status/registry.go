package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; update loops write atomics directly
// Readers (HUD, CLI report, websocket) may load from any goroutine
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is a formatted key/value pair for reporting
type Metric struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Report returns every metric formatted, ints first, each group sorted by key
func (r *Registry) Report() []Metric {
	result := make([]Metric, 0, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		result = append(result, Metric{Key: key, Value: fmt.Sprintf("%d", ptr.Load())})
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		result = append(result, Metric{Key: key, Value: fmt.Sprintf("%.2f", ptr.Get())})
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		result = append(result, Metric{Key: key, Value: ptr.Load()})
	})
	return result
}
