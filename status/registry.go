// Package status is the process-wide metrics registry read by the HUD and the bench tool.
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Producers cache pointers once; frame loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders one registered metric, ok is false for an unknown key
// Lookup order is strings, ints, floats, bools
func (r *Registry) Format(key string) (string, bool) {
	switch {
	case r.Strings.Has(key):
		return r.Strings.Get(key).Load(), true
	case r.Ints.Has(key):
		return strconv.FormatInt(r.Ints.Get(key).Load(), 10), true
	case r.Floats.Has(key):
		return strconv.FormatFloat(r.Floats.Get(key).Get(), 'f', 1, 64), true
	case r.Bools.Has(key):
		return strconv.FormatBool(r.Bools.Get(key).Load()), true
	}
	return "", false
}

// Line joins key=value pairs for keys in the given order, skipping unknown keys
func (r *Registry) Line(keys ...string) string {
	var sb strings.Builder
	for _, k := range keys {
		v, ok := r.Format(k)
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%s", k[strings.LastIndexByte(k, '.')+1:], v)
	}
	return sb.String()
}
