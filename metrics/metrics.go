// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package metrics is a singleton service that provides global access to a set
// of meters. It wraps multiple implementations and defaults to a no-op one;
// call InitializePrometheusMetrics to switch to prometheus-backed meters.
package metrics

import (
	"net/http"
	"sync"
)

var service Metrics = &noopMetrics{}

// Metrics defines the interface of metrics service implementations.
type Metrics interface {
	GetOrCreateCountMeter(name string) CountMeter
	GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter
	GetOrCreateGaugeMeter(name string) GaugeMeter
	GetOrCreateHistogramMeter(name string, buckets []int64) HistogramMeter
	GetOrCreateHandler() http.Handler
}

// CountMeter is a monotonically increasing counter.
type CountMeter interface {
	Add(int64)
}

// CountVecMeter is a monotonically increasing counter with labels.
type CountVecMeter interface {
	AddWithLabel(int64, map[string]string)
}

// GaugeMeter is a single numeric value that can go up and down.
type GaugeMeter interface {
	Set(int64)
}

// HistogramMeter aggregates reported measurements into buckets.
type HistogramMeter interface {
	Observe(int64)
}

// Counter returns the named counter.
func Counter(name string) CountMeter { return service.GetOrCreateCountMeter(name) }

// CounterVec returns the named labeled counter.
func CounterVec(name string, labels []string) CountVecMeter {
	return service.GetOrCreateCountVecMeter(name, labels)
}

// Gauge returns the named gauge.
func Gauge(name string) GaugeMeter { return service.GetOrCreateGaugeMeter(name) }

// Histogram returns the named histogram.
func Histogram(name string, buckets []int64) HistogramMeter {
	return service.GetOrCreateHistogramMeter(name, buckets)
}

// HTTPHandler returns the http handler for scraping metrics, or nil for the
// no-op implementation.
func HTTPHandler() http.Handler { return service.GetOrCreateHandler() }

// LazyLoadCounter returns the named counter, resolved on first use so that
// package-level meters pick the implementation selected at startup.
func LazyLoadCounter(name string) func() CountMeter {
	return sync.OnceValue(func() CountMeter { return Counter(name) })
}

// LazyLoadCounterVec returns the named labeled counter, resolved on first use.
func LazyLoadCounterVec(name string, labels []string) func() CountVecMeter {
	return sync.OnceValue(func() CountVecMeter { return CounterVec(name, labels) })
}

// LazyLoadGauge returns the named gauge, resolved on first use.
func LazyLoadGauge(name string) func() GaugeMeter {
	return sync.OnceValue(func() GaugeMeter { return Gauge(name) })
}

// LazyLoadHistogram returns the named histogram, resolved on first use.
func LazyLoadHistogram(name string, buckets []int64) func() HistogramMeter {
	return sync.OnceValue(func() HistogramMeter { return Histogram(name, buckets) })
}
