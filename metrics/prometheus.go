// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgeboard/forge/log"
)

const namespace = "forge"

var logger = log.WithContext("pkg", "metrics")

// InitializePrometheusMetrics sets the prometheus implementation as the
// default metrics service. It cannot be reset.
func InitializePrometheusMetrics() {
	if _, ok := service.(*prometheusMetrics); !ok {
		service = &prometheusMetrics{}
	}
}

type prometheusMetrics struct {
	counters    sync.Map
	counterVecs sync.Map
	gauges      sync.Map
	histograms  sync.Map
}

func (p *prometheusMetrics) GetOrCreateCountMeter(name string) CountMeter {
	if meter, ok := p.counters.Load(name); ok {
		return meter.(CountMeter)
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name})
	if err := prometheus.Register(c); err != nil {
		logger.Warn("unable to register counter", "name", name, "err", err)
	}
	meter := &promCounter{c}
	p.counters.Store(name, meter)
	return meter
}

func (p *prometheusMetrics) GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter {
	if meter, ok := p.counterVecs.Load(name); ok {
		return meter.(CountVecMeter)
	}
	c := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name}, labels)
	if err := prometheus.Register(c); err != nil {
		logger.Warn("unable to register counter vec", "name", name, "err", err)
	}
	meter := &promCounterVec{c}
	p.counterVecs.Store(name, meter)
	return meter
}

func (p *prometheusMetrics) GetOrCreateGaugeMeter(name string) GaugeMeter {
	if meter, ok := p.gauges.Load(name); ok {
		return meter.(GaugeMeter)
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name})
	if err := prometheus.Register(g); err != nil {
		logger.Warn("unable to register gauge", "name", name, "err", err)
	}
	meter := &promGauge{g}
	p.gauges.Store(name, meter)
	return meter
}

func (p *prometheusMetrics) GetOrCreateHistogramMeter(name string, buckets []int64) HistogramMeter {
	if meter, ok := p.histograms.Load(name); ok {
		return meter.(HistogramMeter)
	}
	floatBuckets := make([]float64, len(buckets))
	for i, b := range buckets {
		floatBuckets[i] = float64(b)
	}
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Buckets:   floatBuckets,
	})
	if err := prometheus.Register(h); err != nil {
		logger.Warn("unable to register histogram", "name", name, "err", err)
	}
	meter := &promHistogram{h}
	p.histograms.Store(name, meter)
	return meter
}

func (p *prometheusMetrics) GetOrCreateHandler() http.Handler {
	return promhttp.Handler()
}

type promCounter struct {
	counter prometheus.Counter
}

func (c *promCounter) Add(v int64) { c.counter.Add(float64(v)) }

type promCounterVec struct {
	vec *prometheus.CounterVec
}

func (c *promCounterVec) AddWithLabel(v int64, labels map[string]string) {
	c.vec.With(labels).Add(float64(v))
}

type promGauge struct {
	gauge prometheus.Gauge
}

func (g *promGauge) Set(v int64) { g.gauge.Set(float64(v)) }

type promHistogram struct {
	histogram prometheus.Histogram
}

func (h *promHistogram) Observe(v int64) { h.histogram.Observe(float64(v)) }
