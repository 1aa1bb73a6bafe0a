/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncConversions(result string)
	ObserveResponseNS(endpoint string, t int64)
}

type metricsStore struct {
	registry    *prometheus.Registry
	Conversions *prometheus.CounterVec
	ResponseNS  *prometheus.HistogramVec
}

var (
	ResultLabel   = "result"
	EndpointLabel = "endpoint"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(50*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rpn2tex_conversions",
			Help: "Conversion counts by outcome",
		}, []string{ResultLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rpn2tex_response_ns",
			Help:    "Time taken to answer a conversion request",
			Buckets: buckets,
		}, []string{EndpointLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncConversions(result string) {
	ms.Conversions.With(prometheus.Labels{ResultLabel: result}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(endpoint string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}
