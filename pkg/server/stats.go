/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats are the live counters a Server keeps about its traffic.
type Stats struct {
	BytesIn  atomic.Int64
	Sessions atomic.Int64
}

type statsCollector struct {
	stats *Stats

	bytesIn  *prometheus.Desc
	sessions *prometheus.Desc
}

func NewStatsCollector(stats *Stats) prometheus.Collector {
	return &statsCollector{
		stats: stats,
		bytesIn: prometheus.NewDesc(
			"rpn2tex_input_bytes",
			"Total bytes of RPN source received.",
			nil, nil,
		),
		sessions: prometheus.NewDesc(
			"rpn2tex_websocket_sessions",
			"Number of open websocket sessions.",
			nil, nil,
		),
	}
}

// Describe implements Collector.
func (c *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesIn
	ch <- c.sessions
}

// Collect implements Collector.
func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.bytesIn, prometheus.CounterValue, float64(c.stats.BytesIn.Load()))
	ch <- prometheus.MustNewConstMetric(c.sessions, prometheus.GaugeValue, float64(c.stats.Sessions.Load()))
}
