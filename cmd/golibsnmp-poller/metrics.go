/*
 * golibsnmp poller metrics
 *
 * Copyright (c) 2024 Netcon Pro
 * Author(s):
 *  - Abdul Zagirov <zagirovaa@netcon.pro>
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/netconpro/golibsnmp"
)

var (
	ordersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "golibsnmp_orders_total",
		Help: "Polling orders processed, by result",
	}, []string{"result"})

	orderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "golibsnmp_order_duration_seconds",
		Help:    "Time spent executing a single polling order",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 20},
	})
)

// serveMetrics exposes the prometheus endpoint when an address is
// configured. Never returns.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	golibsnmp.Logf("metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		golibsnmp.Errorf("metrics listener failed: %s", err)
	}
}
