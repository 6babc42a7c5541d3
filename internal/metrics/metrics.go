/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package metrics is the optional prometheus wiring for the runtime
// substrate: connection and accept/disconnect counters plus an
// event-loop queue-depth gauge, registered only when a host process
// supplies a prometheus.Registerer. Nothing in network/server,
// network/client or loop depends on this package directly being
// non-nil — every recorder method is a nil-safe no-op, matching this
// module's "logger.Discard" fallback idiom for optional ambient
// dependencies.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Server collects per-server connection lifecycle counters.
type Server struct {
	namespace string
	subsystem string

	accepted     *prometheus.CounterVec
	acceptFailed *prometheus.CounterVec
	disconnected *prometheus.CounterVec
	active       *prometheus.GaugeVec
}

// NewServer builds a Server recorder and registers its collectors with
// reg. A nil reg yields a usable-but-inert recorder (every method is a
// no-op), so callers can construct one unconditionally and only wire a
// real Registerer when the host process wants metrics exported.
func NewServer(reg prometheus.Registerer, namespace, subsystem string) *Server {
	s := &Server{namespace: namespace, subsystem: subsystem}
	if reg == nil {
		return s
	}

	s.accepted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem, Name: "connections_accepted_total",
		Help: "Total connections accepted.",
	}, []string{"server"})
	s.acceptFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem, Name: "accept_failures_total",
		Help: "Total accept-loop failures.",
	}, []string{"server"})
	s.disconnected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem, Name: "connections_disconnected_total",
		Help: "Total connections disconnected.",
	}, []string{"server"})
	s.active = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: subsystem, Name: "connections_active",
		Help: "Currently connected peers.",
	}, []string{"server"})

	reg.MustRegister(s.accepted, s.acceptFailed, s.disconnected, s.active)
	return s
}

func (s *Server) Accepted(name string) {
	if s == nil || s.accepted == nil {
		return
	}
	s.accepted.WithLabelValues(name).Inc()
	s.active.WithLabelValues(name).Inc()
}

func (s *Server) AcceptFailed(name string) {
	if s == nil || s.acceptFailed == nil {
		return
	}
	s.acceptFailed.WithLabelValues(name).Inc()
}

func (s *Server) Disconnected(name string) {
	if s == nil || s.disconnected == nil {
		return
	}
	s.disconnected.WithLabelValues(name).Inc()
	s.active.WithLabelValues(name).Dec()
}

// LoopQueueDepth is the optional per-loop queue-depth gauge the
// Application controller wires to its main loop (SPEC_FULL's
// domain-stack table).
type LoopQueueDepth struct {
	gauge *prometheus.GaugeVec
}

// NewLoopQueueDepth registers a gauge vec keyed by loop name. A nil reg
// yields an inert recorder.
func NewLoopQueueDepth(reg prometheus.Registerer, namespace string) *LoopQueueDepth {
	d := &LoopQueueDepth{}
	if reg == nil {
		return d
	}
	d.gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Name: "loop_queue_depth",
		Help: "Pending tasks on an event loop's queue.",
	}, []string{"loop"})
	reg.MustRegister(d.gauge)
	return d
}

func (d *LoopQueueDepth) Set(loopName string, depth int) {
	if d == nil || d.gauge == nil {
		return
	}
	d.gauge.WithLabelValues(loopName).Set(float64(depth))
}
