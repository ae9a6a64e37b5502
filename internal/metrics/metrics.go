/*
 * Copyright 2026 The Yorkie Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics provides Prometheus metrics for heap operations, top-k
// selection and k-way merge.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/yorkie-team/heapq/internal/version"
	"github.com/yorkie-team/heapq/pkg/errors"
	"github.com/yorkie-team/heapq/pkg/heap"
)

const (
	namespace    = "heapq"
	opLabel      = "op"
	resultLabel  = "result"
	commandLabel = "command"
	sourceLabel  = "source"
)

// Metrics manages the metric information that heapq is trying to measure.
type Metrics struct {
	registry *prometheus.Registry

	buildInfo             *prometheus.GaugeVec
	heapOperationsTotal   *prometheus.CounterVec
	topkOffersTotal       *prometheus.CounterVec
	mergeElementsTotal    *prometheus.CounterVec
	commandDurationSecond *prometheus.HistogramVec
}

// NewMetrics creates a new instance of Metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	metrics := &Metrics{
		registry: reg,
		buildInfo: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Which version is running. 1 for 'version' label with current version.",
		}, []string{"version"}),
		heapOperationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heap",
			Name:      "operations_total",
			Help:      "The total count of heap operations by operation and result.",
		}, []string{opLabel, resultLabel}),
		topkOffersTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "topk",
			Name:      "offers_total",
			Help:      "The total count of values offered to top-k selection.",
		}, []string{resultLabel}),
		mergeElementsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "elements_total",
			Help:      "The total count of elements emitted by k-way merge per source.",
		}, []string{sourceLabel}),
		commandDurationSecond: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "command",
			Name:      "duration_seconds",
			Help:      "The duration of heapq commands.",
		}, []string{commandLabel}),
	}

	metrics.buildInfo.WithLabelValues(version.Version).Set(1)
	return metrics
}

// ObserveHeapOp counts a completed heap operation.
func (m *Metrics) ObserveHeapOp(op heap.Op, err error) {
	m.heapOperationsTotal.With(prometheus.Labels{
		opLabel:     string(op),
		resultLabel: resultOf(err),
	}).Inc()
}

// ObserveOffer counts a value offered to top-k selection.
func (m *Metrics) ObserveOffer(admitted bool) {
	result := "rejected"
	if admitted {
		result = "admitted"
	}
	m.topkOffersTotal.WithLabelValues(result).Inc()
}

// ObserveMerged counts an element emitted by k-way merge.
func (m *Metrics) ObserveMerged(source int) {
	m.mergeElementsTotal.WithLabelValues(fmt.Sprint(source)).Inc()
}

// ObserveCommand records the duration of a command.
func (m *Metrics) ObserveCommand(command string, duration time.Duration) {
	m.commandDurationSecond.WithLabelValues(command).Observe(duration.Seconds())
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Gather returns the current metric families.
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	return families, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.IsStatus(err, errors.ErrCodeResourceExhausted):
		return "full"
	case errors.IsStatus(err, errors.ErrCodeFailedPrecondition):
		return "empty"
	default:
		return "error"
	}
}
