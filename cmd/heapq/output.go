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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"

	"github.com/yorkie-team/heapq/internal/metrics"
)

// result is the outcome of a command as written by the json and yaml
// output formats.
type result[T any] struct {
	Command string `json:"command" yaml:"command"`
	Count   int    `json:"count" yaml:"count"`
	Values  []T    `json:"values" yaml:"values"`
}

// writeResult writes values in the given output format.
func writeResult[T any](w io.Writer, format, command string, values []T) error {
	if values == nil {
		values = []T{}
	}
	res := result[T]{Command: command, Count: len(values), Values: values}

	switch format {
	case "", "plain":
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(&res); err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
	case "yaml":
		marshalled, err := yaml.Marshal(&res)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		if _, err := w.Write(marshalled); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	case "table":
		tw := newTableWriter()
		tw.AppendHeader(table.Row{"#", "VALUE"})
		for i, v := range values {
			tw.AppendRow(table.Row{i + 1, v})
		}
		if _, err := fmt.Fprintf(w, "%s\n", tw.Render()); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	return nil
}

// writeStats renders the gathered metrics as a table.
func writeStats(w io.Writer, m *metrics.Metrics) error {
	families, err := m.Gather()
	if err != nil {
		return err
	}

	tw := newTableWriter()
	tw.AppendHeader(table.Row{"METRIC", "LABELS", "VALUE"})
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			tw.AppendRow(table.Row{family.GetName(), labelsOf(metric), valueOf(family.GetType(), metric)})
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", tw.Render()); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}

func labelsOf(metric *dto.Metric) string {
	var pairs []string
	for _, label := range metric.GetLabel() {
		pairs = append(pairs, label.GetName()+"="+label.GetValue())
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func valueOf(typ dto.MetricType, metric *dto.Metric) string {
	switch typ {
	case dto.MetricType_COUNTER:
		return fmt.Sprint(metric.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprint(metric.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := metric.GetHistogram()
		return fmt.Sprintf("count=%d sum=%gs", h.GetSampleCount(), h.GetSampleSum())
	default:
		return ""
	}
}
