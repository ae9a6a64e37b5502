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

package metrics_test

import (
	"cmp"
	"slices"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorkie-team/heapq/internal/metrics"
	"github.com/yorkie-team/heapq/pkg/heap"
	"github.com/yorkie-team/heapq/pkg/kmerge"
	"github.com/yorkie-team/heapq/pkg/topk"
)

func TestMetrics(t *testing.T) {
	t.Run("heap operations", func(t *testing.T) {
		m := metrics.NewMetrics()
		h, err := heap.NewOrdered[int](1, heap.WithObserver(m))
		require.NoError(t, err)

		require.NoError(t, h.Insert(1))
		assert.Error(t, h.Insert(2))
		_, err = h.ExtractMin()
		require.NoError(t, err)
		_, err = h.PeekMin()
		assert.Error(t, err)

		count, err := testutil.GatherAndCount(m.Registry(), "heapq_heap_operations_total")
		require.NoError(t, err)
		assert.Equal(t, 4, count)

		families, err := m.Gather()
		require.NoError(t, err)
		var names []string
		for _, family := range families {
			names = append(names, family.GetName())
		}
		assert.Contains(t, names, "heapq_heap_operations_total")
		assert.Contains(t, names, "heapq_build_info")
	})

	t.Run("top-k offers", func(t *testing.T) {
		m := metrics.NewMetrics()
		_, err := topk.SelectOrdered(2, slices.Values([]int{1, 5, 3, 0}), topk.WithObserver(m))
		require.NoError(t, err)

		count, err := testutil.GatherAndCount(m.Registry(), "heapq_topk_offers_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("merge elements", func(t *testing.T) {
		m := metrics.NewMetrics()
		_, err := kmerge.Merge([][]int{{1, 2}, {3}}, cmp.Compare[int], kmerge.WithObserver(m))
		require.NoError(t, err)

		count, err := testutil.GatherAndCount(m.Registry(), "heapq_merge_elements_total")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("command duration", func(t *testing.T) {
		m := metrics.NewMetrics()
		m.ObserveCommand("sort", 20*time.Millisecond)
		m.ObserveCommand("sort", 30*time.Millisecond)

		count, err := testutil.GatherAndCount(m.Registry(), "heapq_command_duration_seconds")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
