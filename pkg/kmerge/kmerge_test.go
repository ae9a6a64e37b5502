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

package kmerge_test

import (
	"cmp"
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorkie-team/heapq/pkg/errors"
	"github.com/yorkie-team/heapq/pkg/kmerge"
)

type sourceCounter map[int]int

func (c sourceCounter) ObserveMerged(source int) {
	c[source]++
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]int
		want  []int
	}{
		{"interleaved", [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"uneven and empty", [][]int{{}, {2, 4}, {1}}, []int{1, 2, 4}},
		{"single list", [][]int{{1, 2, 3}}, []int{1, 2, 3}},
		{"all empty", [][]int{{}, {}, {}}, []int{}},
		{"no lists", nil, []int{}},
		{"duplicates across lists", [][]int{{1, 3, 3}, {3, 5}, {0, 3}}, []int{0, 1, 3, 3, 3, 3, 5}},
		{"disjoint ranges", [][]int{{7, 8, 9}, {1, 2, 3}, {4, 5, 6}}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kmerge.MergeOrdered(tt.lists)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("lists are not modified", func(t *testing.T) {
		lists := [][]int{{1, 4}, {2, 3}}
		_, err := kmerge.MergeOrdered(lists)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 4}, {2, 3}}, lists)
	})

	t.Run("random lists", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		lists := make([][]int, 17)
		var all []int
		for i := range lists {
			n := r.Intn(20)
			for j := 0; j < n; j++ {
				lists[i] = append(lists[i], r.Intn(100))
			}
			slices.Sort(lists[i])
			all = append(all, lists[i]...)
		}
		slices.Sort(all)

		got, err := kmerge.MergeOrdered(lists)
		require.NoError(t, err)
		if len(all) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, all, got)
		}
	})

	t.Run("order within a source is kept", func(t *testing.T) {
		type entry struct {
			key int
			tag string
		}
		lists := [][]entry{
			{{1, "a1"}, {2, "a2"}, {2, "a3"}},
			{{3, "b1"}},
		}

		got, err := kmerge.Merge(lists, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
		require.NoError(t, err)
		assert.Equal(t, []entry{{1, "a1"}, {2, "a2"}, {2, "a3"}, {3, "b1"}}, got)
	})

	t.Run("unsorted source", func(t *testing.T) {
		_, err := kmerge.MergeOrdered([][]int{{1, 2}, {5, 3}})
		assert.ErrorIs(t, err, kmerge.ErrUnsortedSource)
		assert.True(t, errors.IsStatus(err, errors.ErrCodeInvalidArgument))
		assert.Equal(t, "1", errors.Metadata(err)["source"])
		assert.Equal(t, "1", errors.Metadata(err)["position"])
	})

	t.Run("nil comparator", func(t *testing.T) {
		_, err := kmerge.Merge[int]([][]int{{1}}, nil)
		assert.True(t, errors.IsStatus(err, errors.ErrCodeInvalidArgument))
	})

	t.Run("observer counts elements per source", func(t *testing.T) {
		counts := sourceCounter{}
		_, err := kmerge.MergeOrdered([][]string{{"a", "c"}, {}, {"b"}}, kmerge.WithObserver(counts))
		require.NoError(t, err)
		assert.Equal(t, sourceCounter{0: 2, 2: 1}, counts)
	})
}

func TestMerger(t *testing.T) {
	t.Run("holds at most one element per source", func(t *testing.T) {
		sources := []iter.Seq[int]{
			slices.Values([]int{1, 4, 7, 10}),
			slices.Values([]int{2, 5}),
			slices.Values([]int{3}),
		}
		m, err := kmerge.NewMerger(sources, cmp.Compare[int])
		require.NoError(t, err)
		defer m.Close()

		var got []kmerge.Element[int]
		for {
			assert.LessOrEqual(t, m.Pending(), len(sources))
			elem, ok, err := m.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, elem)
		}

		assert.Equal(t, []kmerge.Element[int]{
			{Source: 0, Value: 1},
			{Source: 1, Value: 2},
			{Source: 2, Value: 3},
			{Source: 0, Value: 4},
			{Source: 1, Value: 5},
			{Source: 0, Value: 7},
			{Source: 0, Value: 10},
		}, got)
		assert.Equal(t, 0, m.Pending())
	})

	t.Run("lazy sources are pulled on demand", func(t *testing.T) {
		pulled := 0
		counting := func(yield func(int) bool) {
			for i := 0; i < 1000; i++ {
				pulled++
				if !yield(i * 2) {
					return
				}
			}
		}

		m, err := kmerge.NewMerger([]iter.Seq[int]{counting, slices.Values([]int{1, 3})}, cmp.Compare[int])
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, ok, err := m.Next()
			require.NoError(t, err)
			require.True(t, ok)
		}
		m.Close()
		m.Close()

		assert.Less(t, pulled, 10)
	})
}
