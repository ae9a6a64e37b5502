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

package heap_test

import (
	"cmp"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/heapq/pkg/heap"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"empty", []int{}},
		{"single", []int{4}},
		{"already sorted", []int{1, 2, 3, 4, 5}},
		{"reversed", []int{5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 3, 2, 1, 3}},
		{"mixed signs", []int{0, -7, 12, -1, 5, 5, -7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.input)
			heap.Sort(got, cmp.Compare[int])

			want := slices.Clone(tt.input)
			slices.Sort(want)
			assert.Equal(t, want, got)
		})
	}

	t.Run("random input", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for n := 0; n < 200; n += 13 {
			values := make([]int, n)
			for i := range values {
				values[i] = r.Intn(1000) - 500
			}
			heap.Sort(values, cmp.Compare[int])
			assert.True(t, slices.IsSorted(values))
		}
	})

	t.Run("custom comparator", func(t *testing.T) {
		words := []string{"Kiwi", "apple", "banana", "Cherry"}
		heap.Sort(words, func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})
		assert.Equal(t, []string{"apple", "banana", "Cherry", "Kiwi"}, words)
	})
}
