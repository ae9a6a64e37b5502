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

package heap

// Sort sorts items in ascending order of cmp in place using heap sort.
//
// The slice is first arranged into a max-heap from the last parent upwards.
// The root is then swapped behind the shrinking heap prefix until one element
// is left. Sort is not stable.
func Sort[T any](items []T, cmp func(a, b T) int) {
	greater := func(a, b T) int { return cmp(b, a) }

	n := len(items)
	for i := n/2 - 1; i >= 0; i-- {
		down(items, i, n, greater)
	}

	for end := n - 1; end > 0; end-- {
		items[0], items[end] = items[end], items[0]
		down(items, 0, end, greater)
	}
}
