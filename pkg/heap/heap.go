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

// Package heap provides a bounded binary min-heap with priority queue
// semantics. The heap is ordered by a comparison function supplied at
// construction, so the same implementation backs plain values as well as
// tagged elements such as those used by k-way merge.
package heap

import (
	"cmp"
	"fmt"

	"github.com/yorkie-team/heapq/pkg/errors"
)

// NoIndex is returned by the index helpers when the requested position does
// not hold an element.
const NoIndex = -1

// initialCapacity bounds the up-front allocation of the backing slice. The
// slice grows on demand up to the logical capacity of the heap.
const initialCapacity = 64

var (
	// ErrCapacity is returned by Insert when the heap is at its fixed capacity.
	ErrCapacity = errors.ResourceExhausted("heap is full").WithCode("ErrHeapFull")

	// ErrEmpty is returned by PeekMin, ExtractMin and ReplaceMin when the heap
	// holds no elements.
	ErrEmpty = errors.FailedPrecond("heap is empty").WithCode("ErrHeapEmpty")
)

// Heap is a min-heap over T with a fixed logical capacity. The element at
// index 0 is always the smallest according to cmp. The heap never grows past
// the capacity given to New; exceeding it is reported as ErrCapacity.
//
// Heap is not safe for concurrent use. See Synchronized.
type Heap[T any] struct {
	items    []T
	capacity int
	cmp      func(a, b T) int
	observer Observer
}

// New creates an empty Heap that holds at most capacity elements.
// cmp must return a negative number when a orders before b, zero when they
// are equal and a positive number otherwise.
func New[T any](capacity int, cmp func(a, b T) int, opts ...Option) (*Heap[T], error) {
	if capacity <= 0 {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("heap capacity must be positive: %d", capacity),
		).WithCode("ErrInvalidCapacity")
	}
	if cmp == nil {
		return nil, errors.InvalidArgument("heap comparator is nil").WithCode("ErrNilComparator")
	}

	o := newOptions(opts)
	return &Heap[T]{
		items:    make([]T, 0, min(capacity, initialCapacity)),
		capacity: capacity,
		cmp:      cmp,
		observer: o.observer,
	}, nil
}

// NewOrdered creates an empty Heap over an ordered type using cmp.Compare.
func NewOrdered[T cmp.Ordered](capacity int, opts ...Option) (*Heap[T], error) {
	return New(capacity, cmp.Compare[T], opts...)
}

// ParentIndex returns the index of the parent of i, or NoIndex if i is not a
// valid position. The root is its own parent.
func (h *Heap[T]) ParentIndex(i int) int {
	if i < 0 || i >= len(h.items) {
		return NoIndex
	}
	return (i - 1) / 2
}

// LeftChildIndex returns 2i+1, or NoIndex if that position holds no element.
func (h *Heap[T]) LeftChildIndex(i int) int {
	left := 2*i + 1
	if i < 0 || left >= len(h.items) {
		return NoIndex
	}
	return left
}

// RightChildIndex returns 2i+2, or NoIndex if that position holds no element.
func (h *Heap[T]) RightChildIndex(i int) int {
	right := 2*i + 2
	if i < 0 || right >= len(h.items) {
		return NoIndex
	}
	return right
}

// Insert adds v to the heap. It returns ErrCapacity, leaving the heap
// untouched, if the heap is already full.
func (h *Heap[T]) Insert(v T) error {
	if len(h.items) >= h.capacity {
		h.observe(OpInsert, ErrCapacity)
		return ErrCapacity
	}

	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
	h.observe(OpInsert, nil)
	return nil
}

// PeekMin returns the smallest element without removing it.
func (h *Heap[T]) PeekMin() (T, error) {
	if len(h.items) == 0 {
		var zero T
		h.observe(OpPeekMin, ErrEmpty)
		return zero, ErrEmpty
	}

	h.observe(OpPeekMin, nil)
	return h.items[0], nil
}

// ExtractMin removes and returns the smallest element.
func (h *Heap[T]) ExtractMin() (T, error) {
	if len(h.items) == 0 {
		var zero T
		h.observe(OpExtractMin, ErrEmpty)
		return zero, ErrEmpty
	}

	minItem := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]

	var zero T
	h.items[last] = zero // avoid memory leak
	h.items = h.items[:last]

	if last > 0 {
		h.siftDown(0)
	}

	h.observe(OpExtractMin, nil)
	return minItem, nil
}

// ReplaceMin removes the smallest element and inserts v in its place with a
// single sift-down. It is equivalent to ExtractMin followed by Insert but
// never fails for capacity, since the size of the heap does not change.
func (h *Heap[T]) ReplaceMin(v T) (T, error) {
	if len(h.items) == 0 {
		var zero T
		h.observe(OpReplaceMin, ErrEmpty)
		return zero, ErrEmpty
	}

	minItem := h.items[0]
	h.items[0] = v
	h.siftDown(0)

	h.observe(OpReplaceMin, nil)
	return minItem, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Cap returns the fixed capacity of the heap.
func (h *Heap[T]) Cap() int {
	return h.capacity
}

// IsEmpty returns true if the heap is empty.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// IsFull returns true if the heap has reached its capacity.
func (h *Heap[T]) IsFull() bool {
	return len(h.items) >= h.capacity
}

// At returns the element stored at index i in heap order.
// It panics if i is out of range, like indexing a slice.
func (h *Heap[T]) At(i int) T {
	return h.items[i]
}

// Items returns a copy of all items in the heap.
// The order is the internal heap order, not sorted order.
func (h *Heap[T]) Items() []T {
	result := make([]T, len(h.items))
	copy(result, h.items)
	return result
}

// Clear removes all elements from the heap. The capacity is unchanged.
func (h *Heap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// Verify checks the heap invariant for every parent and child pair. A
// violation can only come from a comparator that is not a total order, and
// is reported as an internal error naming the offending index.
func (h *Heap[T]) Verify() error {
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) < 0 {
			return errors.Internal(fmt.Sprintf(
				"heap order violated at index %d: element orders before its parent at %d", i, parent,
			)).WithCode("ErrHeapOrder")
		}
	}
	return nil
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// siftUp moves the element at i towards the root while it is smaller than
// its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) >= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	down(h.items, i, len(h.items), h.cmp)
}

// down moves items[i] towards the leaves of the heap stored in items[:n].
// The left child is chosen unless the right child is strictly smaller.
// It reports whether the element moved.
func down[T any](items []T, i0, n int, cmp func(a, b T) int) bool {
	i := i0
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			break
		}
		child := left
		if right := left + 1; right < n && cmp(items[right], items[left]) < 0 {
			child = right
		}
		if cmp(items[child], items[i]) >= 0 {
			break
		}
		items[i], items[child] = items[child], items[i]
		i = child
	}
	return i > i0
}

func (h *Heap[T]) observe(op Op, err error) {
	if h.observer != nil {
		h.observer.ObserveHeapOp(op, err)
	}
}
