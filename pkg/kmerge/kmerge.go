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

// Package kmerge merges k ascending sources into one ascending sequence,
// using a min-heap that holds at most one pending element per source.
package kmerge

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/yorkie-team/heapq/pkg/errors"
	"github.com/yorkie-team/heapq/pkg/heap"
)

// ErrUnsortedSource is returned when a source yields a value that orders
// before the value it yielded previously.
var ErrUnsortedSource = errors.InvalidArgument("source is not sorted").WithCode("ErrUnsortedSource")

// Element is a value tagged with the index of the source it came from. Only
// Value takes part in ordering; Source is carried along so the merge knows
// which source to pull the successor from.
type Element[T any] struct {
	Source int
	Value  T
}

// Observer is notified for every element a Merger emits.
type Observer interface {
	ObserveMerged(source int)
}

// Option configures a Merger.
type Option func(*options)

type options struct {
	observer Observer
	heapOpts []heap.Option
}

// WithObserver reports every emitted element to the given observer.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithHeapOptions passes options through to the underlying heap.
func WithHeapOptions(opts ...heap.Option) Option {
	return func(o *options) {
		o.heapOpts = append(o.heapOpts, opts...)
	}
}

// Merger emits the elements of several ascending sources in ascending order.
// Sources are consumed front to back one element at a time, so the order
// within a source is kept. Equal values from different sources are emitted
// in no particular order.
type Merger[T any] struct {
	heap     *heap.Heap[Element[T]]
	cmp      func(a, b T) int
	next     []func() (T, bool)
	stop     []func()
	pulled   []int
	observer Observer
}

// NewMerger creates a Merger over the given sources and seeds the heap with
// the head of every non-empty source. The caller must Close the Merger.
func NewMerger[T any](sources []iter.Seq[T], cmp func(a, b T) int, opts ...Option) (*Merger[T], error) {
	if cmp == nil {
		return nil, errors.InvalidArgument("merge comparator is nil").WithCode("ErrNilComparator")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	h, err := heap.New(max(len(sources), 1), func(a, b Element[T]) int {
		return cmp(a.Value, b.Value)
	}, o.heapOpts...)
	if err != nil {
		return nil, fmt.Errorf("new merger: %w", err)
	}

	m := &Merger[T]{
		heap:     h,
		cmp:      cmp,
		next:     make([]func() (T, bool), len(sources)),
		stop:     make([]func(), len(sources)),
		pulled:   make([]int, len(sources)),
		observer: o.observer,
	}

	for i, source := range sources {
		m.next[i], m.stop[i] = iter.Pull(source)
	}

	for i := range sources {
		v, ok := m.next[i]()
		if !ok {
			continue
		}
		m.pulled[i]++
		if err := m.heap.Insert(Element[T]{Source: i, Value: v}); err != nil {
			m.Close()
			return nil, fmt.Errorf("seed source %d: %w", i, err)
		}
	}

	return m, nil
}

// Next returns the smallest pending element. ok is false once every source
// is exhausted.
func (m *Merger[T]) Next() (elem Element[T], ok bool, err error) {
	if m.heap.IsEmpty() {
		return Element[T]{}, false, nil
	}

	elem, err = m.heap.ExtractMin()
	if err != nil {
		return Element[T]{}, false, fmt.Errorf("next: %w", err)
	}

	if v, more := m.next[elem.Source](); more {
		if m.cmp(v, elem.Value) < 0 {
			return Element[T]{}, false, errors.WithMetadata(ErrUnsortedSource, map[string]string{
				"source":   fmt.Sprint(elem.Source),
				"position": fmt.Sprint(m.pulled[elem.Source]),
			})
		}
		m.pulled[elem.Source]++

		if err := m.heap.Insert(Element[T]{Source: elem.Source, Value: v}); err != nil {
			return Element[T]{}, false, fmt.Errorf("next: %w", err)
		}
	}

	if m.observer != nil {
		m.observer.ObserveMerged(elem.Source)
	}
	return elem, true, nil
}

// Pending returns the number of elements waiting in the heap. It never
// exceeds the number of sources.
func (m *Merger[T]) Pending() int {
	return m.heap.Len()
}

// Close releases the pull iterators of all sources. It is safe to call Close
// more than once.
func (m *Merger[T]) Close() {
	for _, stop := range m.stop {
		if stop != nil {
			stop()
		}
	}
}

// Merge merges ascending lists into a single ascending slice holding every
// element of every list. The lists are only read.
func Merge[T any](lists [][]T, cmp func(a, b T) int, opts ...Option) ([]T, error) {
	total := 0
	sources := make([]iter.Seq[T], len(lists))
	for i, list := range lists {
		total += len(list)
		sources[i] = slices.Values(list)
	}

	m, err := NewMerger(sources, cmp, opts...)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	merged := make([]T, 0, total)
	for len(merged) < total {
		elem, ok, err := m.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Internal(fmt.Sprintf(
				"merge ended after %d of %d elements", len(merged), total,
			))
		}
		merged = append(merged, elem.Value)
	}

	return merged, nil
}

// MergeOrdered is Merge over an ordered type using cmp.Compare.
func MergeOrdered[T cmp.Ordered](lists [][]T, opts ...Option) ([]T, error) {
	return Merge(lists, cmp.Compare[T], opts...)
}
