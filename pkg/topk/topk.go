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

// Package topk selects the k largest values of a stream with a bounded
// min-heap. The heap holds the current candidates and its minimum is the
// weakest candidate, which is the first to be evicted.
package topk

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/yorkie-team/heapq/pkg/errors"
	"github.com/yorkie-team/heapq/pkg/heap"
)

// Observer is notified whenever a Selector admits or rejects a value.
type Observer interface {
	ObserveOffer(admitted bool)
}

// Option configures a Selector.
type Option func(*options)

type options struct {
	observer Observer
	heapOpts []heap.Option
}

// WithObserver reports every offered value to the given observer.
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

// Selector keeps the k largest values offered to it.
type Selector[T any] struct {
	heap     *heap.Heap[T]
	cmp      func(a, b T) int
	observer Observer
}

// NewSelector creates a Selector that retains at most k values.
func NewSelector[T any](k int, cmp func(a, b T) int, opts ...Option) (*Selector[T], error) {
	if k <= 0 {
		return nil, errors.InvalidArgument(
			fmt.Sprintf("k must be positive: %d", k),
		).WithCode("ErrInvalidK")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	h, err := heap.New(k, cmp, o.heapOpts...)
	if err != nil {
		return nil, fmt.Errorf("new selector: %w", err)
	}

	return &Selector[T]{
		heap:     h,
		cmp:      cmp,
		observer: o.observer,
	}, nil
}

// Offer considers v for the top k and reports whether it was retained.
//
// Until k values have been seen every value is retained. After that v
// replaces the current minimum only if it is strictly greater, so among
// equal values the first one offered stays.
func (s *Selector[T]) Offer(v T) (bool, error) {
	if !s.heap.IsFull() {
		if err := s.heap.Insert(v); err != nil {
			return false, fmt.Errorf("offer: %w", err)
		}
		s.observe(true)
		return true, nil
	}

	weakest, err := s.heap.PeekMin()
	if err != nil {
		return false, fmt.Errorf("offer: %w", err)
	}
	if s.cmp(v, weakest) <= 0 {
		s.observe(false)
		return false, nil
	}

	if _, err := s.heap.ReplaceMin(v); err != nil {
		return false, fmt.Errorf("offer: %w", err)
	}
	s.observe(true)
	return true, nil
}

// Len returns the number of values currently retained.
func (s *Selector[T]) Len() int {
	return s.heap.Len()
}

// Min returns the weakest retained value, the one that a new value has to
// beat to be admitted once the selector is full.
func (s *Selector[T]) Min() (T, error) {
	return s.heap.PeekMin()
}

// Result returns the retained values in ascending order. The selector is
// left untouched and may keep receiving values.
func (s *Selector[T]) Result() []T {
	result := s.heap.Items()
	heap.Sort(result, s.cmp)
	return result
}

// Verify checks the invariant of the underlying heap.
func (s *Selector[T]) Verify() error {
	return s.heap.Verify()
}

func (s *Selector[T]) observe(admitted bool) {
	if s.observer != nil {
		s.observer.ObserveOffer(admitted)
	}
}

// Select returns the k largest values of seq in ascending order. When seq
// yields fewer than k values all of them are returned.
func Select[T any](k int, seq iter.Seq[T], cmp func(a, b T) int, opts ...Option) ([]T, error) {
	s, err := NewSelector(k, cmp, opts...)
	if err != nil {
		return nil, err
	}

	for v := range seq {
		if _, err := s.Offer(v); err != nil {
			return nil, err
		}
	}

	return s.Result(), nil
}

// SelectOrdered is Select over an ordered type using cmp.Compare.
func SelectOrdered[T cmp.Ordered](k int, seq iter.Seq[T], opts ...Option) ([]T, error) {
	return Select(k, seq, cmp.Compare[T], opts...)
}
