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

import "sync"

// Synchronized is a Heap guarded by a single mutex. Each operation holds the
// lock for its whole duration, because sifting touches several slots in
// sequence and must not interleave with another operation.
type Synchronized[T any] struct {
	mu   sync.Mutex
	heap *Heap[T]
}

// NewSynchronized creates an empty Synchronized heap.
func NewSynchronized[T any](capacity int, cmp func(a, b T) int, opts ...Option) (*Synchronized[T], error) {
	h, err := New(capacity, cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &Synchronized[T]{heap: h}, nil
}

// Insert adds v to the heap.
func (s *Synchronized[T]) Insert(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Insert(v)
}

// PeekMin returns the smallest element without removing it.
func (s *Synchronized[T]) PeekMin() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.PeekMin()
}

// ExtractMin removes and returns the smallest element.
func (s *Synchronized[T]) ExtractMin() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.ExtractMin()
}

// ReplaceMin removes the smallest element and inserts v.
func (s *Synchronized[T]) ReplaceMin(v T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.ReplaceMin(v)
}

// Len returns the number of elements in the heap.
func (s *Synchronized[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Len()
}

// Items returns a copy of all items in heap order.
func (s *Synchronized[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Items()
}

// Verify checks the heap invariant.
func (s *Synchronized[T]) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Verify()
}
