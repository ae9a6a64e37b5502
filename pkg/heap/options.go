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

// Op names a public heap operation reported to an Observer.
type Op string

// The operations reported to an Observer.
const (
	OpInsert     Op = "insert"
	OpPeekMin    Op = "peek_min"
	OpExtractMin Op = "extract_min"
	OpReplaceMin Op = "replace_min"
)

// Observer is notified after every public heap operation completes. err is
// nil on success, or ErrCapacity / ErrEmpty.
type Observer interface {
	ObserveHeapOp(op Op, err error)
}

// Option configures a Heap.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver reports every completed operation to the given observer.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
