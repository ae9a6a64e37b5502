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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yorkie-team/heapq/internal/validation"
	"github.com/yorkie-team/heapq/pkg/errors"
	"github.com/yorkie-team/heapq/pkg/heap"
)

const (
	sortMethodHeapSort = "heapsort"
	sortMethodExtract  = "extract"
)

func newSortCmd(c *cli) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "sort [FILE...]",
		Short: "Sort values in ascending order with a heap",
		Long: `Sort the values of the given files, or of stdin, in ascending order.
The heapsort method sorts the buffered values in place; the extract method
inserts them into a bounded min-heap and extracts the minimum repeatedly.`,
		RunE: c.run("sort", func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			if err := validation.ValidateValue(method, "oneof="+sortMethodHeapSort+" "+sortMethodExtract); err != nil {
				return errors.InvalidArgument(fmt.Sprintf("invalid sort method %q", method)).WithCode("ErrInvalidMethod")
			}

			if e.conf.IsNumeric() {
				return runSort(cmd, e, intKind, method, args)
			}
			return runSort(cmd, e, stringKind, method, args)
		}),
	}
	cmd.Flags().StringVar(&method, "method", sortMethodHeapSort, "Sort method: heapsort or extract")

	return cmd
}

func runSort[T any](cmd *cobra.Command, e *env, kind valueKind[T], method string, files []string) error {
	limit := e.conf.MaxInputValues

	var values []T
	if err := forEachValue(files, cmd.InOrStdin(), kind.parse, func(v T) error {
		if len(values) >= limit {
			return errors.WithMetadata(ErrTooManyValues, map[string]string{
				"limit": fmt.Sprint(limit),
			})
		}
		values = append(values, v)
		return nil
	}); err != nil {
		return err
	}

	switch method {
	case sortMethodExtract:
		sorted, err := extractSort(e, kind, values)
		if err != nil {
			return err
		}
		values = sorted
	default:
		heap.Sort(values, kind.compare)
	}

	e.logger.Infof("sorted %d values with %s", len(values), method)
	return writeResult(cmd.OutOrStdout(), e.conf.Output, "sort", values)
}

// extractSort inserts every value into a heap sized to hold them all and
// extracts the minimum until the heap is empty.
func extractSort[T any](e *env, kind valueKind[T], values []T) ([]T, error) {
	h, err := heap.New(max(len(values), 1), kind.compare, heap.WithObserver(e.metrics))
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		if err := h.Insert(v); err != nil {
			return nil, fmt.Errorf("insert value: %w", err)
		}
	}

	if e.conf.Verify {
		if err := h.Verify(); err != nil {
			return nil, err
		}
	}

	sorted := make([]T, 0, len(values))
	for !h.IsEmpty() {
		v, err := h.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("extract value: %w", err)
		}
		sorted = append(sorted, v)
	}
	return sorted, nil
}
