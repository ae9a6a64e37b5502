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

	"github.com/spf13/cobra"

	"github.com/yorkie-team/heapq/pkg/heap"
	"github.com/yorkie-team/heapq/pkg/topk"
)

func newTopKCmd(c *cli) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "topk [FILE...]",
		Short: "Print the k largest values in ascending order",
		Long: `Print the k largest values of the given files, or of stdin, in ascending order.
Values are read one per line and never buffered beyond the k candidates.`,
		RunE: c.run("topk", func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			count := k
			if count == 0 {
				count = e.conf.DefaultK
			}

			if e.conf.IsNumeric() {
				return runTopK(cmd, e, intKind, count, args)
			}
			return runTopK(cmd, e, stringKind, count, args)
		}),
	}
	cmd.Flags().IntVarP(&k, "k", "k", 0, "Number of values to keep (default from config)")

	return cmd
}

func runTopK[T any](cmd *cobra.Command, e *env, kind valueKind[T], k int, files []string) error {
	selector, err := topk.NewSelector(
		k,
		kind.compare,
		topk.WithObserver(e.metrics),
		topk.WithHeapOptions(heap.WithObserver(e.metrics)),
	)
	if err != nil {
		return err
	}

	offered := 0
	if err := forEachValue(files, cmd.InOrStdin(), kind.parse, func(v T) error {
		offered++
		_, err := selector.Offer(v)
		return err
	}); err != nil {
		return err
	}

	if e.conf.Verify {
		if err := selector.Verify(); err != nil {
			return err
		}
	}

	e.logger.Infof("kept %d of %d values", selector.Len(), offered)
	return writeResult(cmd.OutOrStdout(), e.conf.Output, "topk", selector.Result())
}
