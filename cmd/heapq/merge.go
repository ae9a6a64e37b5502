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
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yorkie-team/heapq/pkg/errors"
	"github.com/yorkie-team/heapq/pkg/heap"
	"github.com/yorkie-team/heapq/pkg/kmerge"
)

func newMergeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge ascending files into one ascending sequence",
		Long: `Merge files whose values are each in ascending order into one ascending
sequence. Each file is one sorted list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.run("merge", func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			if e.conf.IsNumeric() {
				return runMerge(ctx, cmd, e, intKind, args)
			}
			return runMerge(ctx, cmd, e, stringKind, args)
		}),
	}
}

func runMerge[T any](ctx context.Context, cmd *cobra.Command, e *env, kind valueKind[T], files []string) error {
	lists, err := readLists(ctx, files, kind.parse, e.conf.MaxInputValues, e.conf.ReadConcurrency)
	if err != nil {
		return err
	}

	merged, err := kmerge.Merge(
		lists,
		kind.compare,
		kmerge.WithObserver(e.metrics),
		kmerge.WithHeapOptions(heap.WithObserver(e.metrics)),
	)
	if err != nil {
		return withSourceFile(err, files)
	}

	if e.conf.Verify && !slices.IsSortedFunc(merged, kind.compare) {
		return errors.Internal("merged output is not sorted").WithCode("ErrUnsortedOutput")
	}

	e.logger.Infof("merged %d values from %d files", len(merged), len(files))
	return writeResult(cmd.OutOrStdout(), e.conf.Output, "merge", merged)
}

// withSourceFile names the file behind the source index that a merge
// error refers to.
func withSourceFile(err error, files []string) error {
	source, convErr := strconv.Atoi(errors.Metadata(err)["source"])
	if convErr != nil || source < 0 || source >= len(files) {
		return err
	}
	return errors.WithMetadata(err, map[string]string{
		"file": files[source],
	})
}
