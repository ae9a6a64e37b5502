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
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/yorkie-team/heapq/internal/logging"
	"github.com/yorkie-team/heapq/pkg/errors"
)

const (
	stdinName     = "<stdin>"
	maxLineLength = 1 << 20
)

var (
	// ErrNoInput is returned when neither files nor piped stdin are given.
	ErrNoInput = errors.InvalidArgument("no input: pass files or pipe values on stdin").WithCode("ErrNoInput")

	// ErrInvalidValue is returned when a line cannot be parsed as a value.
	ErrInvalidValue = errors.InvalidArgument("invalid value").WithCode("ErrInvalidValue")

	// ErrTooManyValues is returned when an input holds more values than allowed.
	ErrTooManyValues = errors.ResourceExhausted("too many input values").WithCode("ErrTooManyValues")
)

// parseFunc parses one trimmed, non-blank line.
type parseFunc[T any] func(line string) (T, error)

// valueKind binds the parser and the comparator of one value type.
type valueKind[T any] struct {
	parse   parseFunc[T]
	compare func(a, b T) int
}

var (
	intKind = valueKind[int64]{
		parse: func(line string) (int64, error) {
			return strconv.ParseInt(line, 10, 64)
		},
		compare: cmp.Compare[int64],
	}
	stringKind = valueKind[string]{
		parse: func(line string) (string, error) {
			return line, nil
		},
		compare: strings.Compare,
	}
)

// input is a named source of line-delimited values.
type input struct {
	name   string
	reader io.Reader
	closer io.Closer
}

func (in input) Close() {
	if in.closer != nil {
		_ = in.closer.Close()
	}
}

// openInput opens the file at path.
func openInput(path string) (input, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return input{}, errors.WithMetadata(
				errors.NotFound(fmt.Sprintf("input %s not found", path)).WithCode("ErrInputNotFound"),
				map[string]string{"file": path},
			)
		}
		return input{}, fmt.Errorf("open input: %w", err)
	}
	return input{name: path, reader: file, closer: file}, nil
}

// stdinInput returns stdin as an input, unless it is an interactive
// terminal, in which case nothing is being piped in.
func stdinInput(stdin io.Reader) (input, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return input{}, ErrNoInput
	}
	return input{name: stdinName, reader: stdin}, nil
}

// scanValues calls fn for each value of in, in order. Blank lines are
// skipped.
func scanValues[T any](in input, parse parseFunc[T], fn func(T) error) error {
	scanner := bufio.NewScanner(in.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := parse(line)
		if err != nil {
			return errors.WithMetadata(ErrInvalidValue, map[string]string{
				"file":   in.name,
				"line":   strconv.Itoa(lineNo),
				"value":  line,
				"reason": err.Error(),
			})
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", in.name, err)
	}

	return nil
}

// forEachValue calls fn for every value of the given files in order, or
// of stdin when no file is given.
func forEachValue[T any](files []string, stdin io.Reader, parse parseFunc[T], fn func(T) error) error {
	if len(files) == 0 {
		in, err := stdinInput(stdin)
		if err != nil {
			return err
		}
		return scanValues(in, parse, fn)
	}

	for _, path := range files {
		in, err := openInput(path)
		if err != nil {
			return err
		}
		err = scanValues(in, parse, fn)
		in.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// readValues reads up to limit values of in.
func readValues[T any](in input, parse parseFunc[T], limit int) ([]T, error) {
	var values []T
	err := scanValues(in, parse, func(v T) error {
		if len(values) >= limit {
			return errors.WithMetadata(ErrTooManyValues, map[string]string{
				"file":  in.name,
				"limit": strconv.Itoa(limit),
			})
		}
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// readLists reads every file into its own list. Files are read
// concurrently, at most concurrency at a time.
func readLists[T any](
	ctx context.Context,
	files []string,
	parse parseFunc[T],
	limit int,
	concurrency int,
) ([][]T, error) {
	lists := make([][]T, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			in, err := openInput(path)
			if err != nil {
				return err
			}
			defer in.Close()

			values, err := readValues(in, parse, limit)
			if err != nil {
				return err
			}
			lists[i] = values

			logging.From(ctx).Debugf("read %d values from %s", len(values), path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}
