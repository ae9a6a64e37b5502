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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode_String(t *testing.T) {
	tests := []struct {
		name string
		code StatusCode
		want string
	}{
		{"InvalidArgument", ErrCodeInvalidArgument, "invalid_argument"},
		{"NotFound", ErrCodeNotFound, "not_found"},
		{"ResourceExhausted", ErrCodeResourceExhausted, "resource_exhausted"},
		{"FailedPrecondition", ErrCodeFailedPrecondition, "failed_precondition"},
		{"Internal", ErrCodeInternal, "internal"},
		{"Unknown", StatusCode(999), "code_999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestErrorCategoryChecking(t *testing.T) {
	t.Run("ClientErrors", func(t *testing.T) {
		for _, err := range []StatusError{
			InvalidArgument("test"),
			NotFound("test"),
			ResourceExhausted("test"),
			FailedPrecond("test"),
		} {
			assert.True(t, IsClientError(err), "Expected %v to be a client error", err)
		}
	})

	t.Run("InternalErrors", func(t *testing.T) {
		assert.False(t, IsClientError(Internal("test")))
		assert.False(t, IsClientError(errors.New("plain")))
	})
}

func TestStatusOf(t *testing.T) {
	t.Run("StatusError", func(t *testing.T) {
		assert.Equal(t, ErrCodeResourceExhausted, StatusOf(ResourceExhausted("full")))
	})

	t.Run("WrappedStatusError", func(t *testing.T) {
		wrapped := fmt.Errorf("insert: %w", FailedPrecond("empty"))
		assert.Equal(t, ErrCodeFailedPrecondition, StatusOf(wrapped))
		assert.True(t, IsStatus(wrapped, ErrCodeFailedPrecondition))
		assert.False(t, IsStatus(wrapped, ErrCodeInternal))
	})

	t.Run("StandardError", func(t *testing.T) {
		assert.Equal(t, StatusCode(0), StatusOf(errors.New("standard error")))
	})

	t.Run("NilError", func(t *testing.T) {
		assert.Equal(t, StatusCode(0), StatusOf(nil))
		assert.False(t, IsStatus(nil, ErrCodeNotFound))
	})
}

func TestSentinelErrors(t *testing.T) {
	errFull := ResourceExhausted("heap is full").WithCode("ErrHeapFull")

	wrapped := fmt.Errorf("offer value: %w", errFull)
	assert.ErrorIs(t, wrapped, errFull)
	assert.NotErrorIs(t, wrapped, ResourceExhausted("other"))

	var statusErr StatusError
	assert.True(t, errors.As(wrapped, &statusErr))
	assert.Equal(t, "ErrHeapFull", statusErr.Code())
	assert.Equal(t, "heap is full", statusErr.Error())
}

func TestErrorInfoOf(t *testing.T) {
	t.Run("StatusError", func(t *testing.T) {
		err := WithMetadata(
			InvalidArgument("parse value").WithCode("ErrInvalidValue"),
			map[string]string{"file": "a.txt", "line": "3"},
		)
		info := ErrorInfoOf(err)

		assert.Equal(t, ErrCodeInvalidArgument, info.Status)
		assert.Equal(t, "ErrInvalidValue", info.Code)
		assert.Equal(t, "parse value", info.Message)
		assert.True(t, info.IsClient)
		assert.Equal(t, "invalid_argument", info.StatusString)
		assert.Equal(t, "a.txt", info.Metadata["file"])
	})

	t.Run("StandardError", func(t *testing.T) {
		info := ErrorInfoOf(errors.New("standard error"))

		assert.Equal(t, StatusCode(0), info.Status)
		assert.Equal(t, "standard error", info.Message)
		assert.False(t, info.IsClient)
		assert.Equal(t, "code_0", info.StatusString)
		assert.Nil(t, info.Metadata)
	})

	t.Run("NilError", func(t *testing.T) {
		assert.Equal(t, ErrorInfo{}, ErrorInfoOf(nil))
	})
}

func TestWithMetadata(t *testing.T) {
	t.Run("WithMetadata adds metadata to error", func(t *testing.T) {
		errWithMeta := WithMetadata(NotFound("input not found"), map[string]string{
			"file": "lists/a.txt",
		})

		assert.Equal(t, ErrCodeNotFound, StatusOf(errWithMeta))
		assert.Equal(t, "lists/a.txt", Metadata(errWithMeta)["file"])
	})

	t.Run("WithMetadata on nil error returns nil", func(t *testing.T) {
		assert.Nil(t, WithMetadata(nil, map[string]string{"key": "value"}))
	})

	t.Run("WithMetadata with empty metadata returns original error", func(t *testing.T) {
		baseErr := Internal("internal error")
		assert.Equal(t, baseErr, WithMetadata(baseErr, nil))
		assert.Equal(t, baseErr, WithMetadata(baseErr, map[string]string{}))
	})

	t.Run("Multiple WithMetadata calls merge metadata", func(t *testing.T) {
		err1 := WithMetadata(InvalidArgument("bad line"), map[string]string{"line": "7"})
		err2 := WithMetadata(err1, map[string]string{"file": "b.txt"})

		metadata := Metadata(err2)
		assert.Equal(t, "7", metadata["line"])
		assert.Equal(t, "b.txt", metadata["file"])
		assert.Equal(t, ErrCodeInvalidArgument, StatusOf(err2))
	})

	t.Run("Metadata is copied", func(t *testing.T) {
		err := WithMetadata(Internal("x"), map[string]string{"k": "v"})
		Metadata(err)["k"] = "changed"
		assert.Equal(t, "v", Metadata(err)["k"])
	})
}
