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

package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/yorkie-team/heapq/pkg/errors"
)

// commandLogLevel returns the level a failed command is logged at.
// Caller errors are expected and kept quiet; broken invariants are not.
func commandLogLevel(err error) zapcore.Level {
	if err == nil {
		return zapcore.DebugLevel
	}

	switch errors.StatusOf(err) {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeNotFound:
		return zapcore.InfoLevel
	case errors.ErrCodeResourceExhausted, errors.ErrCodeFailedPrecondition:
		return zapcore.WarnLevel
	case errors.ErrCodeInternal:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// LogCommand logs the outcome of a command at a level chosen by the status
// of err. Metadata attached to err is logged as fields.
func LogCommand(logger Logger, command string, duration time.Duration, err error) {
	if err == nil {
		logger.Debugf("CMD : %q %s", command, duration)
		return
	}

	info := errors.ErrorInfoOf(err)
	args := []interface{}{"status", info.StatusString}
	if info.Code != "" {
		args = append(args, "code", info.Code)
	}
	for k, v := range info.Metadata {
		args = append(args, k, v)
	}

	msg := fmt.Sprintf("CMD : %q %s => %q", command, duration, err)
	switch commandLogLevel(err) {
	case zapcore.InfoLevel:
		logger.Infow(msg, args...)
	case zapcore.ErrorLevel:
		logger.Errorw(msg, args...)
	default:
		logger.Warnw(msg, args...)
	}
}
