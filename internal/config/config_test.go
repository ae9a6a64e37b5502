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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorkie-team/heapq/internal/config"
)

func TestConfig(t *testing.T) {
	t.Run("default config test", func(t *testing.T) {
		conf := config.NewConfig()
		assert.NoError(t, conf.Validate())
		assert.True(t, conf.IsNumeric())
		assert.Equal(t, config.DefaultK, conf.DefaultK)
	})

	t.Run("validate test", func(t *testing.T) {
		conf := config.NewConfig()
		conf.DefaultK = 0
		assert.Error(t, conf.Validate())

		conf = config.NewConfig()
		conf.ReadConcurrency = 100
		assert.Error(t, conf.Validate())

		conf = config.NewConfig()
		conf.Output = "xml"
		assert.Error(t, conf.Validate())

		conf = config.NewConfig()
		conf.LogLevel = "trace"
		assert.Error(t, conf.Validate())
	})

	t.Run("read config file test", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "heapq.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"Output: json\nDefaultK: 3\nNumeric: false\n",
		), 0600))

		conf, err := config.NewConfigFromFile(path)
		require.NoError(t, err)
		assert.NoError(t, conf.Validate())

		assert.Equal(t, "json", conf.Output)
		assert.Equal(t, 3, conf.DefaultK)
		assert.False(t, conf.IsNumeric())
		assert.Equal(t, config.DefaultLogLevel, conf.LogLevel)
		assert.Equal(t, config.DefaultReadConcurrency, conf.ReadConcurrency)
		assert.Equal(t, config.DefaultMaxInputValues, conf.MaxInputValues)
	})

	t.Run("missing config file test", func(t *testing.T) {
		_, err := config.NewConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
