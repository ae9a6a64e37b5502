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

// Package config provides the configuration of the heapq command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yorkie-team/heapq/internal/validation"
)

// Below are the default values of the heapq config.
const (
	DefaultLogLevel        = "warn"
	DefaultOutput          = "plain"
	DefaultK               = 10
	DefaultReadConcurrency = 4
	DefaultMaxInputValues  = 1 << 20
	DefaultNumeric         = true
)

// Config is the configuration of the heapq command.
type Config struct {
	// LogLevel is the level of the logs written to stderr.
	LogLevel string `yaml:"LogLevel" validate:"loglevel"`

	// Output is the format results are written in.
	Output string `yaml:"Output" validate:"output"`

	// DefaultK is the number of values topk keeps when -k is not given.
	DefaultK int `yaml:"DefaultK" validate:"gt=0"`

	// ReadConcurrency is the number of input files read at the same time.
	ReadConcurrency int `yaml:"ReadConcurrency" validate:"gt=0,lte=64"`

	// MaxInputValues is the capacity of the heap used by sort, and the
	// most values a single input may hold.
	MaxInputValues int `yaml:"MaxInputValues" validate:"gt=0"`

	// Numeric is whether values are parsed as integers. Otherwise values
	// are compared as strings.
	Numeric *bool `yaml:"Numeric"`

	// Verify is whether heap invariants are checked after each command.
	Verify bool `yaml:"Verify"`
}

// NewConfig returns a Config struct that contains reasonable defaults.
func NewConfig() *Config {
	numeric := DefaultNumeric
	return &Config{
		LogLevel:        DefaultLogLevel,
		Output:          DefaultOutput,
		DefaultK:        DefaultK,
		ReadConcurrency: DefaultReadConcurrency,
		MaxInputValues:  DefaultMaxInputValues,
		Numeric:         &numeric,
	}
}

// NewConfigFromFile returns a Config struct for the given conf file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// IsNumeric returns whether values are parsed as integers.
func (c *Config) IsNumeric() bool {
	return c.Numeric == nil || *c.Numeric
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.DefaultK == 0 {
		c.DefaultK = DefaultK
	}
	if c.ReadConcurrency == 0 {
		c.ReadConcurrency = DefaultReadConcurrency
	}
	if c.MaxInputValues == 0 {
		c.MaxInputValues = DefaultMaxInputValues
	}
	if c.Numeric == nil {
		numeric := DefaultNumeric
		c.Numeric = &numeric
	}
}
