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
	"sort"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yorkie-team/heapq/internal/config"
	"github.com/yorkie-team/heapq/internal/logging"
	"github.com/yorkie-team/heapq/internal/metrics"
	"github.com/yorkie-team/heapq/pkg/errors"
)

// env is what a command needs while it runs.
type env struct {
	conf    *config.Config
	metrics *metrics.Metrics
	logger  logging.Logger
}

// runFunc is the body of a command that runs with an env.
type runFunc func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error

// cli holds the state shared by the commands of one root command.
type cli struct {
	v            *viper.Viper
	flagConfPath string
	flagStats    bool
	conf         *config.Config
}

// newRootCmd creates the root command and all of its subcommands.
func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix("HEAPQ")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "heapq",
		Short:         "Top-k selection, k-way merge and heap sort over line-delimited values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.flagConfPath, "config", "", "Config path")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error, panic, fatal")
	flags.StringP("output", "o", config.DefaultOutput, "Output format: plain, json, yaml, table")
	flags.Bool("numeric", config.DefaultNumeric, "Parse values as integers instead of comparing them as strings")
	flags.Bool("verify", false, "Check heap invariants before printing results")
	flags.Int("read-concurrency", config.DefaultReadConcurrency, "Number of input files read at the same time")
	flags.BoolVar(&c.flagStats, "stats", false, "Print operation statistics to stderr")

	for _, key := range []string{"log-level", "output", "numeric", "verify", "read-concurrency"} {
		if err := c.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", key, err))
		}
	}

	rootCmd.AddCommand(newTopKCmd(c))
	rootCmd.AddCommand(newMergeCmd(c))
	rootCmd.AddCommand(newSortCmd(c))
	rootCmd.AddCommand(newVersionCmd(c))

	return rootCmd
}

// load builds the configuration from the config file, then applies the
// environment variables and flags that were set on top of it.
func (c *cli) load() error {
	conf := config.NewConfig()
	if c.flagConfPath != "" {
		parsed, err := config.NewConfigFromFile(c.flagConfPath)
		if err != nil {
			return err
		}
		conf = parsed
	}

	if c.v.IsSet("log-level") {
		conf.LogLevel = c.v.GetString("log-level")
	}
	if c.v.IsSet("output") {
		conf.Output = c.v.GetString("output")
	}
	if c.v.IsSet("numeric") {
		numeric := c.v.GetBool("numeric")
		conf.Numeric = &numeric
	}
	if c.v.IsSet("verify") {
		conf.Verify = c.v.GetBool("verify")
	}
	if c.v.IsSet("read-concurrency") {
		conf.ReadConcurrency = c.v.GetInt("read-concurrency")
	}

	if err := conf.Validate(); err != nil {
		return err
	}
	if err := logging.SetLogLevel(conf.LogLevel); err != nil {
		return err
	}

	c.conf = conf
	return nil
}

// run wraps a command body with a per-run logger, timing, metrics and
// error logging.
func (c *cli) run(name string, fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e := &env{
			conf:    c.conf,
			metrics: metrics.NewMetrics(),
			logger:  logging.New(name, logging.NewField("run", xid.New().String())),
		}
		ctx := logging.With(cmd.Context(), e.logger)

		start := time.Now()
		err := fn(ctx, cmd, e, args)
		duration := time.Since(start)

		e.metrics.ObserveCommand(name, duration)
		logging.LogCommand(e.logger, name, duration, err)

		if c.flagStats {
			if statsErr := writeStats(cmd.ErrOrStderr(), e.metrics); statsErr != nil {
				e.logger.Warnf("write stats: %v", statsErr)
			}
		}

		return err
	}
}

// Run executes CLI.
func Run() int {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", describeError(err))
		return 1
	}

	return 0
}

// describeError appends the metadata of err, such as the file and line of
// an invalid value, to its message.
func describeError(err error) string {
	meta := errors.Metadata(err)
	if len(meta) == 0 {
		return err.Error()
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+meta[k])
	}
	return fmt.Sprintf("%s (%s)", err.Error(), strings.Join(pairs, ", "))
}
