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
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yorkie-team/heapq/internal/version"
)

// versionInfo is the build information of heapq.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of heapq",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version.Version,
				GoVersion: runtime.Version(),
				BuildDate: version.BuildDate,
			}

			switch c.conf.Output {
			case "json":
				marshalled, err := json.MarshalIndent(&info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal JSON: %w", err)
				}
				cmd.Println(string(marshalled))
			case "yaml":
				marshalled, err := yaml.Marshal(&info)
				if err != nil {
					return fmt.Errorf("marshal YAML: %w", err)
				}
				cmd.Print(string(marshalled))
			default:
				cmd.Printf("heapq: %s\n", info.Version)
				cmd.Printf("Go: %s\n", info.GoVersion)
				cmd.Printf("Build Date: %s\n", info.BuildDate)
			}

			return nil
		},
	}
}
