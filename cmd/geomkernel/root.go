// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "geomkernel",
	Short: "geomkernel drives the 2D parametric sketch kernel from the command line",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.AddCommand(runCmd, exportCmd)
}

// configOrDefault loads configPath if set, otherwise returns the default
// config, logging (not failing) on a missing/malformed file.
func configOrDefault() Config {
	if configPath == "" {
		return defaultConfig()
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		slog.Error(err.Error())
		return defaultConfig()
	}
	return cfg
}

func setLogLevel(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(l)
}
