// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the geomkernel CLI's TOML-tagged configuration, following
// the teacher's struct-tag-plus-go-toml/v2 idiom.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
	// ReplayScript is the path to a JSON-encoded []event.Event script
	// the run subcommand replays against a fresh Drawing.
	ReplayScript string `toml:"replay_script"`
	// SketchPath is the persisted history document the export
	// subcommand loads before rendering SVG.
	SketchPath string `toml:"sketch_path"`
}

// defaultConfig is used when no --config flag is given.
func defaultConfig() Config {
	return Config{LogLevel: "info"}
}

// loadConfig reads and decodes a TOML config file at path.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("geomkernel: reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("geomkernel: parsing config %s: %w", path, err)
	}
	return cfg, nil
}
