// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geomkernel.dev/kernel/kernel"
	"geomkernel.dev/kernel/mathtext"
	"geomkernel.dev/kernel/persist"
	"geomkernel.dev/kernel/svgexport"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "load a saved sketch and write its SVG export to stdout",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := configOrDefault()
	setLogLevel(cfg.LogLevel)

	if cfg.SketchPath == "" {
		return fmt.Errorf("geomkernel export: no sketch_path configured")
	}
	f, err := os.Open(cfg.SketchPath)
	if err != nil {
		return fmt.Errorf("geomkernel export: %w", err)
	}
	defer f.Close()

	tree, err := persist.Load(f)
	if err != nil {
		return fmt.Errorf("geomkernel export: %w", err)
	}

	d := kernel.NewDrawing()
	d.Load(tree)

	return svgexport.Render(cmd.OutOrStdout(), d.DataState().Objects, mathtext.TeXRenderer{})
}
