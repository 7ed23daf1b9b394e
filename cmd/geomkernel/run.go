// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"geomkernel.dev/kernel/event"
	"geomkernel.dev/kernel/kernel"
	"geomkernel.dev/kernel/object"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "replay a scripted event file against a fresh Drawing and print the final object count",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := configOrDefault()
	setLogLevel(cfg.LogLevel)

	if cfg.ReplayScript == "" {
		return fmt.Errorf("geomkernel run: no replay_script configured")
	}
	b, err := os.ReadFile(cfg.ReplayScript)
	if err != nil {
		return fmt.Errorf("geomkernel run: %w", err)
	}
	var events []event.Event
	if err := json.Unmarshal(b, &events); err != nil {
		return fmt.Errorf("geomkernel run: parsing replay script: %w", err)
	}

	d := kernel.NewDrawing()
	for _, e := range events {
		d.SendEvent(e)
	}

	ds := d.DataState()
	counts := map[string]int{}
	for _, obj := range ds.Objects {
		counts[objectKindName(obj)]++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "objects=%d constraints=%d %v\n", len(ds.Objects), len(ds.Constraints), counts)
	return nil
}

func objectKindName(obj object.Object) string {
	switch obj.(type) {
	case *object.Node:
		return "node"
	case *object.FixedNode:
		return "fixedNode"
	case *object.Line:
		return "line"
	case *object.Path:
		return "path"
	case *object.Text:
		return "text"
	default:
		return "unknown"
	}
}
