/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// motionkit is the developer CLI for the Motion Kit numeric toolkit:
// inspect the easing catalog, sample curves, export reference sheets,
// validate preset packs and manage persisted transform snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"motionkit/internal/config"
	"motionkit/internal/crash"
	"motionkit/internal/ease"
	"motionkit/internal/export"
	applog "motionkit/internal/log"
	"motionkit/internal/object"
	"motionkit/internal/presets"
	"motionkit/internal/store"
	"motionkit/internal/version"
)

const usage = `motionkit <command> [flags]

Commands:
  version                     print the toolkit version
  curves                      list the easing curve catalog
  sample                      sample an easing curve as CSV
  sheet                       export a curve reference sheet (pdf/svg/png)
  preset validate <pack.json> validate a preset pack
  preset list <pack.json>     list presets in a pack
  snapshot save|list|prune    manage persisted transform snapshots
`

func main() {
	defer crash.Recover("")

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Defaults()
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "curves":
		for _, n := range ease.Names() {
			fmt.Println(n)
		}
	case "sample":
		runSample(os.Args[2:])
	case "sheet":
		runSheet(os.Args[2:])
	case "preset":
		runPreset(os.Args[2:])
	case "snapshot":
		runSnapshot(os.Args[2:], cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func runSample(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	curve := fs.String("curve", "easeInOutQuad", "easing curve name")
	from := fs.Float64("from", 0, "start value")
	to := fs.Float64("to", 1, "end value")
	duration := fs.Float64("duration", 1000, "duration in ms")
	steps := fs.Int("steps", 20, "number of samples")
	_ = fs.Parse(args)

	f, ok := ease.ByName(*curve)
	if !ok {
		fail(fmt.Errorf("unknown easing curve %q (try: motionkit curves)", *curve))
	}
	if *steps < 2 {
		*steps = 2
	}
	fmt.Println("t_ms,value")
	for i := 0; i < *steps; i++ {
		t := float64(i) / float64(*steps-1) * *duration
		fmt.Printf("%.3f,%.6f\n", t, f(t, *from, *to-*from, *duration))
	}
}

func runSheet(args []string) {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)
	out := fs.String("out", "curves.pdf", "output file (.pdf, .svg or .png)")
	curves := fs.String("curves", "", "comma-separated curve names (default: all)")
	columns := fs.Int("columns", 4, "grid columns")
	sampleCount := fs.Int("samples", 64, "samples per curve")
	scale := fs.Float64("scale", 2, "pixel scale (png only)")
	_ = fs.Parse(args)

	opt := export.SheetOptions{Columns: *columns, Samples: *sampleCount}
	if strings.TrimSpace(*curves) != "" {
		opt.Curves = strings.Split(*curves, ",")
	}
	var err error
	switch {
	case strings.HasSuffix(*out, ".svg"):
		err = export.CurveSheetSVG(*out, opt)
	case strings.HasSuffix(*out, ".png"):
		err = export.CurveSheetPNG(*out, opt, *scale)
	default:
		err = export.CurveSheetPDF(*out, opt)
	}
	if err != nil {
		fail(err)
	}
	fmt.Println("wrote", *out)
}

func runPreset(args []string) {
	if len(args) < 2 {
		fail(fmt.Errorf("usage: motionkit preset validate|list <pack.json>"))
	}
	switch args[0] {
	case "validate":
		if _, err := presets.Load(args[1]); err != nil {
			fail(err)
		}
		fmt.Println("ok")
	case "list":
		pack, err := presets.Load(args[1])
		if err != nil {
			fail(err)
		}
		for _, p := range pack.Presets {
			fmt.Printf("%s\t%s\t%.0fms\n", p.Name, p.Easing, p.DurationMs)
		}
	default:
		fail(fmt.Errorf("unknown preset subcommand %q", args[0]))
	}
}

func runSnapshot(args []string, cfg config.AppConfig) {
	if len(args) < 1 {
		fail(fmt.Errorf("usage: motionkit snapshot save|list|prune [flags]"))
	}
	sub := args[0]
	fs := flag.NewFlagSet("snapshot "+sub, flag.ExitOnError)
	root := fs.String("root", ".", "workspace root")
	objectID := fs.String("object", "", "object id")
	scaleX := fs.Float64("scale-x", 1, "scale x (save)")
	scaleY := fs.Float64("scale-y", 1, "scale y (save)")
	skewX := fs.Float64("skew-x", 0, "skew x in degrees (save)")
	skewY := fs.Float64("skew-y", 0, "skew y in degrees (save)")
	angle := fs.Float64("angle", 0, "angle in degrees (save)")
	left := fs.Float64("left", 0, "left position (save)")
	top := fs.Float64("top", 0, "top position (save)")
	limit := fs.Int("limit", 20, "max rows (list)")
	_ = fs.Parse(args[1:])

	if strings.TrimSpace(*objectID) == "" {
		fail(fmt.Errorf("-object is required"))
	}
	st, err := store.Open(*root)
	if err != nil {
		fail(err)
	}
	defer func() { _ = st.Close() }()
	ctx := context.Background()

	switch sub {
	case "save":
		s := object.State{
			ScaleX: *scaleX, ScaleY: *scaleY,
			SkewX: *skewX, SkewY: *skewY,
			Angle: *angle, Left: *left, Top: *top,
		}
		if err := st.SaveSnapshot(ctx, *objectID, s, time.Now()); err != nil {
			fail(err)
		}
		fmt.Println("saved")
	case "list":
		snaps, err := st.List(ctx, *objectID, *limit)
		if err != nil {
			fail(err)
		}
		for _, s := range snaps {
			fmt.Printf("%s\tscale=(%.3f,%.3f) skew=(%.3f,%.3f) angle=%.3f pos=(%.3f,%.3f)\n",
				s.TS.Format(time.RFC3339), s.State.ScaleX, s.State.ScaleY,
				s.State.SkewX, s.State.SkewY, s.State.Angle, s.State.Left, s.State.Top)
		}
	case "prune":
		if err := st.Prune(ctx, *objectID, cfg.Store.KeepPerObject); err != nil {
			fail(err)
		}
		fmt.Println("pruned")
	default:
		fail(fmt.Errorf("unknown snapshot subcommand %q", sub))
	}
}
