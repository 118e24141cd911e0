/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package log

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsoleHandlerFormat(t *testing.T) {
	var sb strings.Builder
	h := &consoleHandler{level: slog.LevelInfo, w: &sb}
	l := slog.New(h).With(slog.String("component", "geom"))

	l.Info("transform applied", slog.Int("objects", 3), slog.Bool("ok", true))
	out := sb.String()
	for _, want := range []string{" INF ", "transform applied", "component=geom", "objects=3", "ok=true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("console line missing %q: %s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") || strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", out)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var sb strings.Builder
	h := &consoleHandler{level: slog.LevelInfo, w: &sb}
	l := slog.New(h).WithGroup("store")

	l.Warn("prune skipped", slog.String("object", "obj-1"))
	if out := sb.String(); !strings.Contains(out, "store.object=obj-1") {
		t.Fatalf("group prefix missing: %s", out)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	h := &consoleHandler{level: slog.LevelWarn}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info enabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error disabled at warn level")
	}
}

func TestFanoutDuplicates(t *testing.T) {
	var a, b strings.Builder
	f := &fanout{hs: []slog.Handler{
		&consoleHandler{level: slog.LevelInfo, w: &a},
		&consoleHandler{level: slog.LevelInfo, w: &b},
	}}
	slog.New(f).Info("hello")
	if !strings.Contains(a.String(), "hello") || !strings.Contains(b.String(), "hello") {
		t.Fatalf("record not fanned out: a=%q b=%q", a.String(), b.String())
	}
}

func TestInitAndHelpers(t *testing.T) {
	Init(Options{Level: "debug", Format: "console"})
	l := WithComponent("test")
	if l == nil {
		t.Fatalf("WithComponent returned nil")
	}
	if WithOperation(l, "op") == nil {
		t.Fatalf("WithOperation returned nil")
	}
	if L() == nil {
		t.Fatalf("L returned nil after Init")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MK_LOG_LEVEL", "warn")
	t.Setenv("MK_LOG_FORMAT", "json")
	t.Setenv("MK_LOG_SOURCE", "true")
	t.Setenv("MK_LOG_FILE", "/tmp/mk.log")
	opts := FromEnv()
	if opts.Level != "warn" || opts.Format != "json" || !opts.AddSource || opts.File != "/tmp/mk.log" {
		t.Fatalf("FromEnv: %+v", opts)
	}
}
