/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package presets loads named animation presets from JSON pack files.
// A preset couples an easing curve name with a duration (and optionally a
// back-easing overshoot), so tools can refer to "fadeIn" instead of
// repeating curve parameters. Packs are validated against a JSON schema
// before use.
package presets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"motionkit/internal/ease"
	applog "motionkit/internal/log"
)

//go:embed preset.schema.json
var schemaJSON []byte

// Preset is one named animation configuration.
type Preset struct {
	Name       string  `json:"name"`
	Easing     string  `json:"easing"`
	DurationMs float64 `json:"durationMs"`
	// Overshoot applies to the back-easing family only; 0 means the
	// curve's built-in default.
	Overshoot float64 `json:"overshoot,omitempty"`
}

// Func resolves the preset's easing curve from the registry.
func (p Preset) Func() (ease.Func, bool) {
	return ease.ByName(p.Easing)
}

// Pack is a named collection of presets.
type Pack struct {
	Name    string   `json:"name"`
	Presets []Preset `json:"presets"`
}

// Get returns the preset registered under name.
func (p *Pack) Get(name string) (Preset, bool) {
	for _, pr := range p.Presets {
		if pr.Name == name {
			return pr, true
		}
	}
	return Preset{}, false
}

// Load reads a preset pack from path, validates it against the pack schema
// and checks that every easing name resolves against the curve registry.
func Load(path string) (*Pack, error) {
	l := applog.WithOperation(applog.WithComponent("presets"), "load").With(slog.String("path", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	if err := Validate(data); err != nil {
		l.Error("pack rejected", slog.Any("err", err))
		return nil, err
	}
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	var unknown []string
	for _, pr := range pack.Presets {
		if _, ok := ease.ByName(pr.Easing); !ok {
			unknown = append(unknown, fmt.Sprintf("%s (preset %q)", pr.Easing, pr.Name))
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown easing curves: %s", strings.Join(unknown, ", "))
	}
	l.Info("pack loaded", slog.String("pack", pack.Name), slog.Int("presets", len(pack.Presets)))
	return &pack, nil
}

// Validate checks raw pack JSON against the embedded schema. The returned
// error lists every violation with its JSON path.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if !result.Valid() {
		var b strings.Builder
		b.WriteString("pack does not conform to schema:")
		for _, e := range result.Errors() {
			b.WriteString("\n  ")
			b.WriteString(e.String())
		}
		return fmt.Errorf("%s", b.String())
	}
	return nil
}
