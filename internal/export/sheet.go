/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders reference sheets of the easing catalog: a grid of
// labelled curve plots, one cell per curve, as PDF, SVG or PNG.
package export

import (
	"fmt"

	"motionkit/internal/ease"
)

// SheetOptions controls curve sheet layout. Zero values get defaults.
type SheetOptions struct {
	// Curves are registry names; empty exports the whole catalog.
	Curves []string
	// Columns in the grid (default 4).
	Columns int
	// Samples per curve polyline (default 64).
	Samples int
	// Cell size in points/pixels (defaults 160×120).
	CellW, CellH float64
}

func (o SheetOptions) withDefaults() SheetOptions {
	if len(o.Curves) == 0 {
		o.Curves = ease.Names()
	}
	if o.Columns <= 0 {
		o.Columns = 4
	}
	if o.Samples < 2 {
		o.Samples = 64
	}
	if o.CellW <= 0 {
		o.CellW = 160
	}
	if o.CellH <= 0 {
		o.CellH = 120
	}
	return o
}

type namedCurve struct {
	name string
	fn   ease.Func
}

func resolveCurves(names []string) ([]namedCurve, error) {
	out := make([]namedCurve, 0, len(names))
	for _, n := range names {
		f, ok := ease.ByName(n)
		if !ok {
			return nil, fmt.Errorf("unknown easing curve %q", n)
		}
		out = append(out, namedCurve{name: n, fn: f})
	}
	return out, nil
}

// samples evaluates the normalized curve (b=0, c=1, d=1) at n points.
func samples(f ease.Func, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(float64(i)/float64(n-1), 0, 1, 1)
	}
	return out
}

// plotRange returns the y range to plot: at least [0,1], widened to cover
// overshooting curves (elastic, back) with a small margin.
func plotRange(ys []float64) (lo, hi float64) {
	lo, hi = 0, 1
	for _, y := range ys {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// gridSize returns rows and columns for n cells.
func gridSize(n, columns int) (rows, cols int) {
	cols = columns
	if n < cols {
		cols = n
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}
