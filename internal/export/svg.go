/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CurveSheetSVG writes the curve sheet as a hand-built SVG document. The
// markup stays deliberately simple: one group per cell with a frame, a
// label and a polyline.
func CurveSheetSVG(outPath string, opt SheetOptions) error {
	opt = opt.withDefaults()
	curves, err := resolveCurves(opt.Curves)
	if err != nil {
		return err
	}
	rows, cols := gridSize(len(curves), opt.Columns)
	pageW := float64(cols) * opt.CellW
	pageH := float64(rows) * opt.CellH

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		pageW, pageH, pageW, pageH)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	for i, cu := range curves {
		col := i % cols
		row := i / cols
		x0 := float64(col) * opt.CellW
		y0 := float64(row) * opt.CellH
		writeSVGCell(&b, cu, x0, y0, opt)
	}
	b.WriteString("</svg>\n")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func writeSVGCell(b *strings.Builder, cu namedCurve, x0, y0 float64, opt SheetOptions) {
	plotX := x0 + cellPad
	plotY := y0 + cellPad + labelSize
	plotW := opt.CellW - 2*cellPad
	plotH := opt.CellH - 2*cellPad - labelSize

	fmt.Fprintf(b, `<g>`+"\n")
	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#b4b4b4" stroke-width="0.4"/>`+"\n",
		plotX, plotY, plotW, plotH)
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-family="Helvetica,sans-serif" font-size="%.0f">%s</text>`+"\n",
		plotX, y0+cellPad+labelSize-2, labelSize, cu.name)

	ys := samples(cu.fn, opt.Samples)
	lo, hi := plotRange(ys)
	for _, v := range []float64{0, 1} {
		py := plotY + plotH - (v-lo)/(hi-lo)*plotH
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dcdcdc" stroke-width="0.4"/>`+"\n",
			plotX, py, plotX+plotW, py)
	}

	pts := make([]string, len(ys))
	for i, y := range ys {
		px := plotX + float64(i)/float64(len(ys)-1)*plotW
		py := plotY + plotH - (y-lo)/(hi-lo)*plotH
		pts[i] = fmt.Sprintf("%.2f,%.2f", px, py)
	}
	fmt.Fprintf(b, `<polyline points="%s" fill="none" stroke="black" stroke-width="0.8"/>`+"\n", strings.Join(pts, " "))
	b.WriteString("</g>\n")
}
