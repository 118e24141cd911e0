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

	"github.com/jung-kurt/gofpdf"
)

// cell margins inside each plot, in points
const (
	cellPad   = 10.0
	labelSize = 8.0
)

// CurveSheetPDF writes a one-page PDF with the selected easing curves drawn
// as vector polylines. Built-in Helvetica keeps the text vector without
// embedding.
func CurveSheetPDF(outPath string, opt SheetOptions) error {
	opt = opt.withDefaults()
	curves, err := resolveCurves(opt.Curves)
	if err != nil {
		return err
	}
	rows, cols := gridSize(len(curves), opt.Columns)
	pageW := float64(cols) * opt.CellW
	pageH := float64(rows) * opt.CellH

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
		OrientationStr: "",
	})
	pdf.SetTitle("Motion Kit easing curves", false)
	pdf.SetFont("Helvetica", "", labelSize)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: pageW, Ht: pageH})

	for i, cu := range curves {
		col := i % cols
		row := i / cols
		x0 := float64(col) * opt.CellW
		y0 := float64(row) * opt.CellH
		drawPDFCell(pdf, cu, x0, y0, opt)
	}

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawPDFCell(pdf *gofpdf.Fpdf, cu namedCurve, x0, y0 float64, opt SheetOptions) {
	plotX := x0 + cellPad
	plotY := y0 + cellPad + labelSize
	plotW := opt.CellW - 2*cellPad
	plotH := opt.CellH - 2*cellPad - labelSize

	// frame and label
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.4)
	pdf.Rect(plotX, plotY, plotW, plotH, "D")
	pdf.Text(plotX, y0+cellPad+labelSize-2, cu.name)

	ys := samples(cu.fn, opt.Samples)
	lo, hi := plotRange(ys)

	// baseline markers at y=0 and y=1
	pdf.SetDrawColor(220, 220, 220)
	for _, v := range []float64{0, 1} {
		py := plotY + plotH - (v-lo)/(hi-lo)*plotH
		pdf.Line(plotX, py, plotX+plotW, py)
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.8)
	prevX, prevY := 0.0, 0.0
	for i, y := range ys {
		px := plotX + float64(i)/float64(len(ys)-1)*plotW
		py := plotY + plotH - (y-lo)/(hi-lo)*plotH
		if i > 0 {
			pdf.Line(prevX, prevY, px, py)
		}
		prevX, prevY = px, py
	}
}
