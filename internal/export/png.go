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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CurveSheetPNG rasterizes the curve sheet. Scale multiplies the cell size
// in pixels (1.0 draws at 1pt = 1px); labels use the fixed 7x13 basicfont
// face so no font files are needed.
func CurveSheetPNG(outPath string, opt SheetOptions, scale float64) error {
	opt = opt.withDefaults()
	if scale <= 0 {
		scale = 1
	}
	curves, err := resolveCurves(opt.Curves)
	if err != nil {
		return err
	}
	rows, cols := gridSize(len(curves), opt.Columns)
	pixW := int(math.Round(float64(cols) * opt.CellW * scale))
	pixH := int(math.Round(float64(rows) * opt.CellH * scale))

	img := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	for i, cu := range curves {
		col := i % cols
		row := i / cols
		x0 := float64(col) * opt.CellW * scale
		y0 := float64(row) * opt.CellH * scale
		drawPNGCell(img, cu, x0, y0, opt, scale)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}

func drawPNGCell(img *image.RGBA, cu namedCurve, x0, y0 float64, opt SheetOptions, scale float64) {
	plotX := x0 + cellPad*scale
	plotY := y0 + (cellPad+labelSize)*scale
	plotW := (opt.CellW - 2*cellPad) * scale
	plotH := (opt.CellH - 2*cellPad - labelSize) * scale

	frame := color.RGBA{180, 180, 180, 255}
	faint := color.RGBA{220, 220, 220, 255}
	black := color.RGBA{0, 0, 0, 255}

	strokeRect(img, int(plotX), int(plotY), int(plotX+plotW), int(plotY+plotH), frame)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(plotX), int(y0+(cellPad+labelSize)*scale)-2),
	}
	d.DrawString(cu.name)

	ys := samples(cu.fn, opt.Samples)
	lo, hi := plotRange(ys)
	for _, v := range []float64{0, 1} {
		py := int(plotY + plotH - (v-lo)/(hi-lo)*plotH)
		drawLine(img, int(plotX), py, int(plotX+plotW), py, faint)
	}

	prevX, prevY := 0, 0
	for i, y := range ys {
		px := int(plotX + float64(i)/float64(len(ys)-1)*plotW)
		py := int(plotY + plotH - (y-lo)/(hi-lo)*plotH)
		if i > 0 {
			drawLine(img, prevX, prevY, px, py, black)
		}
		prevX, prevY = px, py
	}
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}

// drawLine is a basic Bresenham segment.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetRGBA(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
