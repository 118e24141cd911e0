/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "math"

// Decomposed holds the independent components of an affine matrix.
// Angle, SkewX and SkewY are in degrees. Compose(Decompose(m)) reproduces
// m to floating-point tolerance for any invertible affine map.
type Decomposed struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
	SkewX      float64
	SkewY      float64
	Angle      float64
	FlipX      bool
	FlipY      bool
}

// DimensionsOptions selects the non-rotational components used to build a
// dimensions matrix. Zero scale values are treated as 1 so a partially
// filled struct behaves like "no scaling on that axis".
type DimensionsOptions struct {
	ScaleX, ScaleY float64
	SkewX, SkewY   float64 // degrees
	FlipX, FlipY   bool
}

// Decompose extracts translation, rotation, scale and x-skew from m.
// The factorization is a QR-style one: rotation first, then scale, then a
// shear along x. SkewY is always 0 and flips are never detected; a mirrored
// matrix comes out as a negative ScaleY instead.
func Decompose(m Matrix) Decomposed {
	angle := math.Atan2(m.B, m.A)
	denom := m.A*m.A + m.B*m.B
	scaleX := math.Sqrt(denom)
	scaleY := (m.A*m.D - m.C*m.B) / scaleX
	skewX := math.Atan2(m.A*m.C+m.B*m.D, denom)
	return Decomposed{
		TranslateX: m.E,
		TranslateY: m.F,
		ScaleX:     scaleX,
		ScaleY:     scaleY,
		SkewX:      Degrees(skewX),
		SkewY:      0,
		Angle:      Degrees(angle),
	}
}

// Compose rebuilds the matrix from its components: translate, then rotate,
// then the scale/skew dimensions matrix.
func Compose(d Decomposed) Matrix {
	m := Translate(d.TranslateX, d.TranslateY)
	if d.Angle != 0 {
		m = m.Mul(Rotate(Radians(d.Angle)))
	}
	return m.Mul(DimensionsMatrix(DimensionsOptions{
		ScaleX: d.ScaleX,
		ScaleY: d.ScaleY,
		SkewX:  d.SkewX,
		SkewY:  d.SkewY,
		FlipX:  d.FlipX,
		FlipY:  d.FlipY,
	}))
}

// DimensionsMatrix builds the scale/skew/flip-only matrix used for sizing
// computations. Rotation is deliberately excluded: control rendering wants
// the dimensions of the box before it is rotated.
func DimensionsMatrix(o DimensionsOptions) Matrix {
	sx := o.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := o.ScaleY
	if sy == 0 {
		sy = 1
	}
	if o.FlipX {
		sx = -sx
	}
	if o.FlipY {
		sy = -sy
	}
	m := Scale(sx, sy)
	if o.SkewX != 0 {
		m = m.MulLinear(Matrix{A: 1, C: math.Tan(Radians(o.SkewX)), D: 1})
	}
	if o.SkewY != 0 {
		m = (Matrix{A: 1, B: math.Tan(Radians(o.SkewY)), D: 1}).MulLinear(m)
	}
	return m
}
