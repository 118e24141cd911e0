/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom provides the 2D numeric primitives of the toolkit: points,
// affine matrices and the decompose/compose pair used by the object
// transform utilities. Everything here is a pure value computation; inputs
// are assumed to be finite numbers and malformed values propagate as NaN
// through the arithmetic rather than failing fast.
package geom

import "math"

// Point is an immutable 2D coordinate. Operations return new values.
type Point struct{ X, Y float64 }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s in both axes.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Rotate returns p rotated counter-clockwise around the origin by rad radians.
func (p Point) Rotate(rad float64) Point {
	sin, cos := math.Sincos(rad)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Matrix is a 2D affine transform:
// | A C E |
// | B D F |
// | 0 0 1 |
// i.e. the six coefficients [a b c d e f] with (A,B,C,D) carrying
// scale/skew/rotation and (E,F) the translation.
type Matrix struct{ A, B, C, D, E, F float64 }

// Identity is the neutral transform.
var Identity = Matrix{A: 1, D: 1}

// Translate returns a pure translation matrix.
func Translate(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a pure scale matrix.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, D: sy} }

// Rotate returns a counter-clockwise rotation by rad radians.
func Rotate(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Mul returns m·n, the transform that applies n first and m second.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// MulLinear is Mul restricted to the 2×2 part; translations are ignored.
// Used when stacking shear/scale factors that carry no offset.
func (m Matrix) MulLinear(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
	}
}

// Apply maps p through the transform.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVector maps p through the 2×2 part only (no translation).
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Invert returns the inverse transform. A singular matrix yields
// Inf/NaN coefficients per ordinary float division.
func (m Matrix) Invert() Matrix {
	invDet := 1 / (m.A*m.D - m.B*m.C)
	return Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}
}

// BoundingBoxFromPoints returns the min corner and the size of the
// axis-aligned box covering all pts. Size components are never negative.
func BoundingBoxFromPoints(pts []Point) (min Point, size Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	min = pts[0]
	max := pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, Point{max.X - min.X, max.Y - min.Y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
