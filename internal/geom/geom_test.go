/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func matricesClose(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.C-b.C) <= eps &&
		math.Abs(a.D-b.D) <= eps &&
		math.Abs(a.E-b.E) <= eps &&
		math.Abs(a.F-b.F) <= eps
}

func pointsClose(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestPointOps(t *testing.T) {
	p := Point{3, 4}
	if got := p.Add(Point{1, -2}); got != (Point{4, 2}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := p.Sub(Point{1, -2}); got != (Point{2, 6}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := p.Scale(2); got != (Point{6, 8}) {
		t.Fatalf("Scale: got %v", got)
	}
	if got := (Point{1, 0}).Rotate(math.Pi / 2); !pointsClose(got, Point{0, 1}, tol) {
		t.Fatalf("Rotate 90°: got %v", got)
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// m.Mul(n) applies n first: translate after scale differs from
	// scale after translate.
	ts := Translate(10, 0).Mul(Scale(2, 2))
	st := Scale(2, 2).Mul(Translate(10, 0))
	p := Point{1, 1}
	if got := ts.Apply(p); !pointsClose(got, Point{12, 2}, tol) {
		t.Fatalf("translate∘scale: got %v", got)
	}
	if got := st.Apply(p); !pointsClose(got, Point{22, 2}, tol) {
		t.Fatalf("scale∘translate: got %v", got)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	m := Translate(3, -7).Mul(Rotate(0.3)).Mul(Scale(2, 0.5))
	if got := m.Mul(Identity); !matricesClose(got, m, tol) {
		t.Fatalf("m·I != m: %v", got)
	}
	if got := Identity.Mul(m); !matricesClose(got, m, tol) {
		t.Fatalf("I·m != m: %v", got)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(12, -5).Mul(Rotate(Radians(33))).Mul(Scale(1.5, 0.25))
	inv := m.Invert()
	if got := m.Mul(inv); !matricesClose(got, Identity, tol) {
		t.Fatalf("m·m⁻¹ != I: %v", got)
	}
	p := Point{7, -2}
	if got := inv.Apply(m.Apply(p)); !pointsClose(got, p, tol) {
		t.Fatalf("inverse does not undo: got %v, want %v", got, p)
	}
}

func TestInvertSingularPropagatesNonFinite(t *testing.T) {
	inv := Scale(0, 0).Invert()
	if !math.IsInf(inv.A, 0) && !math.IsNaN(inv.A) {
		t.Fatalf("singular inverse produced finite A: %v", inv.A)
	}
}

func TestApplyVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 200).Mul(Scale(2, 3))
	if got := m.ApplyVector(Point{1, 1}); !pointsClose(got, Point{2, 3}, tol) {
		t.Fatalf("ApplyVector: got %v", got)
	}
}

func TestBoundingBoxFromPoints(t *testing.T) {
	min, size := BoundingBoxFromPoints([]Point{{1, 5}, {-2, 3}, {4, -1}})
	if !pointsClose(min, Point{-2, -1}, tol) || !pointsClose(size, Point{6, 6}, tol) {
		t.Fatalf("got min=%v size=%v", min, size)
	}
	min, size = BoundingBoxFromPoints(nil)
	if min != (Point{}) || size != (Point{}) {
		t.Fatalf("empty input: got min=%v size=%v", min, size)
	}
}

func TestAngleConversions(t *testing.T) {
	if got := Radians(180); !(math.Abs(got-math.Pi) <= tol) {
		t.Fatalf("Radians(180) = %v", got)
	}
	if got := Degrees(math.Pi / 2); !(math.Abs(got-90) <= tol) {
		t.Fatalf("Degrees(π/2) = %v", got)
	}
}
