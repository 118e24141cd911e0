/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package object

import (
	"math"
	"testing"

	"motionkit/internal/geom"
)

func TestApplyTransformReproducesMatrix(t *testing.T) {
	o := New(100, 50)
	m := geom.Translate(40, -12).
		Mul(geom.Rotate(geom.Radians(28))).
		Mul(geom.DimensionsMatrix(geom.DimensionsOptions{ScaleX: 1.8, ScaleY: 0.6, SkewX: 15}))
	ApplyTransform(o, m)
	if got := o.OwnMatrix(); !matricesClose(got, m, 1e-9) {
		t.Fatalf("OwnMatrix after apply = %+v, want %+v", got, m)
	}
	// The matrix translation lands on the center, not on Left/Top.
	if got := o.CenterPoint(); !pointsClose(got, geom.Point{X: 40, Y: -12}, 1e-9) {
		t.Fatalf("center after apply = %v", got)
	}
}

func TestApplyTransformClearsFlips(t *testing.T) {
	o := New(10, 10)
	o.FlipX, o.FlipY = true, true
	ApplyTransform(o, geom.Identity)
	if o.FlipX || o.FlipY {
		t.Fatalf("flips survived apply: %+v", o.State)
	}
}

func TestRemoveThenAddRoundTrip(t *testing.T) {
	o := New(100, 50)
	o.Angle = 20
	o.ScaleX, o.ScaleY = 1.5, 0.8
	o.SkewX = 12
	o.Left, o.Top = 30, 60
	world := o.OwnMatrix()

	group := geom.Translate(200, 80).
		Mul(geom.Rotate(geom.Radians(-35))).
		Mul(geom.Scale(2, 1.25))
	RemoveTransform(o, group)
	// Inside the group the effective matrix is group⁻¹·world.
	if got := o.OwnMatrix(); !matricesClose(got, group.Invert().Mul(world), 1e-9) {
		t.Fatalf("local matrix after remove: %+v", got)
	}
	AddTransform(o, group)
	if got := o.OwnMatrix(); !matricesClose(got, world, 1e-8) {
		t.Fatalf("world matrix not restored: %+v, want %+v", got, world)
	}
}

func TestResetTransformKeepsPosition(t *testing.T) {
	o := New(100, 50)
	o.Angle = 75
	o.ScaleX, o.ScaleY = 3, 0.1
	o.SkewX, o.SkewY = 20, 5
	o.FlipX = true
	o.Left, o.Top = 44, 55

	ResetTransform(o)
	st := o.State
	if st.ScaleX != 1 || st.ScaleY != 1 || st.SkewX != 0 || st.SkewY != 0 ||
		st.Angle != 0 || st.FlipX || st.FlipY {
		t.Fatalf("reset left residue: %+v", st)
	}
	if st.Left != 44 || st.Top != 55 {
		t.Fatalf("reset moved the object: (%v,%v)", st.Left, st.Top)
	}
}

func TestSaveRestoreTransform(t *testing.T) {
	o := New(10, 10)
	o.Angle = 15
	o.Left = 9
	snap := SaveTransform(o)

	o.Angle = 99
	o.Left = -1
	if snap.Angle != 15 || snap.Left != 9 {
		t.Fatalf("snapshot aliases the object: %+v", snap)
	}
	RestoreTransform(o, snap)
	if o.Angle != 15 || o.Left != 9 {
		t.Fatalf("restore failed: %+v", o.State)
	}
}

func TestSizeAfterTransform(t *testing.T) {
	got := SizeAfterTransform(100, 50, geom.DimensionsOptions{ScaleX: 2, ScaleY: 1})
	if !pointsClose(got, geom.Point{X: 200, Y: 50}, tol) {
		t.Fatalf("scale: got %v", got)
	}
	// 45° x-skew widens the box by the height.
	got = SizeAfterTransform(100, 50, geom.DimensionsOptions{SkewX: 45})
	if math.Abs(got.X-150) > 1e-9 || math.Abs(got.Y-50) > 1e-9 {
		t.Fatalf("skew: got %v", got)
	}
	// Flips never shrink the size below zero.
	got = SizeAfterTransform(100, 50, geom.DimensionsOptions{FlipX: true, FlipY: true})
	if !pointsClose(got, geom.Point{X: 100, Y: 50}, tol) {
		t.Fatalf("flips: got %v", got)
	}
}
