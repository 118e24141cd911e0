/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package object

import (
	"motionkit/internal/geom"
)

// ApplyTransform overwrites the object's transform state with the
// decomposition of m and repositions it so that the matrix translation
// becomes the object's center (not its top-left).
//
// Flip flags are cleared before the decomposed fields are assigned, so
// decomposed flip values would take precedence; decomposition never detects
// flips, though, so a mirrored transform lands in a negative scale and any
// previous flip state is lost on every call.
func ApplyTransform(obj Transformable, m geom.Matrix) {
	d := geom.Decompose(m)
	st := obj.TransformState()
	st.FlipX = d.FlipX
	st.FlipY = d.FlipY
	st.Angle = d.Angle
	st.SkewX = d.SkewX
	st.SkewY = d.SkewY
	st.ScaleX = d.ScaleX
	st.ScaleY = d.ScaleY
	obj.SetPositionByOrigin(geom.Point{X: d.TranslateX, Y: d.TranslateY}, OriginCenter, OriginCenter)
}

// RemoveTransform rebases the object into the coordinate space obtained by
// undoing m: the effective matrix becomes Invert(m)·OwnMatrix(). Used when
// an object leaves a transformed container.
func RemoveTransform(obj Transformable, m geom.Matrix) {
	ApplyTransform(obj, m.Invert().Mul(obj.OwnMatrix()))
}

// AddTransform is the forward counterpart of RemoveTransform: the effective
// matrix becomes m·OwnMatrix(). Used when an object enters a transformed
// container.
func AddTransform(obj Transformable, m geom.Matrix) {
	ApplyTransform(obj, m.Mul(obj.OwnMatrix()))
}

// ResetTransform restores neutral scale, skew, flips and rotation. Left/Top
// are deliberately untouched: translation is not part of the reset contract.
func ResetTransform(obj Transformable) {
	st := obj.TransformState()
	st.ScaleX = 1
	st.ScaleY = 1
	st.SkewX = 0
	st.SkewY = 0
	st.FlipX = false
	st.FlipY = false
	obj.Rotate(0)
}

// SaveTransform returns a snapshot of the object's transform state. The
// copy shares nothing with the object; later mutations do not affect it.
func SaveTransform(obj Transformable) State {
	return *obj.TransformState()
}

// RestoreTransform reinstates a snapshot taken with SaveTransform.
func RestoreTransform(obj Transformable, s State) {
	*obj.TransformState() = s
}

// SizeAfterTransform computes the axis-aligned size of a width×height box
// centered at the origin after applying the scale/skew-only matrix built
// from opts. Rotation is excluded on purpose: control rendering sizes its
// handles around the unrotated box. Both components are non-negative.
func SizeAfterTransform(width, height float64, opts geom.DimensionsOptions) geom.Point {
	dimX, dimY := width/2, height/2
	m := geom.DimensionsMatrix(opts)
	pts := []geom.Point{
		{X: -dimX, Y: -dimY},
		{X: dimX, Y: -dimY},
		{X: -dimX, Y: dimY},
		{X: dimX, Y: dimY},
	}
	for i := range pts {
		pts[i] = m.Apply(pts[i])
	}
	_, size := geom.BoundingBoxFromPoints(pts)
	return size
}
