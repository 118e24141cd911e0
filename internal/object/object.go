/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package object defines the transformable-object contract and the
// utilities that compose and decompose affine transforms on such objects:
// re-parenting an object into or out of a transformed group, resetting or
// snapshotting its transform state, and sizing selection controls around it.
package object

import (
	"motionkit/internal/geom"
)

// Named origin anchors for positioning.
const (
	OriginLeft   = "left"
	OriginCenter = "center"
	OriginRight  = "right"
	OriginTop    = "top"
	OriginBottom = "bottom"
)

// State holds the transform-describing fields of a drawable object.
// Angle and the skews are in degrees. Left/Top locate the object's origin
// anchor in parent coordinates.
type State struct {
	ScaleX float64
	ScaleY float64
	SkewX  float64
	SkewY  float64
	Angle  float64
	FlipX  bool
	FlipY  bool
	Left   float64
	Top    float64
}

// Transformable is the contract the transform utilities operate on. The
// object system owns the implementation; the utilities only read and write
// through it during a single call.
type Transformable interface {
	// TransformState exposes the mutable transform fields.
	TransformState() *State
	// OwnMatrix computes the object's local matrix from its current state.
	OwnMatrix() geom.Matrix
	// SetPositionByOrigin moves the object so that the named anchor of its
	// transformed bounding box lands on pos.
	SetPositionByOrigin(pos geom.Point, originX, originY string)
	// Rotate sets the rotation angle in degrees, keeping the position
	// anchor fixed.
	Rotate(angle float64)
}

// Object is a minimal drawable entity implementing Transformable. Width and
// Height are the untransformed dimensions; the local geometry is centered on
// the object's own origin, so corners live at (±Width/2, ±Height/2).
type Object struct {
	State
	Width   float64
	Height  float64
	OriginX string
	OriginY string
}

// New returns an Object of the given untransformed size with neutral
// transform state and a left/top position anchor.
func New(width, height float64) *Object {
	return &Object{
		State:   State{ScaleX: 1, ScaleY: 1},
		Width:   width,
		Height:  height,
		OriginX: OriginLeft,
		OriginY: OriginTop,
	}
}

// TransformState returns the mutable transform fields.
func (o *Object) TransformState() *State { return &o.State }

func (o *Object) dimensions() geom.DimensionsOptions {
	return geom.DimensionsOptions{
		ScaleX: o.ScaleX,
		ScaleY: o.ScaleY,
		SkewX:  o.SkewX,
		SkewY:  o.SkewY,
		FlipX:  o.FlipX,
		FlipY:  o.FlipY,
	}
}

func originFactor(origin string) float64 {
	switch origin {
	case OriginCenter:
		return 0.5
	case OriginRight, OriginBottom:
		return 1
	default: // left / top
		return 0
	}
}

// originToCenter returns the vector from the given named anchor to the
// object's center, in parent space (scaled, skewed and rotated).
func (o *Object) originToCenter(originX, originY string) geom.Point {
	size := SizeAfterTransform(o.Width, o.Height, o.dimensions())
	v := geom.Point{
		X: (0.5 - originFactor(originX)) * size.X,
		Y: (0.5 - originFactor(originY)) * size.Y,
	}
	return v.Rotate(geom.Radians(o.Angle))
}

// CenterPoint returns the object's center in parent coordinates.
func (o *Object) CenterPoint() geom.Point {
	return geom.Point{X: o.Left, Y: o.Top}.Add(o.originToCenter(o.OriginX, o.OriginY))
}

// OwnMatrix computes the local matrix: translate to center, rotate, then
// the scale/skew dimensions matrix.
func (o *Object) OwnMatrix() geom.Matrix {
	center := o.CenterPoint()
	m := geom.Translate(center.X, center.Y)
	if o.Angle != 0 {
		m = m.Mul(geom.Rotate(geom.Radians(o.Angle)))
	}
	return m.Mul(geom.DimensionsMatrix(o.dimensions()))
}

// SetPositionByOrigin repositions the object so the named anchor of its
// transformed box lands on pos. The object's own anchor configuration is
// unchanged; only Left/Top move.
func (o *Object) SetPositionByOrigin(pos geom.Point, originX, originY string) {
	center := pos.Add(o.originToCenter(originX, originY))
	anchor := center.Sub(o.originToCenter(o.OriginX, o.OriginY))
	o.Left = anchor.X
	o.Top = anchor.Y
}

// Rotate sets the rotation angle in degrees. Left/Top stay where they are.
func (o *Object) Rotate(angle float64) { o.Angle = angle }
