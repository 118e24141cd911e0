/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ease

import (
	"math"
	"strings"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestBoundaryConditions(t *testing.T) {
	// Every curve must start at b and land on b+c.
	const b, c, d = 5.0, 10.0, 2.0
	for _, name := range Names() {
		f, _ := ByName(name)
		if got := f(0, b, c, d); !almostEqual(got, b, tol) {
			t.Errorf("%s(0) = %v, want %v", name, got, b)
		}
		if got := f(d, b, c, d); !almostEqual(got, b+c, tol) {
			t.Errorf("%s(d) = %v, want %v", name, got, b+c)
		}
	}
}

func TestInOutContinuityAtMidpoint(t *testing.T) {
	const b, c, d = 0.0, 1.0, 1.0
	const eps = 1e-9
	for _, name := range Names() {
		if !strings.Contains(name, "InOut") {
			continue
		}
		if name == "easeInOutElastic" {
			// The spring waveform keeps the original phase (t*d - s), so
			// the in half does not meet the out half at the midpoint.
			continue
		}
		f, _ := ByName(name)
		lo := f(d/2-eps, b, c, d)
		hi := f(d/2+eps, b, c, d)
		// Loose tolerance: the circ curve has unbounded slope at d/2.
		if !almostEqual(lo, hi, 1e-4) {
			t.Errorf("%s discontinuous at d/2: %v vs %v", name, lo, hi)
		}
	}
}

func TestQuadExactValues(t *testing.T) {
	if got := InQuad(0.5, 0, 1, 1); got != 0.25 {
		t.Fatalf("InQuad(0.5) = %v, want 0.25", got)
	}
	if got := OutQuad(0.5, 0, 1, 1); got != 0.75 {
		t.Fatalf("OutQuad(0.5) = %v, want 0.75", got)
	}
	if got := InOutQuad(0.25, 0, 1, 1); got != 0.125 {
		t.Fatalf("InOutQuad(0.25) = %v, want 0.125", got)
	}
}

func TestExpoEndpointsAreExact(t *testing.T) {
	// The exponential forms never converge to the endpoints; the
	// special cases must return them bit-for-bit.
	const b, c, d = 3.0, 7.0, 2.0
	if got := InExpo(0, b, c, d); got != b {
		t.Fatalf("InExpo(0) = %v, want exactly %v", got, b)
	}
	if got := OutExpo(d, b, c, d); got != b+c {
		t.Fatalf("OutExpo(d) = %v, want exactly %v", got, b+c)
	}
	if got := InOutExpo(0, b, c, d); got != b {
		t.Fatalf("InOutExpo(0) = %v, want exactly %v", got, b)
	}
	if got := InOutExpo(d, b, c, d); got != b+c {
		t.Fatalf("InOutExpo(d) = %v, want exactly %v", got, b+c)
	}
	// Just inside the domain the formula applies: 2^-10 of the change
	// is still visible at t→0+.
	if got := InExpo(1e-12, b, c, d); got == b {
		t.Fatalf("InExpo just above 0 should not equal b")
	}
}

func TestElasticEndpointsAndOvershoot(t *testing.T) {
	const b, c, d = 0.0, 1.0, 1.0
	for _, f := range []Func{InElastic, OutElastic, InOutElastic} {
		if got := f(0, b, c, d); got != b {
			t.Fatalf("elastic(0) = %v, want exactly %v", got, b)
		}
		if got := f(d, b, c, d); got != b+c {
			t.Fatalf("elastic(d) = %v, want exactly %v", got, b+c)
		}
	}
	// The out variant must swing past the target before settling.
	over := false
	for i := 1; i < 100; i++ {
		if OutElastic(float64(i)/100, b, c, d) > b+c {
			over = true
			break
		}
	}
	if !over {
		t.Fatalf("OutElastic never overshoots the target")
	}
}

func TestNormalizeClampsSmallAmplitude(t *testing.T) {
	// amplitude below |change|: amplitude snaps to the change and the
	// phase shift becomes a quarter period.
	a, c, p, s := normalize(0.5, 1, 0.4, DefaultOvershoot)
	if a != 1 || c != 1 || p != 0.4 || s != 0.1 {
		t.Fatalf("normalize clamp: got a=%v c=%v p=%v s=%v", a, c, p, s)
	}
	// ample amplitude: phase shift from asin(c/a)
	a, _, _, s = normalize(2, 1, 0.4, DefaultOvershoot)
	want := 0.4 / (2 * math.Pi) * math.Asin(0.5)
	if a != 2 || !almostEqual(s, want, tol) {
		t.Fatalf("normalize asin: got a=%v s=%v, want a=2 s=%v", a, s, want)
	}
	// 0/0 pins the phase shift via asin(1)
	_, _, _, s = normalize(0, 0, 0.4, DefaultOvershoot)
	want = 0.4 / (2 * math.Pi) * math.Asin(1)
	if !almostEqual(s, want, tol) {
		t.Fatalf("normalize 0/0: got s=%v, want %v", s, want)
	}
}

func TestBackOvershoot(t *testing.T) {
	// With the default overshoot the in curve dips below the start.
	dipped := false
	for i := 1; i < 50; i++ {
		if InBack(float64(i)/100, 0, 1, 1) < 0 {
			dipped = true
			break
		}
	}
	if !dipped {
		t.Fatalf("InBack never dips below the start value")
	}
	// s=0 degenerates to a plain cubic.
	if got, want := InBackWith(0.5, 0, 1, 1, 0), 0.125; !almostEqual(got, want, tol) {
		t.Fatalf("InBackWith(s=0) = %v, want %v", got, want)
	}
}

func TestOutBounceSegments(t *testing.T) {
	const b, c, d = 0.0, 1.0, 1.0
	// Segment boundaries land back on the target, local minima hit the
	// hand-tuned offsets.
	cases := []struct {
		t, want float64
	}{
		{1 / 2.75, 1},
		{2 / 2.75, 1},
		{2.5 / 2.75, 1},
		{1.5 / 2.75, 0.75},
		{2.25 / 2.75, 0.9375},
		{2.625 / 2.75, 0.984375},
		{1, 1},
	}
	for _, tc := range cases {
		if got := OutBounce(tc.t, b, c, d); !almostEqual(got, tc.want, tol) {
			t.Errorf("OutBounce(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestInBounceMirrorsOutBounce(t *testing.T) {
	const c, d = 1.0, 1.0
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		in := InBounce(tt, 0, c, d)
		out := OutBounce(d-tt, 0, c, d)
		if !almostEqual(in+out, c, tol) {
			t.Fatalf("InBounce(%v)+OutBounce(d-%v) = %v, want %v", tt, tt, in+out, c)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Identical inputs always produce identical outputs.
	for _, name := range Names() {
		f, _ := ByName(name)
		a := f(0.37, 2, 5, 1.3)
		bb := f(0.37, 2, 5, 1.3)
		if a != bb {
			t.Fatalf("%s is not deterministic: %v vs %v", name, a, bb)
		}
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 31 {
		t.Fatalf("expected 31 registered curves, got %d", len(names))
	}
	for _, n := range names {
		if f, ok := ByName(n); !ok || f == nil {
			t.Fatalf("curve %q not resolvable", n)
		}
	}
	if _, ok := ByName("easeInNope"); ok {
		t.Fatalf("unexpected curve resolved")
	}
}
