/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package ease provides the time-based easing curves that drive animated
// transitions. Every curve is a pure function of its arguments: an external
// driver calls it once per tick with the elapsed time and gets the
// interpolated value back; no state lives in this package.
//
// All functions share the classic 4-argument signature
//
//	f(t, b, c, d) -> value
//
// where t is the elapsed time, b the start value, c the total change
// (end - start) and d the duration. t and d use the same unit (the curves
// only ever divide one by the other). A zero duration produces NaN/Inf by
// ordinary float division; callers own that guard.
package ease

import "math"

// Func is a time-based easing curve.
type Func func(t, b, c, d float64) float64

// DefaultOvershoot is the classic back-easing overshoot constant. At this
// value the curve swings roughly 10% past its target before settling.
const DefaultOvershoot = 1.70158

// Linear interpolates with constant velocity.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// Polynomial curves of increasing degree. The in-out variants split the
// domain at d/2 and mirror the out curve.

func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func InCubic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func InOutCubic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func InQuart(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

func OutQuart(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

func InOutQuart(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

func InQuint(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

func OutQuint(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func InOutQuint(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

// Sinusoidal curves based on a quarter cosine/sine wave.

func InSine(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func OutSine(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func InOutSine(t, b, c, d float64) float64 {
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

// Exponential curves. The 2^(10(t-1)) form never actually reaches the
// endpoints, so t == 0 and t == d are special-cased to return them exactly.
// The comparisons are intentionally exact equality, not tolerance checks.

func InExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func OutExpo(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func InOutExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

// Circular curves based on sqrt(1 - t²).

func InCirc(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func OutCirc(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func InOutCirc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

// normalize prepares the elastic spring parameters. When the requested
// amplitude cannot cover the change it is clamped to the change and the
// phase shift becomes a quarter period; otherwise the phase shift is derived
// from asin(c/a), with the 0/0 case pinned to asin(1).
func normalize(a, c, p, s float64) (na, nc, np, ns float64) {
	if a < math.Abs(c) {
		a = c
		s = p / 4
	} else if c == 0 && a == 0 {
		s = p / (2 * math.Pi) * math.Asin(1)
	} else {
		s = p / (2 * math.Pi) * math.Asin(c/a)
	}
	return a, c, p, s
}

// elastic is the shared spring waveform.
func elastic(a, s, p, t, d float64) float64 {
	return a * math.Pow(2, 10*(t-1)) * math.Sin((t*d-s)*2*math.Pi/p)
}

func InElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	a, _, p, s := normalize(c, c, p, DefaultOvershoot)
	return -elastic(a, s, p, t, d) + b
}

func OutElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	a, nc, p, s := normalize(c, c, p, DefaultOvershoot)
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*2*math.Pi/p) + nc + b
}

func InOutElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (0.3 * 1.5)
	a, nc, p, s := normalize(c, c, p, DefaultOvershoot)
	if t < 1 {
		return -0.5*elastic(a, s, p, t, d) + b
	}
	t--
	return a*math.Pow(2, -10*t)*math.Sin((t*d-s)*2*math.Pi/p)*0.5 + nc + b
}

// Back curves overshoot the start or end by the factor s. The plain
// variants use DefaultOvershoot; the With variants take it explicitly.

func InBack(t, b, c, d float64) float64 {
	return InBackWith(t, b, c, d, DefaultOvershoot)
}

func InBackWith(t, b, c, d, s float64) float64 {
	t /= d
	return c*t*t*((s+1)*t-s) + b
}

func OutBack(t, b, c, d float64) float64 {
	return OutBackWith(t, b, c, d, DefaultOvershoot)
}

func OutBackWith(t, b, c, d, s float64) float64 {
	t = t/d - 1
	return c*(t*t*((s+1)*t+s)+1) + b
}

func InOutBack(t, b, c, d float64) float64 {
	return InOutBackWith(t, b, c, d, DefaultOvershoot)
}

func InOutBackWith(t, b, c, d, s float64) float64 {
	s *= 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

// Bounce curves: a piecewise quadratic with four segments whose offsets and
// coefficients are hand-tuned for a continuous decaying bounce.

func OutBounce(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+0.984375) + b
	}
}

func InBounce(t, b, c, d float64) float64 {
	return c - OutBounce(d-t, 0, c, d) + b
}

func InOutBounce(t, b, c, d float64) float64 {
	if t < d/2 {
		return InBounce(t*2, 0, c, d)*0.5 + b
	}
	return OutBounce(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}
