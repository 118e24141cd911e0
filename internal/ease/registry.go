/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ease

import "sort"

// catalog maps the canonical curve names (as used by preset packs and the
// CLI) to their implementations.
var catalog = map[string]Func{
	"linear":           Linear,
	"easeInQuad":       InQuad,
	"easeOutQuad":      OutQuad,
	"easeInOutQuad":    InOutQuad,
	"easeInCubic":      InCubic,
	"easeOutCubic":     OutCubic,
	"easeInOutCubic":   InOutCubic,
	"easeInQuart":      InQuart,
	"easeOutQuart":     OutQuart,
	"easeInOutQuart":   InOutQuart,
	"easeInQuint":      InQuint,
	"easeOutQuint":     OutQuint,
	"easeInOutQuint":   InOutQuint,
	"easeInSine":       InSine,
	"easeOutSine":      OutSine,
	"easeInOutSine":    InOutSine,
	"easeInExpo":       InExpo,
	"easeOutExpo":      OutExpo,
	"easeInOutExpo":    InOutExpo,
	"easeInCirc":       InCirc,
	"easeOutCirc":      OutCirc,
	"easeInOutCirc":    InOutCirc,
	"easeInElastic":    InElastic,
	"easeOutElastic":   OutElastic,
	"easeInOutElastic": InOutElastic,
	"easeInBack":       InBack,
	"easeOutBack":      OutBack,
	"easeInOutBack":    InOutBack,
	"easeInBounce":     InBounce,
	"easeOutBounce":    OutBounce,
	"easeInOutBounce":  InOutBounce,
}

// ByName returns the curve registered under name.
func ByName(name string) (Func, bool) {
	f, ok := catalog[name]
	return f, ok
}

// Names lists all registered curve names in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for n := range catalog {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
