// Package core implements the aggregation and reporting engine: numeric
// coercion, category color resolution, grouping, summaries, display
// filtering and monthly report snapshots. Everything here is pure and
// side-effect-free; stores and transports live elsewhere.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ToAmount coerces a stored value into a finite monetary amount.
//
// Records come from a loosely-typed input form, so value may be absent,
// a number, or a numeric string. Anything missing or unparseable yields 0
// rather than propagating NaN into downstream sums. No rounding is applied.
func ToAmount(raw any) float64 {
	var v float64
	switch x := raw.(type) {
	case nil:
		return 0
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int64:
		v = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		v = parsed
	case interface{ Float64() (float64, error) }: // json.Number
		parsed, err := x.Float64()
		if err != nil {
			return 0
		}
		v = parsed
	default:
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
