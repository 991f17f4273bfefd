// Package cast implements the block runtime's value-coercion rules. Block
// arguments arrive as dynamic values (nil, bool, int, float64, string or
// []any) and block handlers normalize them through these functions before
// use. Coercion is total: input that cannot be cast maps to a zero-ish
// fallback, never a panic or an error, so that arithmetic, comparison and
// list blocks stay total on arbitrary input.
package cast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Gtd232/AerfuckyingExtensions/colors"
)

// number mirrors the host language's bare numeric conversion, keeping NaN
// for values that do not parse. Compare needs the NaN to pick its string
// branch; everything else goes through ToNumber.
func number(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseNumber(v)
	case nil:
		return 0
	default:
		return parseNumber(ToString(value))
	}
}

// ToNumber coerces a value to a number. Values that do not parse, and NaN
// itself, coerce to 0 so arithmetic blocks never see NaN.
func ToNumber(value any) float64 {
	n := number(value)
	if math.IsNaN(n) {
		return 0
	}
	return n
}

// ToBoolean coerces a value to a boolean. Only the empty string, "0" and
// any casing of "false" are false strings; every other string, whitespace
// included, is true.
func ToBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if v == "" || v == "0" || strings.EqualFold(v, "false") {
			return false
		}
		return true
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case nil:
		return false
	default:
		return true
	}
}

// ToString renders any value as a string: nil reads as "null", lists join
// their stringified items with commas.
func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = ToString(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToRGBColorObject interprets a value as a color: strings starting with #
// parse as hex (malformed hex reads as opaque black), everything else
// coerces to a number and decodes as a packed decimal color.
func ToRGBColorObject(value any) colors.RGBA {
	if s, ok := value.(string); ok && strings.HasPrefix(s, "#") {
		rgb, ok := colors.HexToRGB(s)
		if !ok {
			return colors.RGBA{A: 255}
		}
		return colors.RGBA{RGB: rgb, A: 255}
	}
	return colors.DecimalToRGB(toInt32(ToNumber(value)))
}

// ToRGBColorList is ToRGBColorObject projected to an [r, g, b] triple,
// dropping alpha.
func ToRGBColorList(value any) []int {
	c := ToRGBColorObject(value)
	return []int{int(c.R), int(c.G), int(c.B)}
}

// IsWhiteSpace reports whether a value is blank: absent entirely, or a
// string with no non-whitespace characters.
func IsWhiteSpace(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Compare orders two values the way the block language's comparison
// operators do: numerically when both sides read as numbers, falling back
// to a case-insensitive string comparison otherwise. The result is
// negative, zero or positive; only the string branch is limited to -1/0/1.
func Compare(v1, v2 any) float64 {
	n1 := number(v1)
	n2 := number(v2)
	// A value that is numerically zero but textually blank must not
	// compare equal to a real 0, so force it down the string branch.
	if n1 == 0 && IsWhiteSpace(v1) {
		n1 = math.NaN()
	} else if n2 == 0 && IsWhiteSpace(v2) {
		n2 = math.NaN()
	}
	if math.IsNaN(n1) || math.IsNaN(n2) {
		s1 := strings.ToLower(ToString(v1))
		s2 := strings.ToLower(ToString(v2))
		switch {
		case s1 < s2:
			return -1
		case s1 > s2:
			return 1
		}
		return 0
	}
	// Like-signed infinities subtract to NaN; they are equal here.
	if (math.IsInf(n1, 1) && math.IsInf(n2, 1)) ||
		(math.IsInf(n1, -1) && math.IsInf(n2, -1)) {
		return 0
	}
	return n1 - n2
}

// IsInt reports whether a value reads as an integer. For strings this is a
// textual check for a decimal point, so "1e5" counts and "1.0" does not;
// callers rely on that exact behavior.
func IsInt(value any) bool {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) {
			return true
		}
		return v == math.Trunc(v)
	case int:
		return true
	case bool:
		return true
	case string:
		return !strings.Contains(v, ".")
	}
	return false
}
