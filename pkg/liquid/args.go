package liquid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toString converts a host value into a string.
// The second result is false when the value is absent (nil).
func toString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case *string:
		if val == nil {
			return "", false
		}
		return *val, true
	case []byte:
		return string(val), true
	case fmt.Stringer:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(toInt64(val), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(toUint64(val), 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return fmt.Sprint(val), true
	}
}

// str returns the string form of v, or "" when v is absent.
func str(v any) string {
	s, _ := toString(v)
	return s
}

// toInt converts a host value into an int.
// Whole floats (JSON numbers) and numeric strings are accepted.
func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int8, int16, int32, int64:
		return int(toInt64(val)), true
	case uint, uint8, uint16, uint32, uint64:
		return clampInt(float64(toUint64(val))), true
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case fmt.Stringer:
		return toInt(val.String())
	default:
		return 0, false
	}
}

// toFloat converts a host value into a finite float64.
func toFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int8, int16, int32, int64:
		f = float64(toInt64(val))
	case uint, uint8, uint16, uint32, uint64:
		f = float64(toUint64(val))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case fmt.Stringer:
		return toFloat(val.String())
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toUint32 converts a host value into a uint32, clamping out-of-range values.
func toUint32(v any) (uint32, bool) {
	n, ok := toInt(v)
	if !ok {
		return 0, false
	}
	switch {
	case n < 0:
		return 0, true
	case uint64(n) > math.MaxUint32:
		return math.MaxUint32, true
	default:
		return uint32(n), true
	}
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case int64:
		return val
	}
	return 0
}

func toUint64(v any) uint64 {
	switch val := v.(type) {
	case uint:
		return uint64(val)
	case uint8:
		return uint64(val)
	case uint16:
		return uint64(val)
	case uint32:
		return uint64(val)
	case uint64:
		return val
	}
	return 0
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return clampInt(f), true
}

func clampInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}

// arg returns args[i] or nil when the argument was not supplied.
func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// toBool converts a host value into a bool, using def when v is absent
// or not recognisable.
func toBool(v any, def bool) bool {
	switch val := v.(type) {
	case nil:
		return def
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return b
	default:
		if n, ok := toInt(val); ok {
			return n != 0
		}
		return def
	}
}
