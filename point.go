package xychart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/xychart/curve"
)

// Datum is one input row. A missing key is an undefined value, a key set
// to nil is a null value.
type Datum map[string]any

// NullFloat is a number that can be null.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

var Null NullFloat

func Float(v float64) NullFloat {
	if math.IsNaN(v) {
		return Null
	}
	return NullFloat{
		Float64: v,
		Valid:   true,
	}
}

func (n NullFloat) Or(v float64) float64 {
	if !n.Valid {
		return v
	}
	return n.Float64
}

func (n NullFloat) Add(v float64) NullFloat {
	if !n.Valid {
		return n
	}
	return Float(n.Float64 + v)
}

func (n NullFloat) String() string {
	if !n.Valid {
		return "null"
	}
	return curve.FormatNumber(n.Float64)
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// toNumber converts a y value. It reports false when v is not a number.
func toNumber(v any) (NullFloat, bool) {
	switch x := v.(type) {
	case nil:
		return Null, true
	case float64:
		return Float(x), true
	case float32:
		return Float(float64(x)), true
	case int:
		return Float(float64(x)), true
	case int8:
		return Float(float64(x)), true
	case int16:
		return Float(float64(x)), true
	case int32:
		return Float(float64(x)), true
	case int64:
		return Float(float64(x)), true
	case uint:
		return Float(float64(x)), true
	case uint8:
		return Float(float64(x)), true
	case uint16:
		return Float(float64(x)), true
	case uint32:
		return Float(float64(x)), true
	case uint64:
		return Float(float64(x)), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Null, false
		}
		return Float(f), true
	case NullFloat:
		return x, true
	default:
		return Null, false
	}
}

// toXValue normalizes an x value to a float64 or a string. Times become
// milliseconds since the epoch.
func toXValue(v any) (any, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case time.Time:
		return float64(x.UnixMilli()), true
	case nil:
		return nil, false
	default:
		n, ok := toNumber(v)
		if !ok || !n.Valid {
			return nil, false
		}
		return n.Float64, true
	}
}

func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return curve.FormatNumber(x)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		if n, ok := toNumber(v); ok {
			return n.String()
		}
		return strings.TrimSpace(toString(v))
	}
}

func toString(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func joinValues(values []any, sep string) string {
	parts := make([]string, len(values))
	for i := range values {
		parts[i] = FormatValue(values[i])
	}
	return strings.Join(parts, sep)
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
