package nbt

import (
	"math"
	"strconv"
)

// Permissive accessors for scalar tags. These widen numeric kinds and
// best-effort parse strings; exporters and tooling use them where a
// strict typed lookup would be too rigid. They never mutate the tag.

// AsInt64 returns the tag's value as int64 when it can be reasonably
// converted.
func (t *Tag) AsInt64() (int64, bool) {
	switch t.Kind {
	case KindByte:
		return int64(t.Byte), true
	case KindShort:
		return int64(t.Short), true
	case KindInt:
		return int64(t.Int), true
	case KindLong:
		return t.Long, true
	case KindFloat:
		return floatToInt64(float64(t.Float))
	case KindDouble:
		return floatToInt64(t.Double)
	case KindString:
		v, err := strconv.ParseInt(t.Str, 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// AsFloat64 returns the tag's value as float64 when it can be
// reasonably converted.
func (t *Tag) AsFloat64() (float64, bool) {
	switch t.Kind {
	case KindByte:
		return float64(t.Byte), true
	case KindShort:
		return float64(t.Short), true
	case KindInt:
		return float64(t.Int), true
	case KindLong:
		return float64(t.Long), true
	case KindFloat:
		return float64(t.Float), true
	case KindDouble:
		return t.Double, true
	case KindString:
		v, err := strconv.ParseFloat(t.Str, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// AsBool returns the tag's value as a boolean: numeric kinds report
// non-zero, strings parse "true"/"false".
func (t *Tag) AsBool() (bool, bool) {
	switch t.Kind {
	case KindString:
		v, err := strconv.ParseBool(t.Str)
		if err != nil {
			return false, false
		}
		return v, true
	default:
		if v, ok := t.AsInt64(); ok {
			return v != 0, true
		}
		return false, false
	}
}

// AsString renders a scalar tag as text: strings verbatim, numerics
// in decimal form. Container and array kinds report false.
func (t *Tag) AsString() (string, bool) {
	switch t.Kind {
	case KindString:
		return t.Str, true
	case KindByte:
		return strconv.FormatInt(int64(t.Byte), 10), true
	case KindShort:
		return strconv.FormatInt(int64(t.Short), 10), true
	case KindInt:
		return strconv.FormatInt(int64(t.Int), 10), true
	case KindLong:
		return strconv.FormatInt(t.Long, 10), true
	case KindFloat:
		return strconv.FormatFloat(float64(t.Float), 'g', -1, 32), true
	case KindDouble:
		return strconv.FormatFloat(t.Double, 'g', -1, 64), true
	default:
		return "", false
	}
}
