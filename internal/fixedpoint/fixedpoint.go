// Package fixedpoint handles measurement values stored as integer tenths.
package fixedpoint

import (
	"math"
	"strconv"
)

// Scale is the multiplier between a measurement and its integer form.
const Scale = 10

// Decode turns a measurement such as "-12.3" into tenths (-123).
//
// Only the measurement grammar is accepted: an optional minus, one or two
// integer digits, a '.', and exactly one fractional digit. Anything else
// produces garbage or panics.
func Decode(b []byte) int64 {
	neg := b[0] == '-'
	if neg {
		b = b[1:]
	}

	var v int64
	if b[1] == '.' {
		v = int64(b[0]-'0')*Scale + int64(b[2]-'0')
	} else {
		v = (int64(b[0]-'0')*10+int64(b[1]-'0'))*Scale + int64(b[3]-'0')
	}

	if neg {
		return -v
	}
	return v
}

// AppendTenths appends v/Scale with exactly one fractional digit.
// The decimal separator is always '.'.
func AppendTenths(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = strconv.AppendInt(dst, v/Scale, 10)
	return append(dst, '.', byte('0'+v%Scale))
}

// Average returns sum/count in tenths, rounded half away from zero.
func Average(sum, count int64) int64 {
	return int64(math.Round(float64(sum) / float64(count)))
}
