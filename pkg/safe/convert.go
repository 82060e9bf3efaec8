// Package safe provides range checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func convert[T integer](v T, limit uint64, kind string) (uint64, error) {
	if v < 0 || uint64(v) > limit {
		return 0, fmt.Errorf("value %d out of %s range", v, kind)
	}
	return uint64(v), nil
}

// Int converts v to int, failing when it would overflow.
func Int[T integer](v T) (int, error) {
	n, err := convert(v, math.MaxInt, "int")
	return int(n), err
}

// Uint32 converts v to uint32, failing on negatives and overflow.
func Uint32[T integer](v T) (uint32, error) {
	n, err := convert(v, math.MaxUint32, "uint32")
	return uint32(n), err
}

// Uint64 converts v to uint64, failing on negatives.
func Uint64[T integer](v T) (uint64, error) {
	return convert(v, math.MaxUint64, "uint64")
}
