// Package safe provides checked conversions between block heights, page
// numbers and slice indexes.
package safe

import (
	"fmt"
	"math"
)

// Int converts an unsigned height or count to int, failing when it does not fit.
func Int[T ~uint | ~uint32 | ~uint64](v T) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}

// Uint64 converts a signed value to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
