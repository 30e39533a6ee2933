package patch

import "time"

// Positive returns v when it is above zero, otherwise fallback.
func Positive[T int | int32 | int64 | time.Duration](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}
