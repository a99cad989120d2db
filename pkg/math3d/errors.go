package math3d

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("component index out of range")

// IndexError reports an out-of-range component access on a vector.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector index %d out of range [0, %d)", e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Clamp returns f clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}
