// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package stats

import (
	"fmt"
	"math"
)

// DefaultTolerance is the allowed difference used by [Close] and [NotClose].
const DefaultTolerance = 1e-6

// CloseTol reports whether a and b differ by at most tol.
func CloseTol(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// Close reports whether a and b differ by at most [DefaultTolerance].
func Close(a, b float64) bool { return CloseTol(a, b, DefaultTolerance) }

// NotCloseTol reports whether a and b differ by more than tol.
func NotCloseTol(a, b, tol float64) bool { return !CloseTol(a, b, tol) }

// NotClose reports whether a and b differ by more than [DefaultTolerance].
func NotClose(a, b float64) bool { return !Close(a, b) }

// MustClose panics if a and b are not within tol of each other.
// Intended for ad hoc checks in test setup code outside the suite machinery.
func MustClose(a, b, tol float64) {
	if !CloseTol(a, b, tol) {
		panic(fmt.Sprintf("%v and %v are not close enough (allowed difference was %v, found %v)",
			a, b, tol, math.Abs(a-b)))
	}
}

// MustNotClose panics if a and b are within tol of each other.
func MustNotClose(a, b, tol float64) {
	if CloseTol(a, b, tol) {
		panic(fmt.Sprintf("%v and %v are too close (minimum difference was %v, found %v)",
			a, b, tol, math.Abs(a-b)))
	}
}
