// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package ptr provides pointer-related functions for optional values,
// mainly the optional thresholds of the built-in validators.
package ptr

// To returns a pointer to the value of v for any type.
func To[T any](v T) *T { return &v }

// Or returns the value pointed at, or fallback if the pointer is nil.
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
